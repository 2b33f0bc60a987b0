package mcp

import (
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search answers free-text and category queries.
	Search driving.SearchService

	// Index exposes indexed records and their extracted text.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Index == nil {
		return ErrMissingIndexService
	}
	return nil
}
