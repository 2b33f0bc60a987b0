package telegram

import (
	"context"
	"io"

	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces the bot needs.
type Ports struct {
	// Search answers free-text and category queries.
	Search driving.SearchService

	// Index stores uploads and opens files for sending.
	Index driving.IndexService

	// Access gates every update.
	Access driving.AccessService

	// Files downloads user uploads from the Bot API file URL.
	Files FileOpener
}

// FileOpener opens the bytes behind a URL.
type FileOpener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	switch {
	case p.Search == nil:
		return ErrMissingSearchService
	case p.Index == nil:
		return ErrMissingIndexService
	case p.Access == nil:
		return ErrMissingAccessService
	case p.Files == nil:
		return ErrMissingFileOpener
	}
	return nil
}
