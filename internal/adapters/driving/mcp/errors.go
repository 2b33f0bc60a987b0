// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// document index. It lets AI assistants search, browse and read the same
// documents the chat bot serves.
package mcp

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrMissingIndexService is returned when the index service is not provided.
	ErrMissingIndexService = errors.New("mcp: index service is required")
)
