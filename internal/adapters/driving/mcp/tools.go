package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// SearchInput is the input schema for the search_documents tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"a file name or words from the document text"`
}

// BrowseInput is the input schema for the browse_category tool.
type BrowseInput struct {
	Category string `json:"category" jsonschema:"one of documents, tables or pdf"`
}

// SearchOutput is the output schema for both tools.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single matching document.
type SearchResultOutput struct {
	Fingerprint string `json:"fingerprint"`
	Name        string `json:"name"`
	URI         string `json:"uri"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_documents",
		Description: "Find documents by file name or by words in their text",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "browse_category",
		Description: "List documents of one category: documents, tables or pdf",
	}, s.handleBrowse)
}

// handleSearch handles the search_documents tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	results, err := s.ports.Search.Search(ctx, input.Query)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	return nil, toOutput(results), nil
}

// handleBrowse handles the browse_category tool invocation.
func (s *Server) handleBrowse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input BrowseInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	category := domain.Category(input.Category)
	if !category.IsValid() {
		return nil, SearchOutput{}, fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, input.Category)
	}

	results, err := s.ports.Search.SearchByCategory(ctx, category)
	if err != nil {
		return nil, SearchOutput{}, err
	}
	return nil, toOutput(results), nil
}

func toOutput(results []domain.SearchResult) SearchOutput {
	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}
	for i, r := range results {
		output.Results[i] = SearchResultOutput{
			Fingerprint: r.Fingerprint,
			Name:        r.Name,
			URI:         documentURI(r.Fingerprint),
		}
	}
	return output
}
