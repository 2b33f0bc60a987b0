package driving

import (
	"context"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// SearchService provides search capabilities to external actors.
type SearchService interface {
	// Search matches a free-text query against names, then content.
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)

	// SearchByCategory lists documents whose names carry the category's suffixes.
	// Unknown categories return an empty result.
	SearchByCategory(ctx context.Context, category domain.Category) ([]domain.SearchResult, error)
}
