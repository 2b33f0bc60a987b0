package services

import (
	"context"
	"fmt"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// NameMatchThreshold is the partial-ratio score (0-100) a filename must
// exceed to match a query by name.
const NameMatchThreshold = 70

// SearchService matches queries against the document index.
type SearchService struct {
	index  driven.DocumentIndex
	loader driving.IndexService
}

// NewSearchService creates a new search service.
// The loader is optional; when set, an empty index is loaded before querying.
func NewSearchService(index driven.DocumentIndex, loader driving.IndexService) *SearchService {
	return &SearchService{
		index:  index,
		loader: loader,
	}
}

// Search returns every document whose name is a near match for the query, or
// whose content contains at least one query word. Results keep index order.
// An empty query matches every document.
func (s *SearchService) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	normalised := fold(strings.TrimSpace(query))
	words := strings.Fields(normalised)

	results := []domain.SearchResult{}
	for _, doc := range s.index.All() {
		if matchesName(normalised, doc.Name) || matchesContent(words, doc.Content) {
			results = append(results, domain.ResultFor(doc))
		}
	}

	logger.Debug("Search matched %d of %d documents", len(results), s.index.Len())
	return results, nil
}

// SearchByCategory returns the documents whose names end with one of the
// category's suffixes. Unknown categories match nothing.
func (s *SearchService) SearchByCategory(
	ctx context.Context, category domain.Category,
) ([]domain.SearchResult, error) {
	logger.Debug("Category: %q", category)

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	results := []domain.SearchResult{}
	if !category.IsValid() {
		return results, nil
	}

	for _, doc := range s.index.All() {
		if category.Matches(doc.Name) {
			results = append(results, domain.ResultFor(doc))
		}
	}
	return results, nil
}

func (s *SearchService) ensureLoaded(ctx context.Context) error {
	if s.loader == nil {
		return nil
	}
	if err := s.loader.EnsureLoaded(ctx); err != nil {
		return fmt.Errorf("load index: %w", err)
	}
	return nil
}

// matchesName applies the name tier: literal substring or fuzzy partial match.
func matchesName(query, name string) bool {
	lower := fold(name)
	if strings.Contains(lower, query) {
		return true
	}
	if query == "" || lower == "" {
		return false
	}
	return fuzzy.PartialRatio(query, lower) > NameMatchThreshold
}

// matchesContent applies the content tier: any query word inside the text.
func matchesContent(words []string, content string) bool {
	if content == "" {
		return false
	}
	lower := fold(content)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// fold lowercases s and composes it to NFC so that precomposed and
// decomposed spellings of the same text compare equal.
func fold(s string) string {
	return norm.NFC.String(strings.ToLower(s))
}
