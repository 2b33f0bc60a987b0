package mcp

import (
	"context"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastQuery string
	lastCat   domain.Category
}

func (m *mockSearchService) Search(_ context.Context, query string) ([]domain.SearchResult, error) {
	m.lastQuery = query
	return m.results, m.err
}

func (m *mockSearchService) SearchByCategory(_ context.Context, c domain.Category) ([]domain.SearchResult, error) {
	m.lastCat = c
	return m.results, m.err
}

// mockIndexService is a mock implementation of driving.IndexService.
// Only the read-side methods are implemented.
type mockIndexService struct {
	driving.IndexService
	docs        []domain.Document
	err         error
	loadErr     error
	ensureCalls int
}

func (m *mockIndexService) EnsureLoaded(_ context.Context) error {
	m.ensureCalls++
	return m.loadErr
}

func (m *mockIndexService) Get(_ context.Context, fingerprint string) (*domain.Document, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].Fingerprint == fingerprint {
			doc := m.docs[i]
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockIndexService) Documents(_ context.Context) ([]domain.Document, error) {
	return m.docs, m.err
}

func newDoc(name, content string, origin domain.Origin) domain.Document {
	return domain.Document{
		Fingerprint: domain.Fingerprint(name),
		Name:        name,
		Location:    "/srv/docs/" + name,
		Content:     content,
		Origin:      origin,
	}
}
