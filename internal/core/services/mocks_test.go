package services

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// mockConnector implements driven.Connector, replaying fixed documents and errors.
type mockConnector struct {
	connectorType string
	docs          []domain.RawDocument
	errs          []error
	// block keeps the channels open until the context is cancelled.
	block bool
	calls int
	mu    sync.Mutex
}

func (m *mockConnector) Type() string {
	return m.connectorType
}

func (m *mockConnector) FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	docsCh := make(chan domain.RawDocument)
	errsCh := make(chan error)

	go func() {
		defer close(docsCh)
		defer close(errsCh)

		for _, err := range m.errs {
			select {
			case errsCh <- err:
			case <-ctx.Done():
				return
			}
		}
		for _, doc := range m.docs {
			select {
			case docsCh <- doc:
			case <-ctx.Done():
				return
			}
		}
		if m.block {
			<-ctx.Done()
		}
	}()

	return docsCh, errsCh
}

func (m *mockConnector) syncCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockRegistry implements driven.ExtractorRegistry by decoding bytes as text
// for .txt and .pdf names, and rejecting everything else.
type mockRegistry struct {
	failFor string
}

func (m *mockRegistry) Extract(_ context.Context, name string, content []byte) domain.ExtractionResult {
	ext := strings.ToLower(filepath.Ext(name))
	if name == m.failFor {
		return domain.ExtractionResult{Format: ext, Err: domain.ErrExtraction}
	}
	switch ext {
	case ".txt", ".pdf":
		return domain.ExtractionResult{Text: string(content), Format: ext}
	default:
		return domain.ExtractionResult{Format: ext, Err: domain.ErrUnsupportedType}
	}
}

func (m *mockRegistry) Register(_ driven.Extractor) {}

func (m *mockRegistry) SupportedFormats() []string {
	return []string{".pdf", ".txt"}
}

// mockFetcher implements driven.ContentFetcher from an in-memory map.
type mockFetcher struct {
	files map[string][]byte
	err   error
}

func (m *mockFetcher) Open(_ context.Context, location string) (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.files[location]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// mockLoader implements driving.IndexService, counting EnsureLoaded calls.
type mockLoader struct {
	driving.IndexService
	ensureErr   error
	ensureCalls int
}

func (m *mockLoader) EnsureLoaded(_ context.Context) error {
	m.ensureCalls++
	return m.ensureErr
}

// mockAccessList implements driven.AccessList.
type mockAccessList map[int64]bool

func (m mockAccessList) Contains(_ context.Context, userID int64) bool {
	return m[userID]
}

func rawLocal(name, content string) domain.RawDocument {
	return domain.RawDocument{
		Name:     name,
		Location: "/docs/" + name,
		Content:  []byte(content),
		Origin:   domain.OriginLocal,
	}
}
