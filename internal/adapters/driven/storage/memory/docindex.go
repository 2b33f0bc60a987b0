package memory

import (
	"fmt"
	"sync"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure DocumentIndex implements the interface.
var _ driven.DocumentIndex = (*DocumentIndex)(nil)

// DocumentIndex is an in-memory, insertion-ordered document index.
// Overwriting a fingerprint replaces the record in place.
type DocumentIndex struct {
	mu    sync.RWMutex
	docs  map[string]domain.Document
	order []string
}

// NewDocumentIndex creates an empty index.
func NewDocumentIndex() *DocumentIndex {
	return &DocumentIndex{
		docs: make(map[string]domain.Document),
	}
}

// Put inserts or overwrites a record.
func (i *DocumentIndex) Put(doc domain.Document) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, exists := i.docs[doc.Fingerprint]; !exists {
		i.order = append(i.order, doc.Fingerprint)
	}
	i.docs[doc.Fingerprint] = doc
}

// Get retrieves a record by fingerprint.
func (i *DocumentIndex) Get(fingerprint string) (*domain.Document, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	doc, ok := i.docs[fingerprint]
	if !ok {
		return nil, fmt.Errorf("%w: document %s", domain.ErrNotFound, fingerprint)
	}
	return &doc, nil
}

// All returns a snapshot of every record in insertion order.
func (i *DocumentIndex) All() []domain.Document {
	i.mu.RLock()
	defer i.mu.RUnlock()

	docs := make([]domain.Document, 0, len(i.order))
	for _, fp := range i.order {
		docs = append(docs, i.docs[fp])
	}
	return docs
}

// Keys returns every fingerprint in insertion order.
func (i *DocumentIndex) Keys() []string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	keys := make([]string, len(i.order))
	copy(keys, i.order)
	return keys
}

// Len returns the number of records.
func (i *DocumentIndex) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.order)
}
