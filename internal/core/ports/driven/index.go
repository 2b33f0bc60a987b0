package driven

import (
	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// DocumentIndex is the searchable corpus: fingerprint -> document.
// Keys are unique; re-inserting a fingerprint overwrites the record.
// Records are never pruned.
type DocumentIndex interface {
	// Put inserts or overwrites the record for doc.Fingerprint.
	Put(doc domain.Document)

	// Get retrieves a record by fingerprint.
	// Returns domain.ErrNotFound if absent.
	Get(fingerprint string) (*domain.Document, error)

	// All returns every record in insertion order.
	All() []domain.Document

	// Keys returns every fingerprint in insertion order.
	Keys() []string

	// Len returns the number of records.
	Len() int
}
