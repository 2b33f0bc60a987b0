package driving

import (
	"context"
	"io"
	"time"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// IndexService owns the document index lifecycle: loading, uploads, retrieval.
type IndexService interface {
	// LoadAll rescans every configured source into the index.
	LoadAll(ctx context.Context) (*LoadReport, error)

	// EnsureLoaded runs LoadAll if the index is still empty.
	EnsureLoaded(ctx context.Context) error

	// Upload stores a file in the local documents directory and indexes it.
	Upload(ctx context.Context, name string, content []byte) (*domain.Document, error)

	// Retrieve opens the bytes of an indexed document.
	// Returns domain.ErrNotFound for unknown fingerprints.
	Retrieve(ctx context.Context, fingerprint string) (*Retrieved, error)

	// Get returns the indexed record for a fingerprint.
	Get(ctx context.Context, fingerprint string) (*domain.Document, error)

	// Documents returns every indexed record in insertion order.
	Documents(ctx context.Context) ([]domain.Document, error)
}

// Retrieved is an open document ready to be sent to a user.
type Retrieved struct {
	// Name is the display filename.
	Name string

	// Body streams the file bytes. The caller must close it.
	Body io.ReadCloser
}

// LoadReport summarises one LoadAll run.
type LoadReport struct {
	// Sources lists the connector types that ran, in order.
	Sources []string

	// Documents is the number of records written to the index.
	Documents int

	// Extracted is how many of those carry non-empty text.
	Extracted int

	// Errors collects absorbed per-source and per-document failures.
	Errors []error

	// Duration is the wall time of the run.
	Duration time.Duration
}
