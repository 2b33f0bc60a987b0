package driven

import (
	"context"
	"errors"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// Connector fetches documents from a data source.
// Each connector type (filesystem, yandexdisk) implements this interface.
type Connector interface {
	// Type returns the connector type identifier.
	Type() string

	// FullSync fetches all documents from the source.
	// Both channels are closed when the connector is done. Errors wrapped in
	// SkipError are per-document and the sync carries on; any other error
	// ends the sync for this source.
	FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error)
}

// SkipError reports a single document the connector could not fetch.
// It is sent on the error channel without ending the sync.
type SkipError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *SkipError) Error() string {
	return "skip " + e.Name + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SkipError) Unwrap() error {
	return e.Err
}

// IsSkip checks if an error only skips one document.
func IsSkip(err error) (*SkipError, bool) {
	var se *SkipError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}
