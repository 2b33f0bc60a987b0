package driven

import (
	"context"
	"io"
)

// ContentFetcher opens the bytes behind a document location.
// Remote locations are fetched fresh on every call; nothing is cached.
type ContentFetcher interface {
	// Open returns a reader for the location (URL or local path).
	// The caller must close it.
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}
