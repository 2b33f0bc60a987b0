// Package fetch opens the bytes behind indexed document locations.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/custodia-labs/sercha-bot/internal/connectors/filesystem"
	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.ContentFetcher = (*Fetcher)(nil)

// Fetcher reads local paths from disk and downloads http(s) URLs.
type Fetcher struct {
	client *http.Client
}

// New creates a fetcher whose HTTP requests time out after timeout.
func New(timeout time.Duration) *Fetcher {
	return NewWithClient(&http.Client{Timeout: timeout})
}

// NewWithClient creates a fetcher using a custom HTTP client.
func NewWithClient(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client}
}

// Open returns a reader for the location. The caller must close it.
func (f *Fetcher) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if domain.IsRemoteLocation(location) {
		return f.openURL(ctx, location)
	}

	file, err := os.Open(filesystem.ResolveLocalPath(location))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, location)
		}
		return nil, err
	}
	return file, nil
}

func (f *Fetcher) openURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, url)
		}
		return nil, fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	return resp.Body, nil
}
