package yandexdisk

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

// ConnectorType identifies this connector.
const ConnectorType = "yandexdisk"

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector indexes the files of one public folder.
type Connector struct {
	client    *Client
	publicKey string
	workers   int
}

// New creates a connector for the folder shared at publicKey (its public URL).
// workers bounds concurrent downloads.
func New(client *Client, publicKey string, workers int) *Connector {
	if workers < 1 {
		workers = 1
	}
	return &Connector{
		client:    client,
		publicKey: publicKey,
		workers:   workers,
	}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return ConnectorType
}

// FullSync lists the folder and emits every file in listing order.
// A listing failure ends the sync with a single error and no documents.
// A file that fails to download is still emitted, with empty content, so it
// remains findable by name.
func (c *Connector) FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		resources, err := c.client.ListPublicFolder(ctx, c.publicKey)
		if err != nil {
			errs <- err
			return
		}

		files := make([]Resource, 0, len(resources))
		for _, r := range resources {
			if r.IsFile() {
				files = append(files, r)
			}
		}
		logger.Debug("Public folder lists %d files (%d entries)", len(files), len(resources))

		contents := c.downloadAll(ctx, files)

		for i, f := range files {
			select {
			case docs <- domain.RawDocument{
				Name:     f.Name,
				Location: f.File,
				Content:  contents[i],
				Origin:   domain.OriginRemote,
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return docs, errs
}

// downloadAll fetches files on a bounded pool. Result order matches files;
// failed downloads leave a nil entry.
func (c *Connector) downloadAll(ctx context.Context, files []Resource) [][]byte {
	contents := make([][]byte, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, f := range files {
		g.Go(func() error {
			data, err := c.client.Download(gctx, f.File)
			if err != nil {
				logger.Warn("Download of %s failed: %v", f.Name, err)
				return nil
			}
			contents[i] = data
			return nil
		})
	}

	// Workers never return errors; a failed file is logged and left empty.
	_ = g.Wait()
	return contents
}
