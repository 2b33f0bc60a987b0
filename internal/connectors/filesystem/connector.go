// Package filesystem provides a connector for the local documents directory.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

// ConnectorType identifies this connector.
const ConnectorType = "filesystem"

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// Connector reads the regular files directly inside one directory.
// Subdirectories are not descended into.
type Connector struct {
	rootPath string
}

// New creates a filesystem connector for rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return ConnectorType
}

// RootPath returns the directory being scanned.
func (c *Connector) RootPath() string {
	return c.rootPath
}

// FullSync emits one RawDocument per regular file or symlink to one, creating the directory
// first if it does not exist. Unreadable files are reported as SkipError.
func (c *Connector) FullSync(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		if err := os.MkdirAll(c.rootPath, 0o755); err != nil {
			errs <- fmt.Errorf("create documents directory %s: %w", c.rootPath, err)
			return
		}

		entries, err := os.ReadDir(c.rootPath)
		if err != nil {
			errs <- fmt.Errorf("read documents directory %s: %w", c.rootPath, err)
			return
		}

		logger.Debug("Scanning %d entries in %s", len(entries), c.rootPath)

		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), domain.PartialUploadPrefix) {
				continue
			}

			path := filepath.Join(c.rootPath, entry.Name())
			if !isFile(path, entry) {
				continue
			}

			content, err := os.ReadFile(path)
			if err != nil {
				select {
				case errs <- &driven.SkipError{Name: entry.Name(), Err: err}:
				case <-ctx.Done():
					return
				}
				continue
			}

			select {
			case docs <- domain.RawDocument{
				Name:     entry.Name(),
				Location: path,
				Content:  content,
				Origin:   domain.OriginLocal,
			}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return docs, errs
}

// isFile reports whether entry is a regular file, following symlinks.
// Dangling links and links to directories are not files.
func isFile(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
