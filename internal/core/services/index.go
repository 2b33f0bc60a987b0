package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-bot/internal/logger"
)

// Ensure IndexService implements the interface.
var _ driving.IndexService = (*IndexService)(nil)

// IndexService coordinates loading sources into the index, uploads and retrieval.
type IndexService struct {
	index         driven.DocumentIndex
	registry      driven.ExtractorRegistry
	fetcher       driven.ContentFetcher
	connectors    []driven.Connector
	documentsPath string

	// loadMu serialises full rescans.
	loadMu sync.Mutex
}

// NewIndexService creates a new index service.
// Connectors run in the given order on every LoadAll; the local connector
// comes first so local files win insertion order. documentsPath is the upload
// destination.
func NewIndexService(
	index driven.DocumentIndex,
	registry driven.ExtractorRegistry,
	fetcher driven.ContentFetcher,
	documentsPath string,
	connectors ...driven.Connector,
) *IndexService {
	return &IndexService{
		index:         index,
		registry:      registry,
		fetcher:       fetcher,
		connectors:    connectors,
		documentsPath: documentsPath,
	}
}

// LoadAll rescans every connector into the index, overwriting by fingerprint.
// Source failures are logged and collected in the report; only context
// cancellation is returned as an error.
func (s *IndexService) LoadAll(ctx context.Context) (*driving.LoadReport, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	logger.Section("Index Load")
	start := time.Now()
	report := &driving.LoadReport{}

	for _, connector := range s.connectors {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
		report.Sources = append(report.Sources, connector.Type())
		if err := s.syncConnector(ctx, connector, report); err != nil {
			report.Duration = time.Since(start)
			return report, err
		}
	}

	report.Duration = time.Since(start)
	logger.Info("Index loaded: %d documents (%d with text), %d errors in %s",
		report.Documents, report.Extracted, len(report.Errors), report.Duration.Round(time.Millisecond))
	return report, nil
}

// EnsureLoaded runs LoadAll if the index is empty.
func (s *IndexService) EnsureLoaded(ctx context.Context) error {
	if s.index.Len() > 0 {
		return nil
	}
	logger.Debug("Index empty, loading sources")
	_, err := s.LoadAll(ctx)
	return err
}

// syncConnector drains one connector into the index.
func (s *IndexService) syncConnector(
	ctx context.Context,
	connector driven.Connector,
	report *driving.LoadReport,
) error {
	docsCh, errsCh := connector.FullSync(ctx)

	for docsCh != nil || errsCh != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err, ok := <-errsCh:
			if !ok {
				errsCh = nil
				continue
			}
			report.Errors = append(report.Errors, fmt.Errorf("%s: %w", connector.Type(), err))
			if skip, isSkip := driven.IsSkip(err); isSkip {
				logger.Warn("Skipping %s from %s: %v", skip.Name, connector.Type(), skip.Err)
				continue
			}
			logger.Warn("Loading from %s failed: %v", connector.Type(), err)

		case raw, ok := <-docsCh:
			if !ok {
				docsCh = nil
				continue
			}
			doc := s.ingest(ctx, raw)
			report.Documents++
			if doc.Content != "" {
				report.Extracted++
			}
		}
	}
	return nil
}

// ingest extracts, fingerprints and stores one raw document.
func (s *IndexService) ingest(ctx context.Context, raw domain.RawDocument) domain.Document {
	result := s.registry.Extract(ctx, raw.Name, raw.Content)
	switch {
	case result.OK():
	case errors.Is(result.Err, domain.ErrUnsupportedType):
		logger.Debug("No extractor for %s, indexing name only", raw.Name)
	default:
		logger.Warn("Text extraction failed for %s: %v", raw.Name, result.Err)
	}
	doc := domain.NewDocument(raw, result.Text)
	s.index.Put(doc)
	logger.Debug("Indexed %s file: %s (ID: %s)", raw.Origin, doc.Name, doc.Fingerprint)
	return doc
}

// Upload writes the file into the documents directory, replacing any file of
// the same name, and indexes it without a rescan.
func (s *IndexService) Upload(ctx context.Context, name string, content []byte) (*domain.Document, error) {
	if err := validateUploadName(name); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.documentsPath, 0o755); err != nil {
		return nil, fmt.Errorf("create documents directory: %w", err)
	}

	path := filepath.Join(s.documentsPath, name)
	if err := writeFileAtomic(s.documentsPath, path, content); err != nil {
		return nil, fmt.Errorf("save upload: %w", err)
	}

	doc := s.ingest(ctx, domain.RawDocument{
		Name:     name,
		Location: path,
		Content:  content,
		Origin:   domain.OriginUpload,
	})
	logger.Info("Uploaded file: %s (ID: %s)", doc.Name, doc.Fingerprint)
	return &doc, nil
}

// Retrieve opens the bytes behind an indexed document. Remote documents are
// downloaded again; only extracted text is kept in memory.
func (s *IndexService) Retrieve(ctx context.Context, fingerprint string) (*driving.Retrieved, error) {
	doc, err := s.index.Get(fingerprint)
	if err != nil {
		return nil, err
	}

	body, err := s.fetcher.Open(ctx, doc.Location)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", doc.Name, err)
	}

	return &driving.Retrieved{Name: doc.Name, Body: body}, nil
}

// Get returns the indexed record for a fingerprint.
func (s *IndexService) Get(_ context.Context, fingerprint string) (*domain.Document, error) {
	return s.index.Get(fingerprint)
}

// Documents returns every indexed record in insertion order.
func (s *IndexService) Documents(_ context.Context) ([]domain.Document, error) {
	return s.index.All(), nil
}

// validateUploadName accepts plain file names only.
func validateUploadName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty file name", domain.ErrInvalidInput)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q is not a file name", domain.ErrInvalidInput, name)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return fmt.Errorf("%w: %q must not contain a path", domain.ErrInvalidInput, name)
	case strings.HasPrefix(name, domain.PartialUploadPrefix):
		return fmt.Errorf("%w: %q uses a reserved prefix", domain.ErrInvalidInput, name)
	}
	return nil
}

// writeFileAtomic writes to a temporary file in dir and renames it over path.
func writeFileAtomic(dir, path string, content []byte) error {
	tmp := filepath.Join(dir, domain.PartialUploadPrefix+uuid.NewString())
	if err := os.WriteFile(tmp, content, 0o644); err != nil { //nolint:gosec // shared documents folder
		os.Remove(tmp) //nolint:errcheck
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return err
	}
	return nil
}
