package normalisers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry dispatches extraction on the lowercased filename suffix.
type Registry struct {
	mu         sync.RWMutex
	extractors map[string]driven.Extractor
}

// NewRegistry creates a registry with the given extractors.
func NewRegistry(extractors ...driven.Extractor) *Registry {
	r := &Registry{extractors: make(map[string]driven.Extractor)}
	for _, e := range extractors {
		r.Register(e)
	}
	return r
}

// Register adds an extractor for each of its formats.
func (r *Registry) Register(extractor driven.Extractor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, format := range extractor.Formats() {
		r.extractors[strings.ToLower(format)] = extractor
	}
}

// SupportedFormats returns all registered suffixes, sorted.
func (r *Registry) SupportedFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.extractors))
	for f := range r.extractors {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	return formats
}

// Extract runs the extractor registered for name's suffix.
// It never fails; errors are returned inside the result.
func (r *Registry) Extract(ctx context.Context, name string, content []byte) domain.ExtractionResult {
	format, extractor := r.lookup(name)
	if extractor == nil {
		return domain.ExtractionResult{
			Format: format,
			Err:    fmt.Errorf("%w: %s", domain.ErrUnsupportedType, name),
		}
	}

	text, err := extractor.Extract(ctx, name, content)
	if err != nil {
		return domain.ExtractionResult{
			Format: format,
			Err:    fmt.Errorf("%w: %s: %w", domain.ErrExtraction, name, err),
		}
	}

	return domain.ExtractionResult{Text: text, Format: format}
}

// lookup finds the extractor for name. Suffixes are matched on the end of the
// lowercased name, so ".docx" never falls back to ".doc".
func (r *Registry) lookup(name string) (string, driven.Extractor) {
	lower := strings.ToLower(name)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best string
	for format := range r.extractors {
		if strings.HasSuffix(lower, format) && len(format) > len(best) {
			best = format
		}
	}
	if best == "" {
		return suffixOf(lower), nil
	}
	return best, r.extractors[best]
}

// suffixOf returns the extension of a lowercased name, dot included.
func suffixOf(lower string) string {
	if i := strings.LastIndex(lower, "."); i >= 0 {
		return lower[i:]
	}
	return ""
}
