package driven

import (
	"context"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
)

// ExtractorRegistry selects the appropriate extractor for a file.
// Dispatch is purely on the lowercased filename suffix.
type ExtractorRegistry interface {
	// Extract runs the matching extractor. It never fails: unsupported
	// formats and extraction errors come back as a result with empty Text
	// and Err set.
	Extract(ctx context.Context, name string, content []byte) domain.ExtractionResult

	// Register adds an extractor, replacing any earlier one for the same suffix.
	Register(extractor Extractor)

	// SupportedFormats returns all suffixes that can be extracted, sorted.
	SupportedFormats() []string
}
