package driven

import "context"

// Extractor converts raw file bytes of one format family into plain text.
type Extractor interface {
	// Formats returns the lowercased filename suffixes this extractor
	// handles, including the leading dot (e.g. ".docx").
	Formats() []string

	// Extract returns the plain text of the file. An empty string with a nil
	// error means the file has no text (e.g. a PDF without a text layer).
	Extract(ctx context.Context, name string, content []byte) (string, error)
}
