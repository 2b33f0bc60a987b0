package domain

// ExtractionResult is the outcome of extracting text from a file.
// A failed extraction still carries an empty Text, so callers that only
// want content can ignore Err.
type ExtractionResult struct {
	// Text is the extracted plain text, empty on failure.
	Text string

	// Format is the lowercased suffix used for dispatch (e.g. ".pdf").
	Format string

	// Err is the reason extraction produced no text, if it failed.
	Err error
}

// OK returns true if extraction succeeded.
func (r ExtractionResult) OK() bool {
	return r.Err == nil
}
