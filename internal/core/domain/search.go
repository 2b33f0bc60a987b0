package domain

// SearchResult is a single hit: what to show and what to send back
// when the user picks it.
type SearchResult struct {
	// Name is the display filename.
	Name string

	// Fingerprint identifies the record in the index.
	Fingerprint string
}

// ResultFor builds the search result for a document.
func ResultFor(doc Document) SearchResult {
	return SearchResult{Name: doc.Name, Fingerprint: doc.Fingerprint}
}
