package domain

// RawDocument represents opaque bytes fetched by a connector.
// It is the connector's output before extraction.
type RawDocument struct {
	// Name is the declared filename, used for format dispatch.
	Name string

	// Location is where the bytes came from (file path or URL).
	Location string

	// Content is the raw bytes.
	Content []byte

	// Origin is the loader that fetched the document.
	Origin Origin
}
