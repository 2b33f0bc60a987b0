package domain

import "strings"

// Origin records which loader produced a document.
type Origin string

// Document origins.
const (
	// OriginLocal is a file found in the local documents directory.
	OriginLocal Origin = "local"

	// OriginRemote is a file listed in the public cloud folder.
	OriginRemote Origin = "remote"

	// OriginUpload is a file received from a chat user.
	OriginUpload Origin = "upload"
)

// Document is the unit stored in the index.
type Document struct {
	// Fingerprint is the index key derived from Name.
	Fingerprint string

	// Name is the display filename, including extension.
	Name string

	// Location is a local filesystem path or a remote download URL.
	Location string

	// Content is the extracted plain text. Empty when extraction
	// was unsupported or failed.
	Content string

	// Origin is the loader that produced the document.
	Origin Origin
}

// IsRemote reports whether retrieval must fetch the bytes over HTTP.
func (d Document) IsRemote() bool {
	return IsRemoteLocation(d.Location)
}

// IsRemoteLocation reports whether a location is an http(s) URL.
func IsRemoteLocation(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// NewDocument builds the index record for a raw document and its extracted text.
// Every ingestion path (local scan, remote listing, upload) goes through here so
// the record shape stays identical.
func NewDocument(raw RawDocument, content string) Document {
	return Document{
		Fingerprint: Fingerprint(raw.Name),
		Name:        raw.Name,
		Location:    raw.Location,
		Content:     content,
		Origin:      raw.Origin,
	}
}

// PartialUploadPrefix marks an upload still being written to the documents
// directory. Loaders skip files carrying it.
const PartialUploadPrefix = ".upload-"
