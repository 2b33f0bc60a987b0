package yandexdisk

// ResourceTypeFile marks a file entry; folders are "dir".
const ResourceTypeFile = "file"

// Resource is one entry of a public folder listing.
type Resource struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Path     string `json:"path"`
	File     string `json:"file"`
	MimeType string `json:"mime_type"`
	Size     int64  `json:"size"`
}

// IsFile reports whether the entry is a downloadable file.
func (r Resource) IsFile() bool {
	return r.Type == ResourceTypeFile && r.File != ""
}

// publicResource is the top-level listing response.
type publicResource struct {
	Name     string        `json:"name"`
	Type     string        `json:"type"`
	Embedded *resourceList `json:"_embedded"`
}

// resourceList is one page of folder contents.
type resourceList struct {
	Items  []Resource `json:"items"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
	Total  int        `json:"total"`
}
