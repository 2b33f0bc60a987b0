package filesystem

import "strings"

// ResolveLocalPath converts a filesystem URI to a local path for opening.
// Handles file:// URIs and bare paths.
func ResolveLocalPath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}
