package yandexdisk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-success response from the disk API.
type APIError struct {
	StatusCode int
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yandexdisk: API error %d: %s (URL: %s)", e.StatusCode, e.Body, e.URL)
}

// IsNotFound checks if the error indicates the folder or file does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return false
}

// IsRateLimited checks if the error indicates rate limiting.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}
