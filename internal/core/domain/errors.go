package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested document does not exist in the index.
	ErrNotFound = errors.New("not found")

	// ErrAccessDenied indicates the sender is not on the allow-list.
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a file format with no extractor.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtraction indicates a file could not be parsed into text.
	// It is absorbed into empty content and never shown to users.
	ErrExtraction = errors.New("extraction failed")

	// ErrRemoteListing indicates the storage provider refused the folder listing.
	ErrRemoteListing = errors.New("remote listing failed")

	// ErrTransportAck indicates an inline action could not be acknowledged.
	ErrTransportAck = errors.New("callback acknowledgement failed")

	// ErrConfigInvalid indicates the static configuration is unusable.
	ErrConfigInvalid = errors.New("invalid configuration")
)
