// Package telegram provides the chat interface of the bot over the Telegram
// Bot API. It turns updates into calls on the driving ports and renders
// results as messages with inline keyboards.
package telegram

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("telegram: search service is required")

	// ErrMissingIndexService is returned when the index service is not provided.
	ErrMissingIndexService = errors.New("telegram: index service is required")

	// ErrMissingAccessService is returned when the access service is not provided.
	ErrMissingAccessService = errors.New("telegram: access service is required")

	// ErrMissingFileOpener is returned when no upload downloader is provided.
	ErrMissingFileOpener = errors.New("telegram: file opener is required")

	// ErrMissingAPI is returned when no Bot API client is provided.
	ErrMissingAPI = errors.New("telegram: bot API client is required")

	// ErrInvalidCallback is returned for callback payloads the bot did not issue.
	ErrInvalidCallback = errors.New("telegram: invalid callback payload")
)
