package domain

import (
	"fmt"
	"time"
)

const unknownDescription = "Unknown"

// Default configuration values.
const (
	DefaultDocumentsPath    = "documents"
	DefaultRemoteAPIBaseURL = "https://cloud-api.yandex.net"
	DefaultDownloadWorkers  = 4
	DefaultRequestTimeout   = 30 * time.Second
)

// Settings is the static configuration, loaded once at process start.
type Settings struct {
	// BotToken is the Telegram bot credential.
	BotToken string

	// DocumentsPath is the local corpus root and upload destination.
	DocumentsPath string

	// PublicFolderURL is the public cloud folder to index. Empty disables
	// the remote loader.
	PublicFolderURL string

	// RemoteAPIBaseURL is the storage provider API endpoint.
	RemoteAPIBaseURL string

	// AllowedUserIDs are the chat identities allowed to use the bot.
	AllowedUserIDs []int64

	// DownloadWorkers bounds concurrent remote downloads during a load.
	DownloadWorkers int

	// RequestTimeout bounds each outbound HTTP request.
	RequestTimeout time.Duration

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultSettings returns settings with defaults applied and no credentials.
func DefaultSettings() Settings {
	return Settings{
		DocumentsPath:    DefaultDocumentsPath,
		RemoteAPIBaseURL: DefaultRemoteAPIBaseURL,
		DownloadWorkers:  DefaultDownloadWorkers,
		RequestTimeout:   DefaultRequestTimeout,
	}
}

// HasRemote returns true if a public folder is configured.
func (s Settings) HasRemote() bool {
	return s.PublicFolderURL != ""
}

// Validate checks settings required by every command.
func (s Settings) Validate() error {
	if s.DocumentsPath == "" {
		return fmt.Errorf("%w: documents path is required", ErrConfigInvalid)
	}
	if s.DownloadWorkers <= 0 {
		return fmt.Errorf("%w: download workers must be positive", ErrConfigInvalid)
	}
	if s.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrConfigInvalid)
	}
	if s.HasRemote() && s.RemoteAPIBaseURL == "" {
		return fmt.Errorf("%w: remote API base URL is required with a public folder", ErrConfigInvalid)
	}
	return nil
}

// ValidateForBot additionally checks what the chat transport needs.
func (s Settings) ValidateForBot() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.BotToken == "" {
		return fmt.Errorf("%w: telegram token is required", ErrConfigInvalid)
	}
	if len(s.AllowedUserIDs) == 0 {
		return fmt.Errorf("%w: at least one allowed user ID is required", ErrConfigInvalid)
	}
	return nil
}
