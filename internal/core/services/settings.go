package services

import (
	"time"

	"github.com/custodia-labs/sercha-bot/internal/core/domain"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-bot/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyBotToken        = "telegram.token"
	KeyDocumentsPath   = "documents.path"
	KeyPublicURL       = "yandex.public_url"
	KeyAPIBaseURL      = "yandex.api_base_url"
	KeyDownloadWorkers = "yandex.download_workers"
	KeyAllowedIDs      = "access.allowed_ids"
	KeyTimeoutSeconds  = "http.timeout_seconds"
	KeyVerbose         = "log.verbose"
)

// SettingsService resolves settings from a config store.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings, falling back to defaults for unset keys.
// The result is not validated; callers pick Validate or ValidateForBot.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		BotToken:         s.configStore.GetString(KeyBotToken),
		DocumentsPath:    s.getString(KeyDocumentsPath, defaults.DocumentsPath),
		PublicFolderURL:  s.configStore.GetString(KeyPublicURL),
		RemoteAPIBaseURL: s.getString(KeyAPIBaseURL, defaults.RemoteAPIBaseURL),
		AllowedUserIDs:   s.configStore.GetInt64Slice(KeyAllowedIDs),
		DownloadWorkers:  s.getInt(KeyDownloadWorkers, defaults.DownloadWorkers),
		RequestTimeout:   defaults.RequestTimeout,
		Verbose:          s.configStore.GetBool(KeyVerbose),
	}

	if secs := s.configStore.GetInt(KeyTimeoutSeconds); secs > 0 {
		settings.RequestTimeout = time.Duration(secs) * time.Second
	}

	return settings, nil
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}
