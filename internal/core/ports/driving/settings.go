package driving

import "github.com/custodia-labs/sercha-bot/internal/core/domain"

// SettingsService resolves the static process configuration.
type SettingsService interface {
	// Get returns settings with defaults applied for anything not configured.
	Get() (*domain.Settings, error)
}
