package driving

import "github.com/custodia-labs/csvnorm/internal/core/domain"

// SettingsService manages persisted run settings.
type SettingsService interface {
	// Get returns the current settings, defaults filled in.
	Get() (domain.Settings, error)

	// Set updates a single setting by key and persists it.
	// Returns domain.ErrInvalidInput for unknown keys or bad values.
	Set(key, value string) error

	// Keys returns the supported setting keys.
	Keys() []string

	// Path returns where settings are stored.
	Path() string
}
