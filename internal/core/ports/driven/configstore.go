package driven

import "github.com/custodia-labs/regsnap-cli/internal/core/domain"

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g. TOML files) and defaults.
type ConfigStore interface {
	// Load reads the persisted settings, filling defaults for missing
	// keys. A store that has never been written returns the defaults.
	Load() (*domain.Settings, error)

	// Save persists the settings.
	Save(settings *domain.Settings) error

	// Path returns the configuration file path, if file-backed.
	Path() string
}
