package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/regsnap-cli/internal/core/domain"
	"github.com/custodia-labs/regsnap-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore is a file-based implementation of driven.ConfigStore using
// TOML. Settings live in config.toml inside the regsnap config directory.
type ConfigStore struct {
	filePath string
}

// NewConfigStore creates a TOML-based config store.
// If configDir is empty, defaults to ~/.regsnap/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".regsnap")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &ConfigStore{filePath: filepath.Join(configDir, "config.toml")}, nil
}

// Load reads the persisted settings, filling defaults for keys the file
// does not set. A missing file yields pure defaults.
func (s *ConfigStore) Load() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// A partially written file must not zero out required fields.
	if settings.BaseURL == "" {
		settings.BaseURL = domain.DefaultBaseURL
	}
	if settings.PerPage < 1 {
		settings.PerPage = domain.DefaultPerPage
	}
	if settings.Timeout <= 0 {
		settings.Timeout = domain.DefaultTimeout
	}
	return settings, nil
}

// Save persists the settings with restricted permissions.
func (s *ConfigStore) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
