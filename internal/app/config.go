package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"sealchat/internal/domain"
)

const configFilename = "config.yaml"

// Config holds per-home settings. The protection mode is process-wide state:
// it changes only when the user saves a new value, and an existing on-disk
// keystore is re-encrypted on the next save, not retroactively.
type Config struct {
	Home string `yaml:"-"`

	Mode         domain.StoreMode `yaml:"mode"`
	MaxPlaintext int              `yaml:"max_plaintext,omitempty"`
}

// LoadConfig reads the settings file under home, falling back to defaults
// when none exists.
func LoadConfig(home string) (Config, error) {
	cfg := Config{Home: home, Mode: domain.StoreModePassword}

	b, err := os.ReadFile(filepath.Join(home, configFilename))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", configFilename, err)
	}
	if !cfg.Mode.Valid() {
		return Config{}, fmt.Errorf("unknown store mode %q in %s", cfg.Mode, configFilename)
	}
	return cfg, nil
}

// Save writes the settings file.
func (c Config) Save() error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Home, configFilename), b, 0o600)
}
