// Package config loads optional tuning from config.yaml in the data
// directory, with environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/zarlcorp/zsettings/internal/i18n"
	"github.com/zarlcorp/zsettings/internal/kv"
	"github.com/zarlcorp/zsettings/internal/state"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the data directory.
const FileName = "config.yaml"

// Environment overrides, e.g. ZSETTINGS_DELAY=0s for instant saves.
const (
	EnvDelay   = "ZSETTINGS_DELAY"
	EnvBackend = "ZSETTINGS_BACKEND"
)

// Config is the application tuning.
type Config struct {
	// Delay is how long simulated account operations take.
	Delay           time.Duration `yaml:"delay"`
	Backend         string        `yaml:"backend"`
	DefaultLanguage string        `yaml:"default_language"`
	DefaultName     string        `yaml:"default_name"`
	DefaultEmail    string        `yaml:"default_email"`
	DefaultPassword string        `yaml:"default_password"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Delay:           time.Second,
		Backend:         kv.BackendVault,
		DefaultLanguage: string(i18n.English),
		DefaultName:     "Admin",
		DefaultEmail:    "admin@example.com",
		DefaultPassword: "Admin@123",
	}
}

// Load reads dir/config.yaml over the defaults. A missing file is not an
// error. Environment overrides are applied last.
func Load(dir string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	if v := os.Getenv(EnvDelay); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvDelay, err)
		}
		cfg.Delay = d
	}
	if v := os.Getenv(EnvBackend); v != "" {
		cfg.Backend = v
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %s", c.Delay)
	}
	if !slices.Contains(kv.Backends, c.Backend) {
		return fmt.Errorf("backend must be one of %v, got %q", kv.Backends, c.Backend)
	}
	if _, err := i18n.Parse(c.DefaultLanguage); err != nil {
		return fmt.Errorf("default_language: %w", err)
	}
	if c.DefaultPassword == "" {
		return errors.New("default_password must not be empty")
	}
	return nil
}

// StateDefaults returns the seed values for missing records.
func (c Config) StateDefaults() state.Defaults {
	return state.Defaults{
		Name:     c.DefaultName,
		Email:    c.DefaultEmail,
		Password: c.DefaultPassword,
		Language: i18n.Lang(c.DefaultLanguage),
	}
}
