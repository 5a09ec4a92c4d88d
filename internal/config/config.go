// Package config handles TOML-based configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	MaxWidth           int     `toml:"max_width"`
	MaxHeight          int     `toml:"max_height"`
	Responsive         bool    `toml:"responsive"`
	DefaultAspectRatio float64 `toml:"default_aspect_ratio"`
	Scheme             string  `toml:"scheme"`
	CachePath          string  `toml:"cache_path"`
	Debug              bool    `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		MaxWidth:           640,
		MaxHeight:          480,
		Responsive:         false,
		DefaultAspectRatio: 16.0 / 9.0,
		Scheme:             "https",
		Debug:              false,
	}
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vidembed"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "vidembed"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// If the config file doesn't exist, defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds.
func (c *Config) Validate() error {
	if c.MaxWidth <= 0 {
		return fmt.Errorf("max_width must be positive, got %d", c.MaxWidth)
	}
	if c.MaxHeight <= 0 {
		return fmt.Errorf("max_height must be positive, got %d", c.MaxHeight)
	}
	if c.DefaultAspectRatio <= 0 {
		return fmt.Errorf("default_aspect_ratio must be positive, got %g", c.DefaultAspectRatio)
	}
	if c.Scheme != "http" && c.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q (valid: http, https)", c.Scheme)
	}
	return nil
}

// ResolveCachePath returns the cache database path, falling back to the
// XDG data directory when no explicit path is configured.
func (c *Config) ResolveCachePath() (string, error) {
	if c.CachePath != "" {
		return c.CachePath, nil
	}
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "vidembed", "embeds.db"), nil
}
