package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/thenoetrevino/orderbook/internal/store"
	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvSource    = "ORDERBOOK_SOURCE"
	EnvThemeFile = "ORDERBOOK_THEME_FILE"
)

// Config represents the application configuration
type Config struct {
	// Source is the book to load: an .xlsx workbook or a .db sheet store.
	Source       string             `yaml:"source"`
	Sections     store.SectionNames `yaml:"sections"`
	Currency     string             `yaml:"currency"`
	Placeholders Placeholders       `yaml:"placeholders"`
	Log          LogConfig          `yaml:"log"`
	Theme        Theme              `yaml:"theme"`
}

// Placeholders label codes that have no matching row. Empty values use the
// services' defaults.
type Placeholders struct {
	Client string `yaml:"client"`
	Item   string `yaml:"item"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `yaml:"level"`
	// File defaults to ~/.orderbook/logs/orderbook.log when empty.
	File string `yaml:"file"`
}

// SlogLevel parses Level, accepting the names slog understands.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// Default returns a config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// loadThemeFile merges the theme from ORDERBOOK_THEME_FILE if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme Theme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.Theme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from path, or from the user's config directory when path
// is empty. A missing default file yields the defaults; a missing explicit
// file is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = getConfigPath(); err != nil {
			path = ""
		}
	}

	config := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	loadThemeFile(config)

	if source := strings.TrimSpace(os.Getenv(EnvSource)); source != "" {
		config.Source = source
	}

	// Fill in any missing values with defaults
	config.applyDefaults()

	if _, err := config.Log.SlogLevel(); err != nil {
		return nil, err
	}

	return config, nil
}

// Save writes the config to path, or to the user's config directory when
// path is empty.
func (c *Config) Save(path string) error {
	if path == "" {
		var err error
		if path, err = getConfigPath(); err != nil {
			return err
		}
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// StoreOptions maps the config onto store load options.
func (c *Config) StoreOptions(logger *slog.Logger) store.Options {
	return store.Options{
		Sections: c.Sections,
		Currency: c.Currency,
		Logger:   logger,
	}
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "orderbook", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "orderbook", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	d := store.DefaultSectionNames()
	if c.Sections.Organizations == "" {
		c.Sections.Organizations = d.Organizations
	}
	if c.Sections.Items == "" {
		c.Sections.Items = d.Items
	}
	if c.Sections.Records == "" {
		c.Sections.Records = d.Records
	}
	if c.Currency == "" {
		c.Currency = store.DefaultCurrency
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	c.Theme.ApplyDefaults()
}
