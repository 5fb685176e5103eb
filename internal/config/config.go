// Package config loads and saves the demo application's configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the config file looked up in the working directory.
const FileName = ".crouton.json"

// Config represents the full crouton configuration
type Config struct {
	Demo DemoConfig `json:"demo"`
	UI   UIConfig   `json:"ui"`
}

// DemoConfig contains the messages shown by the demo keybindings
type DemoConfig struct {
	ErrorMessage string `json:"errorMessage"`
	InfoMessage  string `json:"infoMessage"`
}

// UIConfig contains terminal presentation settings
type UIConfig struct {
	AltScreen bool `json:"altScreen"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Demo: DemoConfig{
			ErrorMessage: "Upload failed",
			InfoMessage:  "Upload complete",
		},
		UI: UIConfig{
			AltScreen: true,
		},
	}
}

// Load loads configuration from the given directory with priority:
// 1. .crouton.json in the directory
// 2. Defaults
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return mergeWithDefaults(&cfg), nil
}

// Save saves configuration to the specified path
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// mergeWithDefaults fills empty fields from the defaults so a partial
// config file stays valid.
func mergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Demo.ErrorMessage == "" {
		cfg.Demo.ErrorMessage = defaults.Demo.ErrorMessage
	}
	if cfg.Demo.InfoMessage == "" {
		cfg.Demo.InfoMessage = defaults.Demo.InfoMessage
	}

	return cfg
}
