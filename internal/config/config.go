// Package config provides TOML settings parsing and XDG path helpers.
// This is the settings boundary: chunk config contract violations are
// rejected here, before anything reaches the chunker.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Reading ReadingConfig `toml:"reading"`
}

// ReadingConfig maps reading-related settings. Pointer fields distinguish
// "unset" from explicit values.
type ReadingConfig struct {
	MaxWords *int  `toml:"max-words"`
	Autoplay *bool `toml:"autoplay"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not
// an error; a max-words setting below 1 is.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return FileConfig{}, err
	}
	return cfg, nil
}

// Validate rejects settings that violate the chunker's contract.
func Validate(cfg FileConfig) error {
	if cfg.Reading.MaxWords != nil && *cfg.Reading.MaxWords < 1 {
		return fmt.Errorf("reading.max-words must be at least 1, got %d", *cfg.Reading.MaxWords)
	}
	return nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "flick", "config.toml")
}

// DefaultLibraryPath returns the default path for the book cache database.
func DefaultLibraryPath() string {
	return filepath.Join(XDGDataHome(), "flick", "library.db")
}
