// Package config loads countdown configuration from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// DefaultFileName is the event file name used when COUNTDOWN_FILE is unset.
const DefaultFileName = ".countdown.json"

// Config locates the event file.
type Config struct {
	// Dir is the directory holding the event file. Empty means the user's
	// home directory.
	Dir string `env:"COUNTDOWN_DIR"`
	// File is the event file name inside Dir.
	File string `env:"COUNTDOWN_FILE" envDefault:".countdown.json"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and resolves the default directory.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.File == "" {
		cfg.File = DefaultFileName
	}
	if cfg.Dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home directory: %w", err)
		}
		cfg.Dir = home
	}
	return cfg, nil
}

// Path returns the full path of the event file.
func (c Config) Path() string {
	return filepath.Join(c.Dir, c.File)
}
