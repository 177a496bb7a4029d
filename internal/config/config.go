// Package config provides configuration for the scraper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lovrop/codeforces-scraper/internal/fetch"
)

// Config holds the scraper settings. Zero values fall back to defaults.
type Config struct {
	BaseURL        string `yaml:"base_url,omitempty"`
	UserAgent      string `yaml:"user_agent,omitempty"`
	TimeoutSeconds int    `yaml:"timeout_seconds,omitempty"`
	Workers        int    `yaml:"workers,omitempty"`
	OutputDir      string `yaml:"output_dir,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		BaseURL:        "https://codeforces.com",
		UserAgent:      fetch.DefaultUserAgent,
		TimeoutSeconds: int(fetch.DefaultTimeout / time.Second),
		Workers:        5,
		OutputDir:      ".",
	}
}

// Load reads the config file at path and overlays it on the defaults.
// A missing file is not an error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// normalize pulls nonsense values back to the defaults.
func (c *Config) normalize() {
	d := Default()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = d.TimeoutSeconds
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.OutputDir == "" {
		c.OutputDir = d.OutputDir
	}
}

// Timeout returns the HTTP timeout as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "codeforces-scraper", "config.yml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".codeforces-scraper", "config.yml")
	}
	return filepath.Join(home, ".config", "codeforces-scraper", "config.yml")
}
