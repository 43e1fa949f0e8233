// Package config handles configuration for the admin console,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the admin console.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - StateDir: directory holding the persisted session credential.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	BaseURL        string
	StateDir       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.StateDir = defaultStateDir()
	c.RequestTimeout = 30 * time.Second
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".btx-admin"
	}
	return filepath.Join(home, ".btx-admin")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
