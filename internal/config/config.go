// Package config handles runtime configuration for the portal server,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import (
	"errors"
	"time"
)

// ErrMissingSecretKey is returned by Validate when no signing key was
// configured through any source.
var ErrMissingSecretKey = errors.New("config: secret key is required")

// Config holds runtime settings for the portal server.
//
// Fields:
//   - Addr: bind address for the HTTP listener.
//   - DatabaseDSN: SQLite DSN.
//   - SecretKey: HMAC secret for signing JWTs (HS256). There is no default;
//     the server refuses to start without one.
//   - TokenExpiration: lifetime of issued tokens.
type Config struct {
	Addr            string
	DatabaseDSN     string
	SecretKey       string
	TokenExpiration time.Duration
}

// LoadDefaults populates Config with development defaults. The secret key is
// deliberately left empty so it can never ship as a source literal.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.DatabaseDSN = "file:covid19portal.db?_pragma=busy_timeout(5000)"
	c.SecretKey = ""
	c.TokenExpiration = 72 * time.Hour
}

// Validate checks that all required settings are present.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}

// Load builds a Config by applying defaults, then overlaying values from an
// optional JSON file, environment variables, and finally command-line flags.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
