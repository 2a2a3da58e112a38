package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is an intermediate DTO used only for reading JSON configuration
// files. Duration fields are expressed as strings such as "72h".
type jsonConfig struct {
	Addr            string `json:"addr"`
	DatabaseDSN     string `json:"database_dsn"`
	SecretKey       string `json:"secret_key"`
	TokenExpiration string `json:"token_expiration"`
}

// parseJSON loads configuration values from the JSON file named by the -c
// flag (or PORTAL_CONFIG). When no file is named it is a no-op. Only fields
// present in the file overwrite the current values.
func parseJSON(config *Config) error {
	path := jsonConfigPath()
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenExpiration != "" {
		d, err := time.ParseDuration(c.TokenExpiration)
		if err != nil {
			return fmt.Errorf("config: token_expiration: %w", err)
		}
		config.TokenExpiration = d
	}

	return nil
}
