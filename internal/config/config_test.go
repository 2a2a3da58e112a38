package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":3000", cfg.Addr)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, 72*time.Hour, cfg.TokenExpiration)
	assert.Empty(t, cfg.SecretKey, "the signing key must never have a default")
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	t.Run("rejects a missing secret key", func(t *testing.T) {
		assert.ErrorIs(t, cfg.Validate(), ErrMissingSecretKey)
	})

	t.Run("accepts a configured secret key", func(t *testing.T) {
		cfg.SecretKey = "some-secret"
		assert.NoError(t, cfg.Validate())
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("PORTAL_ADDR", ":8080")
	t.Setenv("PORTAL_SECRET_KEY", "env-secret")
	t.Setenv("PORTAL_TOKEN_EXPIRATION", "24h")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.TokenExpiration)
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"addr": ":9090",
		"secret_key": "json-secret",
		"token_expiration": "12h"
	}`), 0o600))
	t.Setenv("PORTAL_CONFIG", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	require.NoError(t, parseJSON(cfg))

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, 12*time.Hour, cfg.TokenExpiration)
	// Fields absent from the file keep their defaults.
	assert.NotEmpty(t, cfg.DatabaseDSN)
}

func TestParseJSON_BadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"token_expiration": "soon"}`), 0o600))
	t.Setenv("PORTAL_CONFIG", path)

	cfg := &Config{}
	cfg.LoadDefaults()
	assert.Error(t, parseJSON(cfg))
}
