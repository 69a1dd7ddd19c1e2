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
	t.Setenv("GITHUB_API_URL", "")
	os.Unsetenv("GITHUB_API_URL")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GITHUB_API_URL", "http://localhost:9999")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999", cfg.GitHub.BaseURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "server:\n  address: \":9090\"\nlog:\n  level: warn\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := Load("")
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
}
