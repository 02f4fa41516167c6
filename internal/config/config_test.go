package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.AccountRoot, "account root defaults to the home directory")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "auto", cfg.LogFormat)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TROPHYCASE_ACCOUNT_ROOT", "/srv/library")
	t.Setenv("TROPHYCASE_SCHEMA_URL", "https://api.example.com/schema/{appid}")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/library", cfg.AccountRoot)
	assert.Equal(t, "https://api.example.com/schema/{appid}", cfg.SchemaURL)
	assert.Equal(t, "debug", cfg.LogLevel)
}
