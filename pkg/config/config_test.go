package config_test

import (
	"testing"

	"github.com/SscSPs/patrimony/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("IS_PRODUCTION", "")
	t.Setenv("DISPLAY_PRECISION", "")
	t.Setenv("CLIENT_NAME", "")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 2, cfg.DisplayPrecision)
	assert.Equal(t, "Alice", cfg.ClientName)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("DISPLAY_PRECISION", "4")
	t.Setenv("CLIENT_NAME", "Bob")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 4, cfg.DisplayPrecision)
	assert.Equal(t, "Bob", cfg.ClientName)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	t.Setenv("DISPLAY_PRECISION", "-3")
	t.Setenv("CLIENT_NAME", "Carol")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2, cfg.DisplayPrecision)

	t.Setenv("DISPLAY_PRECISION", "lots")
	cfg, err = config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DisplayPrecision)

	t.Setenv("DISPLAY_PRECISION", "0")
	cfg, err = config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.DisplayPrecision)
}
