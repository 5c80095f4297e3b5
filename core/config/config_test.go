package config_test

import (
	"testing"

	"game-launcher/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Server.Port)
	assert.True(t, cfg.Server.Enabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Data.Dir)
	assert.Empty(t, cfg.Stores.Steam.Root)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STORES_GOG_DATABASE", "/tmp/galaxy-2.0.db")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/galaxy-2.0.db", cfg.Stores.Gog.Database)
}
