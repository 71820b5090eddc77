package config_test

import (
	"testing"

	"finforge/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/finance.db", cfg.Database.Path)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, "finance-backups", cfg.Storage.Bucket)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "mysql")
	t.Setenv("DATABASE_NAME", "finance_test")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "finance_test", cfg.Database.Name)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Storage.Enabled())
}
