package config_test

import (
	"testing"

	"github.com/blusalice3/sokubaikai/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "object", cfg.Snapshot.Backend)
	assert.Equal(t, "events.json", cfg.Snapshot.Name)
	assert.Equal(t, "sokubaikai", cfg.Storage.Bucket)
	assert.Equal(t, 30, cfg.Sheet.TimeoutSeconds)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SNAPSHOT_BACKEND", "database")
	t.Setenv("DATABASE_DRIVER", "sqlite")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "database", cfg.Snapshot.Backend)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}
