package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.AllowOrigins)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "zoo", cfg.Database.Name)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.False(t, cfg.Storage.Enabled)
	assert.Equal(t, "zoo", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("STORAGE_ENABLED", "true")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.True(t, cfg.Storage.Enabled)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nDATABASE_NAME=zoo_test\n"), 0o600)
	require.NoError(t, err)
	t.Cleanup(func() {
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("DATABASE_NAME")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "zoo_test", cfg.Database.Name)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("Driver", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "mongodb")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, `database.driver: unsupported value "mongodb"`)
	})

	t.Run("Bucket", func(t *testing.T) {
		t.Setenv("STORAGE_ENABLED", "true")
		t.Setenv("STORAGE_BUCKET", " ")
		_, err := LoadConfig(t.TempDir())
		assert.ErrorContains(t, err, "storage.bucket is required")
	})
}
