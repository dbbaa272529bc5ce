package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"testsrv/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks the keys a test touches; t.Setenv restores them afterwards,
// including values written by godotenv during the test.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t, "SERVER_HOST", "SERVER_PORT", "SERVER_GRACEFUL", "SITE_ROOT", "SITE_BROWSE", "LOG_LEVEL", "LOG_FORMAT", "STORAGE_BUCKET")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Server.Host)
	assert.Equal(t, "5080", cfg.Server.Port)
	assert.True(t, cfg.Server.Graceful)
	assert.Equal(t, 5, cfg.Server.ShutdownTimeoutSeconds)
	assert.Equal(t, ":5080", cfg.Server.Addr())

	assert.Equal(t, "Content/.out", cfg.Site.Root)
	assert.True(t, cfg.Site.Browse)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)

	assert.Equal(t, "site", cfg.Storage.Bucket)
	assert.False(t, cfg.Storage.UseSSL)
	assert.Equal(t, 30, cfg.Storage.TimeoutSeconds)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t, "SERVER_PORT", "SERVER_GRACEFUL", "SITE_BROWSE")
	t.Setenv("SERVER_PORT", "6060")
	t.Setenv("SERVER_GRACEFUL", "false")
	t.Setenv("SITE_BROWSE", "false")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "6060", cfg.Server.Port)
	assert.False(t, cfg.Server.Graceful)
	assert.False(t, cfg.Site.Browse)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	clearEnv(t, "SITE_ROOT", "LOG_LEVEL", "STORAGE_BUCKET")

	dir := t.TempDir()
	env := "SITE_ROOT=/srv/www\nLOG_LEVEL=debug\nSTORAGE_BUCKET=blog\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "/srv/www", cfg.Site.Root)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "blog", cfg.Storage.Bucket)
}
