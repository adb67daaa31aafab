package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileKeepsDefaults(t *testing.T) {
	t.Cleanup(func() { config = defaultConfig() })

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("DB_HOST: db.internal\nDB_PORT: \"5432\"\nSESSION_DAYS: 14\n"), 0o600))

	LoadConfigFile(path)

	assert.Equal(t, "db.internal", GetConfig("DB_HOST"))
	assert.Equal(t, "5432", GetConfig("DB_PORT"))
	assert.Equal(t, 14, SessionDays())
	assert.Equal(t, "14", GetConfig("SESSION_DAYS"))
	assert.Equal(t, "MATRAFL_SESSION", GetConfig("SESSION_COOKIE_NAME"))
	assert.Equal(t, "*/7 * * * * *", GetConfig("SESSION_PURGE_SCHEDULE"))
	assert.Equal(t, "3000", GetConfig("APP_PORT"))
	assert.Empty(t, GetConfig("UNKNOWN"))
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Cleanup(func() { config = defaultConfig() })

	LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Equal(t, 7, SessionDays())
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := NewLogger("loud", "")
	assert.Error(t, err)

	dir := t.TempDir()
	logger, err := NewLogger("debug", filepath.Join(dir, "logs", "app.log"))
	require.NoError(t, err)
	logger.Debug("hello")
	assert.FileExists(t, filepath.Join(dir, "logs", "app.log"))
}
