package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_NestedPrefixes(t *testing.T) {
	t.Setenv("APP_NAME", "fieldsync-test")
	t.Setenv("APP_LOG_FILE", "/var/log/fieldsync.log")
	t.Setenv("ADAPTER_ADDRESS", "api.example.com")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")
	t.Setenv("STORAGE_DB_DATABASE_URI", "/tmp/field.db")
	t.Setenv("STORAGE_BACKUP_DIR", "/tmp/backups")
	t.Setenv("WORKERS_REFRESH_INTERVAL", "2m")
	t.Setenv("CONFIG", "/etc/fieldsync.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "fieldsync-test", cfg.App.Name)
	assert.Equal(t, "/var/log/fieldsync.log", cfg.App.LogFile)
	assert.Equal(t, "api.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/field.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/backups", cfg.Storage.BackupDir)
	assert.Equal(t, 2*time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, "/etc/fieldsync.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
