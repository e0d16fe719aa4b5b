package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	path := writeJSONConfig(t, `{
		"app": {"name": "json-app", "log_file": "client.log"},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "30s"},
		"storage": {"db": {"dsn": "field.db"}, "backup_dir": "backups"},
		"workers": {"refresh_interval": "5m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-app", cfg.App.Name)
	assert.Equal(t, "client.log", cfg.App.LogFile)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "field.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "backups", cfg.Storage.BackupDir)
	assert.Equal(t, 5*time.Minute, cfg.Workers.RefreshInterval)
}

func TestParseJSON_Malformed(t *testing.T) {
	path := writeJSONConfig(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	// Bare numbers are nanoseconds.
	require.NoError(t, json.Unmarshal([]byte(`5000000000`), &d))
	assert.Equal(t, 5*time.Second, time.Duration(d))

	require.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
}

func TestDuration_MarshalJSON(t *testing.T) {
	payload, err := json.Marshal(Duration(45 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"45s"`, string(payload))
}
