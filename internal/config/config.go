// Package config assembles the fieldsync client configuration from
// environment variables, explicit overrides (the CLI layer), and an optional
// JSON file. Sources are merged field-by-field; earlier sources win.
package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fieldsync application. It aggregates all sub-configurations and is
// populated by merging values from explicit overrides, environment
// variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application name
	// used in backup file names and the log file location.
	App App `envPrefix:"APP_"`

	// Adapter holds network address and timeout settings for the outbound
	// HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local persistence backends:
	// the SQLite key-value database and the backup export directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from overrides and environment variables.
	// Populated via the CONFIG environment variable or the -c flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the application name; it prefixes backup file names.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// LogFile is the path of the client log file. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings for the outbound HTTP transport layer.
type Adapter struct {
	// HTTPAddress is the base address of the remote field-operations API,
	// e.g. "https://api.example.com" or "localhost:8080".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the bounded wait applied to every single outbound
	// request (e.g. "30s", "1m"). The sync engine imposes no overall
	// deadline on top of it.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backends.
type Storage struct {
	// DB holds the local SQLite database settings.
	DB DB `envPrefix:"DB_"`

	// BackupDir is the directory where emergency backup envelopes are
	// written. Empty means the current working directory.
	// Env: STORAGE_BACKUP_DIR
	BackupDir string `env:"BACKUP_DIR"`
}

// DB holds connection settings for the local SQLite key-value store.
type DB struct {
	// DSN is the SQLite file path used for the local mutation queue
	// (e.g. "fieldsync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the background session-refresh
	// worker attempts a sync pass.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier source wins per field):
//  1. Explicit overrides (typically the CLI flag layer)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withJSON().
		build()
}
