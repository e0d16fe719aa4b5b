package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied by validation when a field is left unset by all sources.
const (
	defaultAppName         = "fieldsync"
	defaultDSN             = "fieldsync.db"
	defaultRequestTimeout  = 30 * time.Second
	defaultRefreshInterval = 5 * time.Minute
)

// ClientApp holds application-level settings used by the client.
type ClientApp struct {
	// Name is the application name; it prefixes backup file names.
	Name string
	// LogFile is the path of the client log file. Empty means stdout.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base address of the remote field-operations API.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// BackupDir is the directory emergency backups are written into.
	BackupDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the background refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Name:    cfg.App.Name,
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			BackupDir: cfg.Storage.BackupDir,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}

	return clientCfg, clientCfg.validate()
}

// validate applies defaults for optional fields and rejects configurations
// that cannot produce a working client.
func (c *ClientConfig) validate() error {
	if c.App.Name == "" {
		c.App.Name = defaultAppName
	}
	if c.Storage.DB.DSN == "" {
		c.Storage.DB.DSN = defaultDSN
	}
	if c.Adapter.RequestTimeout <= 0 {
		c.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if c.Workers.RefreshInterval <= 0 {
		c.Workers.RefreshInterval = defaultRefreshInterval
	}

	if c.Adapter.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidAdapterConfigs)
	}

	// The mutation queue must survive restarts, so an in-memory database
	// can never back it.
	if c.Storage.DB.DSN == ":memory:" || strings.Contains(c.Storage.DB.DSN, "mode=memory") {
		return fmt.Errorf("%w: in-memory database %q cannot hold the offline queue", ErrInvalidStorageConfigs, c.Storage.DB.DSN)
	}

	return nil
}
