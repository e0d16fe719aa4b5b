// Package client wires configuration, storage, transport and services into
// the runnable application.
package client

import (
	"fmt"

	"github.com/ecowaste/fieldsync/internal/adapter"
	"github.com/ecowaste/fieldsync/internal/config"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/service"
	"github.com/ecowaste/fieldsync/internal/store"
)

// App owns the fully wired client: configuration, storage, the remote API
// adapter and the service layer.
type App struct {
	Config   *config.ClientConfig
	Log      *logger.Logger
	Storages *store.ClientStorages
	Services *service.ClientServices
}

// NewApp assembles the application from the merged configuration. geo may be
// nil on platforms without a position capability.
func NewApp(overrides *config.StructuredConfig, geo service.GeolocationProvider) (*App, error) {
	cfg, err := config.GetClientConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewFileLogger("fieldsync", cfg.App.LogFile)

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	api, err := adapter.NewHTTPRemoteAPI(cfg.Adapter, storages.Tokens, log)
	if err != nil {
		return nil, fmt.Errorf("create remote api adapter: %w", err)
	}

	services := service.NewClientServices(storages, api, geo, cfg, log)

	return &App{
		Config:   cfg,
		Log:      log,
		Storages: storages,
		Services: services,
	}, nil
}

// Close stops background work and releases the storage connection.
func (a *App) Close() error {
	a.Services.Refresh.Stop()
	return a.Storages.Close()
}
