package service

import (
	"github.com/ecowaste/fieldsync/internal/adapter"
	"github.com/ecowaste/fieldsync/internal/config"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/store"
)

// ClientServices groups the service layer into a single value the
// application shell can pass around.
type ClientServices struct {
	Sync    SyncService
	Session SessionService
	Records RecordService
	Backup  BackupService
	Pending *PendingCounter
	Refresh RefreshJob
}

// NewClientServices wires the full service layer on top of the storage and
// transport layers. geo may be nil when the host platform offers no
// geolocation capability; records then upload without a position.
func NewClientServices(
	storages *store.ClientStorages,
	api adapter.RemoteAPI,
	geo GeolocationProvider,
	cfg *config.ClientConfig,
	log *logger.Logger,
) *ClientServices {
	pending := NewPendingCounter(storages.Root, log)
	sync := NewSyncService(api, storages.Root, storages.Master, storages, pending, geo, log)
	session := NewSessionService(api, storages.Tokens, sync, log)

	return &ClientServices{
		Sync:    sync,
		Session: session,
		Records: NewRecordService(storages.Root, storages.Master, pending, log),
		Backup:  NewBackupService(storages.Root, storages.Master, api, storages, pending, cfg.App.Name, cfg.Storage.BackupDir, log),
		Pending: pending,
		Refresh: NewRefreshJob(session),
	}
}
