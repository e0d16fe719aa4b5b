package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ecowaste/fieldsync/internal/adapter"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/store"
	"github.com/ecowaste/fieldsync/models"
)

type backupService struct {
	root    store.RootRepository
	master  store.MasterDataRepository
	api     adapter.RemoteAPI
	wiper   StorageWiper
	pending *PendingCounter
	logger  *logger.Logger

	appName   string
	backupDir string

	now func() time.Time
}

func NewBackupService(
	root store.RootRepository,
	master store.MasterDataRepository,
	api adapter.RemoteAPI,
	wiper StorageWiper,
	pending *PendingCounter,
	appName, backupDir string,
	logger *logger.Logger,
) BackupService {
	return &backupService{
		root:      root,
		master:    master,
		api:       api,
		wiper:     wiper,
		pending:   pending,
		appName:   appName,
		backupDir: backupDir,
		logger:    logger,
		now:       time.Now,
	}
}

// ForceQuit implements [BackupService]. The local write is mandatory and
// blocking: on failure nothing is cleared and the error propagates. The
// remote POST of the same envelope is fire-and-forget — the local file is
// the durable copy of record.
func (s *backupService) ForceQuit(ctx context.Context) (string, error) {
	root, err := s.root.Root(ctx)
	if err != nil {
		return "", fmt.Errorf("read queue for backup: %w", err)
	}

	// Pending third-party registrations are local mutations too; they must
	// reach the export before the wipe, like the root records.
	thirdParties, err := s.master.ThirdParties(ctx)
	if err != nil {
		return "", fmt.Errorf("read third parties for backup: %w", err)
	}

	ts := s.now()
	envelope := models.NewBackupEnvelope(root, thirdParties, ts)

	payload, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encode envelope: %v", ErrBackupWrite, err)
	}

	dir := s.backupDir
	if dir == "" {
		dir = "."
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create backup dir: %v", ErrBackupWrite, err)
	}

	path := filepath.Join(dir, models.BackupFileName(s.appName, ts))
	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBackupWrite, err)
	}
	s.logger.Info().Str("path", path).Int("records", len(envelope.Requests)).Msg("backup written")

	if err = s.api.Backup(ctx, envelope); err != nil {
		s.logger.Warn().Err(err).Msg("remote backup failed, local file is the copy of record")
	}

	if err = s.wiper.ClearAll(ctx); err != nil {
		return path, fmt.Errorf("clear local storage after backup: %w", err)
	}

	s.pending.Recompute(ctx)
	return path, nil
}
