package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/mock"
	"github.com/ecowaste/fieldsync/models"
)

func newTestBackupSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	dir string,
	now time.Time,
) (
	*backupService,
	*mock.MockRemoteAPI,
	*mock.MockRootRepository,
	*mock.MockMasterDataRepository,
	*mock.MockStorageWiper,
) {
	t.Helper()

	api := mock.NewMockRemoteAPI(ctrl)
	root := mock.NewMockRootRepository(ctrl)
	master := mock.NewMockMasterDataRepository(ctrl)
	wiper := mock.NewMockStorageWiper(ctrl)
	pending := NewPendingCounter(root, logger.Nop())

	svc := NewBackupService(root, master, api, wiper, pending, "fieldsync", dir, logger.Nop()).(*backupService)
	svc.now = func() time.Time { return now }

	return svc, api, root, master, wiper
}

func TestBackupService_ForceQuit_WritesFileAndClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	now := time.Date(2025, 6, 1, 17, 45, 12, 0, time.UTC)
	svc, api, root, master, wiper := newTestBackupSvc(t, ctrl, dir, now)
	ctx := context.Background()

	queued := models.SyncRoot{
		Activities:   []models.Activity{{SyncMeta: taggedMeta("act-1", "", models.TagCreate)}},
		Transactions: []models.Transaction{{SyncMeta: taggedMeta("tx-1", "act-1", models.TagUpdate)}},
	}

	root.EXPECT().Root(ctx).Return(queued, nil)
	master.EXPECT().ThirdParties(ctx).Return([]models.ThirdParty{
		{ID: "tp-1", Name: "Acme Recycling", Tag: models.TagCreate},
		{ID: "tp-2", Name: "Server Row"},
	}, nil)
	api.EXPECT().Backup(ctx, gomock.Any()).Return(nil)
	wiper.EXPECT().ClearAll(ctx).Return(nil)
	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil) // pending recompute

	path, err := svc.ForceQuit(ctx)
	require.NoError(t, err)
	assert.Contains(t, path, "fieldsync-backup-2025-06-01T17-45-12Z.json")

	payload, err := os.ReadFile(path)
	require.NoError(t, err)

	var env models.BackupEnvelope
	require.NoError(t, json.Unmarshal(payload, &env))
	require.Len(t, env.Requests, 3)
	assert.Equal(t, "2025-06-01T17:45:12Z", env.Timestamp)

	// The unacknowledged field registration rides along; the synced row
	// does not.
	last := env.Requests[2]
	assert.Equal(t, models.BackupKindThirdParty, last.Kind)
	require.NotNil(t, last.ThirdParty)
	assert.Equal(t, "tp-1", last.ThirdParty.ID)
}

func TestBackupService_ForceQuit_RemoteFailureIsBestEffort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	svc, api, root, master, wiper := newTestBackupSvc(t, ctrl, dir, time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{
		Tasks: []models.Task{{SyncMeta: taggedMeta("task-1", "", models.TagCreate)}},
	}, nil)
	master.EXPECT().ThirdParties(ctx).Return(nil, nil)
	// The server is unreachable; the local file still counts.
	api.EXPECT().Backup(ctx, gomock.Any()).Return(errors.New("connection refused"))
	wiper.EXPECT().ClearAll(ctx).Return(nil)
	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)

	path, err := svc.ForceQuit(ctx)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestBackupService_ForceQuit_LocalWriteFailureAbortsWipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A file where the backup directory should be makes MkdirAll fail.
	dir := t.TempDir() + "/blocked"
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o600))

	svc, _, root, master, _ := newTestBackupSvc(t, ctrl, dir, time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)
	master.EXPECT().ThirdParties(ctx).Return(nil, nil)

	// No Backup and no ClearAll expectations: neither may happen when the
	// durable local copy cannot be written.
	_, err := svc.ForceQuit(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBackupWrite)
}

func TestBackupService_ForceQuit_WipeFailureStillReturnsPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	svc, api, root, master, wiper := newTestBackupSvc(t, ctrl, dir, time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)
	master.EXPECT().ThirdParties(ctx).Return(nil, nil)
	api.EXPECT().Backup(ctx, gomock.Any()).Return(nil)
	wiper.EXPECT().ClearAll(ctx).Return(errors.New("database is locked"))

	path, err := svc.ForceQuit(ctx)
	require.Error(t, err)
	assert.NotEmpty(t, path, "the written backup must be reported even when the wipe fails")
	assert.FileExists(t, path)
}

func TestBackupService_ForceQuit_RootReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, root, _, _ := newTestBackupSvc(t, ctrl, t.TempDir(), time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, errors.New("disk error"))

	_, err := svc.ForceQuit(ctx)
	require.Error(t, err)
}

func TestBackupService_ForceQuit_ThirdPartyReadFailureAbortsWipe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, root, master, _ := newTestBackupSvc(t, ctrl, t.TempDir(), time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)
	master.EXPECT().ThirdParties(ctx).Return(nil, errors.New("disk error"))

	// Nothing may be written or wiped when the export would be incomplete.
	_, err := svc.ForceQuit(ctx)
	require.Error(t, err)
}
