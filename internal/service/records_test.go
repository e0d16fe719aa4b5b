package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/mock"
	"github.com/ecowaste/fieldsync/internal/store"
	"github.com/ecowaste/fieldsync/models"
)

func newTestRecordSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	now time.Time,
) (
	*recordService,
	*mock.MockRootRepository,
	*mock.MockMasterDataRepository,
) {
	t.Helper()

	root := mock.NewMockRootRepository(ctrl)
	master := mock.NewMockMasterDataRepository(ctrl)
	pending := NewPendingCounter(root, logger.Nop())

	svc := NewRecordService(root, master, pending, logger.Nop()).(*recordService)
	svc.now = func() time.Time { return now }

	return svc, root, master
}

func TestRecordService_CreateActivity_RecomputesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, root, _ := newTestRecordSvc(t, ctrl, time.Now())
	ctx := context.Background()

	created := models.Activity{SyncMeta: taggedMeta("act-1", "", models.TagCreate)}
	root.EXPECT().CreateActivity(ctx, gomock.Any()).Return(created, nil)
	root.EXPECT().Root(ctx).Return(models.SyncRoot{Activities: []models.Activity{created}}, nil)

	out, err := svc.CreateActivity(ctx, models.Activity{Type: "collection"})
	require.NoError(t, err)
	assert.Equal(t, "act-1", out.ID)
	assert.Equal(t, 1, svc.pending.Value())
}

func TestRecordService_StartActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)
	svc, root, _ := newTestRecordSvc(t, ctrl, now)
	ctx := context.Background()

	stored := models.SyncRoot{
		Activities: []models.Activity{{SyncMeta: taggedMeta("act-1", "", models.TagNone), Status: "planned"}},
	}
	loc := models.Geolocation{Latitude: 41.38, Longitude: 2.17}

	gomock.InOrder(
		root.EXPECT().Root(ctx).Return(stored, nil),
		root.EXPECT().UpdateActivity(ctx, gomock.Any(), models.TagStart).DoAndReturn(
			func(_ context.Context, act models.Activity, _ models.MutationTag) error {
				assert.Equal(t, "started", act.Status)
				require.NotNil(t, act.StartedAt)
				assert.Equal(t, now, *act.StartedAt)
				assert.Equal(t, loc, act.Location)
				return nil
			},
		),
		root.EXPECT().Root(ctx).Return(stored, nil), // recompute
	)

	require.NoError(t, svc.StartActivity(ctx, "act-1", loc))
}

func TestRecordService_StartActivity_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, root, _ := newTestRecordSvc(t, ctrl, time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)

	err := svc.StartActivity(ctx, "ghost", models.Geolocation{})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordService_DeleteActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, root, _ := newTestRecordSvc(t, ctrl, time.Now())
	ctx := context.Background()

	stored := models.SyncRoot{
		Activities: []models.Activity{{SyncMeta: taggedMeta("act-1", "", models.TagNone)}},
	}

	root.EXPECT().Root(ctx).Return(stored, nil)
	root.EXPECT().UpdateActivity(ctx, gomock.Any(), models.TagDelete).Return(nil)
	root.EXPECT().Root(ctx).Return(stored, nil)

	require.NoError(t, svc.DeleteActivity(ctx, "act-1"))
}

func TestRecordService_DeleteTransaction_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, root, _ := newTestRecordSvc(t, ctrl, time.Now())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)

	err := svc.DeleteTransaction(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestRecordService_DeleteTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, root, _ := newTestRecordSvc(t, ctrl, time.Now())
	ctx := context.Background()

	stored := models.SyncRoot{
		Tasks: []models.Task{{SyncMeta: taggedMeta("task-1", "tx-1", models.TagNone)}},
	}

	root.EXPECT().Root(ctx).Return(stored, nil)
	root.EXPECT().UpdateTask(ctx, gomock.Any(), models.TagDelete).Return(nil)
	root.EXPECT().Root(ctx).Return(stored, nil)

	require.NoError(t, svc.DeleteTask(ctx, "task-1"))
}

func TestRecordService_RegisterThirdParty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, master := newTestRecordSvc(t, ctrl, time.Now())
	ctx := context.Background()

	row := models.ThirdParty{Name: "Field Producer"}
	created := models.ThirdParty{ID: "tp-1", Name: "Field Producer", Tag: models.TagCreate}
	master.EXPECT().CreateThirdParty(ctx, row).Return(created, nil)

	out, err := svc.RegisterThirdParty(ctx, row)
	require.NoError(t, err)
	assert.Equal(t, "tp-1", out.ID)
	assert.Equal(t, models.TagCreate, out.Tag)
}
