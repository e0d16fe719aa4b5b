package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/mock"
	"github.com/ecowaste/fieldsync/models"
)

func TestPendingCounter_RecomputeFromRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := mock.NewMockRootRepository(ctrl)
	counter := NewPendingCounter(root, logger.Nop())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{
		Activities:   []models.Activity{{SyncMeta: taggedMeta("act-1", "", models.TagCreate)}},
		Transactions: []models.Transaction{{SyncMeta: taggedMeta("tx-1", "act-1", models.TagDelete)}},
		Tasks:        []models.Task{{SyncMeta: taggedMeta("task-1", "tx-1", models.TagNone)}},
	}, nil)

	counter.Recompute(ctx)
	assert.Equal(t, 2, counter.Value())
}

func TestPendingCounter_ReadErrorPublishesZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := mock.NewMockRootRepository(ctrl)
	counter := NewPendingCounter(root, logger.Nop())
	ctx := context.Background()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{
		Activities: []models.Activity{{SyncMeta: taggedMeta("act-1", "", models.TagCreate)}},
	}, nil)
	counter.Recompute(ctx)
	assert.Equal(t, 1, counter.Value())

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, errors.New("disk error"))
	counter.Recompute(ctx)
	assert.Equal(t, 0, counter.Value())
}

func TestPendingCounter_SubscriberNotified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	root := mock.NewMockRootRepository(ctrl)
	counter := NewPendingCounter(root, logger.Nop())
	ctx := context.Background()

	var seen []int
	unsubscribe := counter.Subscribe(func(n int) { seen = append(seen, n) })

	root.EXPECT().Root(ctx).Return(models.SyncRoot{
		Tasks: []models.Task{{SyncMeta: taggedMeta("task-1", "", models.TagUpdate)}},
	}, nil)
	counter.Recompute(ctx)

	unsubscribe()

	root.EXPECT().Root(ctx).Return(models.SyncRoot{}, nil)
	counter.Recompute(ctx)

	assert.Equal(t, []int{1}, seen)
}
