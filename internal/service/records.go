package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/store"
	"github.com/ecowaste/fieldsync/models"
)

type recordService struct {
	root    store.RootRepository
	master  store.MasterDataRepository
	pending *PendingCounter
	logger  *logger.Logger

	now func() time.Time
}

// NewRecordService builds the local-write surface. Every mutation persists
// through the repositories and then recomputes the pending counter, keeping
// the UI-facing count consistent with storage.
func NewRecordService(root store.RootRepository, master store.MasterDataRepository, pending *PendingCounter, logger *logger.Logger) RecordService {
	return &recordService{root: root, master: master, pending: pending, logger: logger, now: time.Now}
}

func (r *recordService) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	out, err := r.root.CreateActivity(ctx, activity)
	r.pending.Recompute(ctx)
	return out, err
}

func (r *recordService) UpdateActivity(ctx context.Context, activity models.Activity) error {
	err := r.root.UpdateActivity(ctx, activity, models.TagUpdate)
	r.pending.Recompute(ctx)
	return err
}

// StartActivity marks the activity as initiated in the field: its status
// and start time are set and it is tagged Start for the next upload pass.
func (r *recordService) StartActivity(ctx context.Context, id string, location models.Geolocation) error {
	activity, err := r.findActivity(ctx, id)
	if err != nil {
		return err
	}

	startedAt := r.now()
	activity.Status = "started"
	activity.StartedAt = &startedAt
	if activity.Location.IsZero() {
		activity.Location = location
	}

	err = r.root.UpdateActivity(ctx, activity, models.TagStart)
	r.pending.Recompute(ctx)
	return err
}

func (r *recordService) DeleteActivity(ctx context.Context, id string) error {
	activity, err := r.findActivity(ctx, id)
	if err != nil {
		return err
	}

	err = r.root.UpdateActivity(ctx, activity, models.TagDelete)
	r.pending.Recompute(ctx)
	return err
}

func (r *recordService) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	out, err := r.root.CreateTransaction(ctx, tx)
	r.pending.Recompute(ctx)
	return out, err
}

func (r *recordService) UpdateTransaction(ctx context.Context, tx models.Transaction) error {
	err := r.root.UpdateTransaction(ctx, tx, models.TagUpdate)
	r.pending.Recompute(ctx)
	return err
}

func (r *recordService) DeleteTransaction(ctx context.Context, id string) error {
	root, err := r.root.Root(ctx)
	if err != nil {
		return err
	}

	for _, tx := range root.Transactions {
		if tx.ID == id {
			err = r.root.UpdateTransaction(ctx, tx, models.TagDelete)
			r.pending.Recompute(ctx)
			return err
		}
	}
	return fmt.Errorf("%w: transaction %s", store.ErrNotFound, id)
}

func (r *recordService) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	out, err := r.root.CreateTask(ctx, task)
	r.pending.Recompute(ctx)
	return out, err
}

func (r *recordService) UpdateTask(ctx context.Context, task models.Task) error {
	err := r.root.UpdateTask(ctx, task, models.TagUpdate)
	r.pending.Recompute(ctx)
	return err
}

func (r *recordService) DeleteTask(ctx context.Context, id string) error {
	root, err := r.root.Root(ctx)
	if err != nil {
		return err
	}

	for _, task := range root.Tasks {
		if task.ID == id {
			err = r.root.UpdateTask(ctx, task, models.TagDelete)
			r.pending.Recompute(ctx)
			return err
		}
	}
	return fmt.Errorf("%w: task %s", store.ErrNotFound, id)
}

func (r *recordService) RegisterThirdParty(ctx context.Context, row models.ThirdParty) (models.ThirdParty, error) {
	return r.master.CreateThirdParty(ctx, row)
}

func (r *recordService) Root(ctx context.Context) (models.SyncRoot, error) {
	return r.root.Root(ctx)
}

func (r *recordService) findActivity(ctx context.Context, id string) (models.Activity, error) {
	root, err := r.root.Root(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	for _, activity := range root.Activities {
		if activity.ID == id {
			return activity, nil
		}
	}
	return models.Activity{}, fmt.Errorf("%w: activity %s", store.ErrNotFound, id)
}
