package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

type rootRepository struct {
	*DB
	logger *logger.Logger

	now func() time.Time
}

func NewRootRepository(db *DB, logger *logger.Logger) RootRepository {
	return &rootRepository{DB: db, logger: logger, now: time.Now}
}

func (r *rootRepository) Root(ctx context.Context) (models.SyncRoot, error) {
	var root models.SyncRoot
	err := r.getJSON(ctx, keyTransactionRoot, &root)
	if errors.Is(err, ErrKeyNotFound) {
		return models.SyncRoot{}, nil
	}
	if err != nil {
		return models.SyncRoot{}, fmt.Errorf("load sync root: %w", err)
	}
	return root, nil
}

func (r *rootRepository) SaveRoot(ctx context.Context, root models.SyncRoot) error {
	if err := r.setJSON(ctx, keyTransactionRoot, root); err != nil {
		return fmt.Errorf("save sync root: %w", err)
	}
	return nil
}

func (r *rootRepository) CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error) {
	root, err := r.Root(ctx)
	if err != nil {
		return models.Activity{}, err
	}

	r.stampCreate(&activity.SyncMeta)
	root.Activities = append(root.Activities, activity)

	if err = r.SaveRoot(ctx, root); err != nil {
		return models.Activity{}, err
	}
	return activity, nil
}

func (r *rootRepository) CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	root, err := r.Root(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	if findActivity(root.Activities, tx.ParentID) == nil {
		return models.Transaction{}, fmt.Errorf("%w: transaction parent activity %s", ErrIntegrity, tx.ParentID)
	}

	r.stampCreate(&tx.SyncMeta)
	root.Transactions = append(root.Transactions, tx)

	if err = r.SaveRoot(ctx, root); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

func (r *rootRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	root, err := r.Root(ctx)
	if err != nil {
		return models.Task{}, err
	}

	// Activity-level tasks carry no parent; anything else must reference an
	// existing transaction.
	if task.ParentID != "" && findTransaction(root.Transactions, task.ParentID) == nil {
		return models.Task{}, fmt.Errorf("%w: task parent transaction %s", ErrIntegrity, task.ParentID)
	}

	r.stampCreate(&task.SyncMeta)
	root.Tasks = append(root.Tasks, task)

	if err = r.SaveRoot(ctx, root); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

func (r *rootRepository) UpdateActivity(ctx context.Context, activity models.Activity, tag models.MutationTag) error {
	root, err := r.Root(ctx)
	if err != nil {
		return err
	}

	existing := findActivity(root.Activities, activity.ID)
	if existing == nil {
		return fmt.Errorf("%w: activity %s", ErrNotFound, activity.ID)
	}

	// Deleting a record the server has never seen leaves nothing to
	// reconcile: drop it and its subtree locally instead of queueing a
	// delete for an unknown id.
	if tag == models.TagDelete && existing.Tag == models.TagCreate {
		removeActivitySubtree(&root, activity.ID)
		return r.SaveRoot(ctx, root)
	}

	meta := r.retag(existing.SyncMeta, tag)
	*existing = activity
	existing.SyncMeta = meta

	return r.SaveRoot(ctx, root)
}

func (r *rootRepository) UpdateTransaction(ctx context.Context, tx models.Transaction, tag models.MutationTag) error {
	root, err := r.Root(ctx)
	if err != nil {
		return err
	}

	existing := findTransaction(root.Transactions, tx.ID)
	if existing == nil {
		return fmt.Errorf("%w: transaction %s", ErrNotFound, tx.ID)
	}

	if tag == models.TagDelete && existing.Tag == models.TagCreate {
		removeTransactionSubtree(&root, tx.ID)
		return r.SaveRoot(ctx, root)
	}

	meta := r.retag(existing.SyncMeta, tag)
	*existing = tx
	existing.SyncMeta = meta

	return r.SaveRoot(ctx, root)
}

func (r *rootRepository) UpdateTask(ctx context.Context, task models.Task, tag models.MutationTag) error {
	root, err := r.Root(ctx)
	if err != nil {
		return err
	}

	existing := findTask(root.Tasks, task.ID)
	if existing == nil {
		return fmt.Errorf("%w: task %s", ErrNotFound, task.ID)
	}

	if tag == models.TagDelete && existing.Tag == models.TagCreate {
		removeTask(&root, task.ID)
		return r.SaveRoot(ctx, root)
	}

	meta := r.retag(existing.SyncMeta, tag)
	*existing = task
	existing.SyncMeta = meta

	return r.SaveRoot(ctx, root)
}

func (r *rootRepository) MarkActivitySynced(ctx context.Context, id string) error {
	return r.mutate(ctx, func(root *models.SyncRoot) error {
		a := findActivity(root.Activities, id)
		if a == nil {
			return fmt.Errorf("%w: activity %s", ErrNotFound, id)
		}
		clearTag(&a.SyncMeta)
		return nil
	})
}

func (r *rootRepository) MarkTransactionSynced(ctx context.Context, id string) error {
	return r.mutate(ctx, func(root *models.SyncRoot) error {
		tx := findTransaction(root.Transactions, id)
		if tx == nil {
			return fmt.Errorf("%w: transaction %s", ErrNotFound, id)
		}
		clearTag(&tx.SyncMeta)
		return nil
	})
}

func (r *rootRepository) MarkTaskSynced(ctx context.Context, id string) error {
	return r.mutate(ctx, func(root *models.SyncRoot) error {
		task := findTask(root.Tasks, id)
		if task == nil {
			return fmt.Errorf("%w: task %s", ErrNotFound, id)
		}
		clearTag(&task.SyncMeta)
		return nil
	})
}

func (r *rootRepository) RemoveActivity(ctx context.Context, id string) error {
	return r.mutate(ctx, func(root *models.SyncRoot) error {
		for i := range root.Activities {
			if root.Activities[i].ID == id {
				root.Activities = append(root.Activities[:i], root.Activities[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: activity %s", ErrNotFound, id)
	})
}

func (r *rootRepository) RemoveTransaction(ctx context.Context, id string) error {
	return r.mutate(ctx, func(root *models.SyncRoot) error {
		for i := range root.Transactions {
			if root.Transactions[i].ID == id {
				root.Transactions = append(root.Transactions[:i], root.Transactions[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: transaction %s", ErrNotFound, id)
	})
}

func (r *rootRepository) RemoveTask(ctx context.Context, id string) error {
	return r.mutate(ctx, func(root *models.SyncRoot) error {
		for i := range root.Tasks {
			if root.Tasks[i].ID == id {
				root.Tasks = append(root.Tasks[:i], root.Tasks[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: task %s", ErrNotFound, id)
	})
}

func (r *rootRepository) Clear(ctx context.Context) error {
	return r.deleteValue(ctx, keyTransactionRoot)
}

// mutate runs fn against the loaded root and persists the whole root on
// success. All per-record operations funnel through it so every change is a
// single read-modify-write of the composed row.
func (r *rootRepository) mutate(ctx context.Context, fn func(*models.SyncRoot) error) error {
	root, err := r.Root(ctx)
	if err != nil {
		return err
	}
	if err = fn(&root); err != nil {
		return err
	}
	return r.SaveRoot(ctx, root)
}

func (r *rootRepository) stampCreate(meta *models.SyncMeta) {
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	now := r.now()
	meta.Tag = models.TagCreate
	meta.TagSetAt = &now
}

// retag applies the requested tag on top of the record's current tag.
//
// Rules: a Create tag survives Update and Start requests (the record does
// not exist on the server yet, so the pending create already carries the
// newest fields); a Start tag survives Update requests; Delete overrides
// everything else. A Delete aimed at a Create-tagged record never reaches
// retag: the Update methods remove the record outright. TagSetAt changes
// only when the effective tag changes.
func (r *rootRepository) retag(meta models.SyncMeta, requested models.MutationTag) models.SyncMeta {
	effective := requested
	switch {
	case requested == models.TagDelete:
		effective = models.TagDelete
	case meta.Tag == models.TagCreate:
		effective = models.TagCreate
	case meta.Tag == models.TagStart && requested == models.TagUpdate:
		effective = models.TagStart
	}

	if effective == meta.Tag {
		return meta
	}

	if effective == models.TagNone {
		clearTag(&meta)
		return meta
	}

	now := r.now()
	meta.Tag = effective
	meta.TagSetAt = &now
	return meta
}

func clearTag(meta *models.SyncMeta) {
	meta.Tag = models.TagNone
	meta.TagSetAt = nil
}

// removeActivitySubtree drops the activity together with its child
// transactions and their tasks. Children of a never-uploaded activity can
// only be local too, so nothing server-side is orphaned.
func removeActivitySubtree(root *models.SyncRoot, id string) {
	childTxs := make(map[string]bool)
	for _, tx := range root.Transactions {
		if tx.ParentID == id {
			childTxs[tx.ID] = true
		}
	}

	activities := root.Activities[:0]
	for _, act := range root.Activities {
		if act.ID != id {
			activities = append(activities, act)
		}
	}
	root.Activities = activities

	transactions := root.Transactions[:0]
	for _, tx := range root.Transactions {
		if !childTxs[tx.ID] {
			transactions = append(transactions, tx)
		}
	}
	root.Transactions = transactions

	tasks := root.Tasks[:0]
	for _, task := range root.Tasks {
		if !childTxs[task.ParentID] {
			tasks = append(tasks, task)
		}
	}
	root.Tasks = tasks
}

func removeTransactionSubtree(root *models.SyncRoot, id string) {
	transactions := root.Transactions[:0]
	for _, tx := range root.Transactions {
		if tx.ID != id {
			transactions = append(transactions, tx)
		}
	}
	root.Transactions = transactions

	tasks := root.Tasks[:0]
	for _, task := range root.Tasks {
		if task.ParentID != id {
			tasks = append(tasks, task)
		}
	}
	root.Tasks = tasks
}

func removeTask(root *models.SyncRoot, id string) {
	tasks := root.Tasks[:0]
	for _, task := range root.Tasks {
		if task.ID != id {
			tasks = append(tasks, task)
		}
	}
	root.Tasks = tasks
}

func findActivity(activities []models.Activity, id string) *models.Activity {
	for i := range activities {
		if activities[i].ID == id {
			return &activities[i]
		}
	}
	return nil
}

func findTransaction(transactions []models.Transaction, id string) *models.Transaction {
	for i := range transactions {
		if transactions[i].ID == id {
			return &transactions[i]
		}
	}
	return nil
}

func findTask(tasks []models.Task, id string) *models.Task {
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
