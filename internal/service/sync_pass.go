package service

import (
	"context"
	"fmt"

	"github.com/ecowaste/fieldsync/internal/adapter"
	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/models"
)

// uploadPass holds the in-memory state of one upload pass. It mutates the
// root it was given; the orchestrator persists that root whole afterwards,
// whether the pass completed or aborted.
type uploadPass struct {
	api adapter.RemoteAPI
	geo GeolocationProvider
	log *logger.Logger

	root *models.SyncRoot

	// Records whose delete mutation was acknowledged this pass. They are
	// stripped from the root at the end; until then slices stay stable so
	// the stage loops can hold pointers into them.
	removedActivities   map[string]bool
	removedTransactions map[string]bool
	removedTasks        map[string]bool
}

func newUploadPass(api adapter.RemoteAPI, geo GeolocationProvider, log *logger.Logger, root *models.SyncRoot) *uploadPass {
	return &uploadPass{
		api:                 api,
		geo:                 geo,
		log:                 log,
		root:                root,
		removedActivities:   make(map[string]bool),
		removedTransactions: make(map[string]bool),
		removedTasks:        make(map[string]bool),
	}
}

// run processes activities strictly sequentially, in collection order.
// Ordering is a correctness requirement: server-side transaction and task
// creation depends on the activity already existing remotely.
func (p *uploadPass) run(ctx context.Context) error {
	for i := range p.root.Activities {
		if err := p.runActivity(ctx, &p.root.Activities[i]); err != nil {
			return err
		}
	}

	// Activity-level tasks are parentless; they depend on nothing and go
	// last.
	for i := range p.root.Tasks {
		task := &p.root.Tasks[i]
		if task.ParentID != "" || !task.Tag.Pending() {
			continue
		}
		if err := p.pushTask(ctx, task); err != nil {
			return err
		}
	}

	return nil
}

// runActivity executes the ordered upload steps for one activity: start or
// create the activity itself, create its child transactions, push their
// tasks, push transaction updates, and finally the activity's own update.
// The first failed call aborts the whole pass.
func (p *uploadPass) runActivity(ctx context.Context, act *models.Activity) error {
	switch act.Tag {
	case models.TagStart:
		act.Location = p.locate(ctx, act.Location)
		serverID, err := p.api.StartActivity(ctx, *act)
		if err != nil {
			return fmt.Errorf("start activity %s: %w", act.ID, err)
		}
		p.adoptActivityID(act, serverID)
		clearMeta(&act.SyncMeta)

	case models.TagCreate:
		act.Location = p.locate(ctx, act.Location)
		serverID, err := p.api.CreateActivity(ctx, *act)
		if err != nil {
			return fmt.Errorf("create activity %s: %w", act.ID, err)
		}
		p.adoptActivityID(act, serverID)
		clearMeta(&act.SyncMeta)

	case models.TagNone, models.TagUpdate, models.TagDelete:
		// handled below, nothing to do before the children
	}

	for i := range p.root.Transactions {
		tx := &p.root.Transactions[i]
		if tx.ParentID != act.ID || tx.Tag != models.TagCreate {
			continue
		}

		tx.Location = p.locate(ctx, tx.Location)
		serverID, err := p.api.CreateTransaction(ctx, *tx)
		if err != nil {
			return fmt.Errorf("create transaction %s: %w", tx.ID, err)
		}
		p.adoptTransactionID(tx, serverID)
		clearMeta(&tx.SyncMeta)
	}

	for i := range p.root.Tasks {
		task := &p.root.Tasks[i]
		if !task.Tag.Pending() || task.ParentID == "" {
			continue
		}
		if !p.transactionBelongs(task.ParentID, act.ID) {
			continue
		}
		if err := p.pushTask(ctx, task); err != nil {
			return err
		}
	}

	for i := range p.root.Transactions {
		tx := &p.root.Transactions[i]
		if tx.ParentID != act.ID {
			continue
		}

		switch tx.Tag {
		case models.TagUpdate:
			tx.Location = p.locate(ctx, tx.Location)
			if err := p.api.UpdateTransaction(ctx, *tx); err != nil {
				return fmt.Errorf("update transaction %s: %w", tx.ID, err)
			}
			clearMeta(&tx.SyncMeta)

			// The certificate follows an acknowledged update; its failure
			// is reported but never aborts the pass.
			if err := p.api.EmitCertificate(ctx, tx.ID); err != nil {
				p.log.Warn().Err(err).Str("transaction", tx.ID).Msg("certificate emission failed")
			}

		case models.TagDelete:
			if err := p.api.UpdateTransaction(ctx, *tx); err != nil {
				return fmt.Errorf("delete transaction %s: %w", tx.ID, err)
			}
			p.removedTransactions[tx.ID] = true

		case models.TagNone, models.TagCreate, models.TagStart:
			// creates were handled above; nothing else to push
		}
	}

	switch act.Tag {
	case models.TagUpdate:
		act.Location = p.locate(ctx, act.Location)
		if err := p.api.UpdateActivity(ctx, *act); err != nil {
			return fmt.Errorf("update activity %s: %w", act.ID, err)
		}
		clearMeta(&act.SyncMeta)

	case models.TagDelete:
		if err := p.api.UpdateActivity(ctx, *act); err != nil {
			return fmt.Errorf("delete activity %s: %w", act.ID, err)
		}
		p.removedActivities[act.ID] = true

	case models.TagNone, models.TagCreate, models.TagStart:
		// start/create acknowledgments were received and cleared above
	}

	return nil
}

func (p *uploadPass) pushTask(ctx context.Context, task *models.Task) error {
	switch task.Tag {
	case models.TagCreate:
		serverID, err := p.api.CreateTask(ctx, *task)
		if err != nil {
			return fmt.Errorf("create task %s: %w", task.ID, err)
		}
		if serverID != "" {
			task.ID = serverID
		}
		clearMeta(&task.SyncMeta)

	case models.TagDelete:
		if err := p.api.UpdateTask(ctx, *task); err != nil {
			return fmt.Errorf("delete task %s: %w", task.ID, err)
		}
		p.removedTasks[task.ID] = true

	case models.TagUpdate, models.TagStart:
		if err := p.api.UpdateTask(ctx, *task); err != nil {
			return fmt.Errorf("update task %s: %w", task.ID, err)
		}
		clearMeta(&task.SyncMeta)

	case models.TagNone:
	}

	return nil
}

// locate fills in the current device position when the entity has none.
// A missing provider or a failed fix is not an error: the record uploads
// without a location.
func (p *uploadPass) locate(ctx context.Context, current models.Geolocation) models.Geolocation {
	if p.geo == nil || !current.IsZero() {
		return current
	}

	loc, err := p.geo.Current(ctx)
	if err != nil {
		p.log.Debug().Err(err).Msg("no geolocation fix")
		return current
	}
	return loc
}

// adoptActivityID installs the server-assigned id and repoints child
// transactions, so their own create calls reference an id the server knows.
func (p *uploadPass) adoptActivityID(act *models.Activity, serverID string) {
	if serverID == "" || serverID == act.ID {
		return
	}

	oldID := act.ID
	act.ID = serverID
	for i := range p.root.Transactions {
		if p.root.Transactions[i].ParentID == oldID {
			p.root.Transactions[i].ParentID = serverID
		}
	}
}

func (p *uploadPass) adoptTransactionID(tx *models.Transaction, serverID string) {
	if serverID == "" || serverID == tx.ID {
		return
	}

	oldID := tx.ID
	tx.ID = serverID
	for i := range p.root.Tasks {
		if p.root.Tasks[i].ParentID == oldID {
			p.root.Tasks[i].ParentID = serverID
		}
	}
}

func (p *uploadPass) transactionBelongs(txID, activityID string) bool {
	for i := range p.root.Transactions {
		if p.root.Transactions[i].ID == txID {
			return p.root.Transactions[i].ParentID == activityID
		}
	}
	return false
}

// strip removes records whose delete mutation was acknowledged, cascading
// to children of removed parents.
func (p *uploadPass) strip() {
	if len(p.removedActivities) == 0 && len(p.removedTransactions) == 0 && len(p.removedTasks) == 0 {
		return
	}

	activities := p.root.Activities[:0]
	for _, act := range p.root.Activities {
		if !p.removedActivities[act.ID] {
			activities = append(activities, act)
		}
	}
	p.root.Activities = activities

	transactions := p.root.Transactions[:0]
	for _, tx := range p.root.Transactions {
		if p.removedTransactions[tx.ID] || p.removedActivities[tx.ParentID] {
			p.removedTransactions[tx.ID] = true
			continue
		}
		transactions = append(transactions, tx)
	}
	p.root.Transactions = transactions

	tasks := p.root.Tasks[:0]
	for _, task := range p.root.Tasks {
		if p.removedTasks[task.ID] || p.removedTransactions[task.ParentID] {
			continue
		}
		tasks = append(tasks, task)
	}
	p.root.Tasks = tasks
}

func clearMeta(meta *models.SyncMeta) {
	meta.Tag = models.TagNone
	meta.TagSetAt = nil
}
