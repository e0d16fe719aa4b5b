package service

import (
	"context"

	"github.com/ecowaste/fieldsync/internal/logger"
	"github.com/ecowaste/fieldsync/internal/store"
)

// PendingCounter exposes the number of entities still carrying a mutation
// tag as an observable value. The count is always rebuilt from the persisted
// root, never hand-incremented, so it cannot drift from storage.
type PendingCounter struct {
	root   store.RootRepository
	value  *Observable[int]
	logger *logger.Logger
}

func NewPendingCounter(root store.RootRepository, logger *logger.Logger) *PendingCounter {
	return &PendingCounter{root: root, value: NewObservable(0), logger: logger}
}

// Recompute scans the persisted root and publishes the fresh count. It never
// fails: a storage read error publishes 0, which only affects display — the
// upload logic reads tags from the root directly and is unaffected.
func (c *PendingCounter) Recompute(ctx context.Context) {
	root, err := c.root.Root(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("pending recompute failed, publishing zero")
		c.value.Set(0)
		return
	}

	c.value.Set(root.PendingCount())
}

// Value returns the last published count.
func (c *PendingCounter) Value() int {
	return c.value.Get()
}

// Subscribe registers a listener for count changes and returns its
// unsubscribe function.
func (c *PendingCounter) Subscribe(listener func(int)) (unsubscribe func()) {
	return c.value.Subscribe(listener)
}
