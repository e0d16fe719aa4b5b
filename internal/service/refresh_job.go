package service

import (
	"context"
	"sync"
	"time"
)

// RefreshJob periodically drives a session resume so pending mutations are
// pushed whenever connectivity comes back.
type RefreshJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

type refreshJob struct {
	session SessionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a refreshJob that calls session.Resume on a ticker.
// The job is idle until Start is called.
func NewRefreshJob(session SessionService) RefreshJob {
	return &refreshJob{session: session}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that resumes the session every interval.
// If interval is zero or negative it defaults to 5 minutes. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *refreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = j.session.Resume(jobCtx)
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *refreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
