// Package service implements the synchronization engine: the sync
// orchestrator, the session lifecycle around it, the reactive pending
// counter, and the emergency backup exporter.
package service

import (
	"context"

	"github.com/ecowaste/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService runs sync passes against the remote API. Every call is gated
// by an in-flight guard: a pass requested while another is active returns
// false immediately, it is never queued.
//
// All methods report success as a boolean. "Sync didn't complete" is an
// expected, retryable outcome, not an exception: failures abort the pass,
// leave the queue intact, and surface as false.
type SyncService interface {
	// Load performs the first-login download: all six reference collections
	// plus the transactional root. Requires connectivity; returns false
	// when offline without attempting any upload.
	Load(ctx context.Context) bool

	// Upload pushes every tagged entity to the server in dependency order.
	// Re-running after a partial failure only resubmits entities still
	// carrying a tag.
	Upload(ctx context.Context) bool

	// Refresh uploads pending mutations (best-effort master data first,
	// then the transactional queue) and then downloads everything.
	// Requires connectivity.
	Refresh(ctx context.Context) bool

	// Close performs the graceful handoff: requires connectivity and a
	// fully successful upload, then clears all local storage. Returns
	// false and leaves storage intact otherwise.
	Close(ctx context.Context) bool
}

// SessionService wraps the orchestrator for the session lifecycle events:
// login-time load, app-resume refresh, and session close.
type SessionService interface {
	// Login authenticates against the server, persists the session
	// credentials, and performs the initial data load.
	Login(ctx context.Context, username, password string) error

	// Resume refreshes the token pair when needed and runs a refresh pass.
	// Returns false when offline or when the pass did not complete.
	Resume(ctx context.Context) bool

	// Logout runs the graceful close pass. Local storage is cleared only
	// on full success; otherwise everything stays for a later retry.
	Logout(ctx context.Context) bool
}

// BackupService is the forced-termination path: export the mutation queue
// to a durable local file before local state is wiped.
type BackupService interface {
	// ForceQuit reads the full queue without requiring connectivity,
	// writes the backup envelope to a local file (mandatory), POSTs it to
	// the remote backup endpoint (best-effort), and clears local storage.
	// Returns the path of the written file.
	ForceQuit(ctx context.Context) (string, error)
}

// RecordService is the local-write surface used by UI layers. Every
// mutation tags the touched record and recomputes the pending counter.
type RecordService interface {
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)
	UpdateActivity(ctx context.Context, activity models.Activity) error
	StartActivity(ctx context.Context, id string, location models.Geolocation) error
	DeleteActivity(ctx context.Context, id string) error

	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) error
	DeleteTask(ctx context.Context, id string) error

	// RegisterThirdParty records a third party met in the field; it is
	// uploaded best-effort on the next refresh pass.
	RegisterThirdParty(ctx context.Context, row models.ThirdParty) (models.ThirdParty, error)

	// Root returns the current mutation queue for display.
	Root(ctx context.Context) (models.SyncRoot, error)
}

// GeolocationProvider is the external capability that captures the current
// device position. A provider error means "no fix": the sync engine attaches
// no location and proceeds.
type GeolocationProvider interface {
	Current(ctx context.Context) (models.Geolocation, error)
}

// StorageWiper clears every persisted local row. Implemented by
// store.ClientStorages.
type StorageWiper interface {
	ClearAll(ctx context.Context) error
}
