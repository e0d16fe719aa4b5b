// Package store implements the client-side persistence layer: a SQLite-backed
// key-value database holding the mutation queue (the sync root), the six
// reference collections, and the session credentials. Every collection is one
// row; the sync root in particular is read and written whole so cross-entity
// relationships can never tear between collections.
package store

import (
	"context"

	"github.com/ecowaste/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenRepository persists and reads the session credentials. It is the only
// component that touches credential rows.
type TokenRepository interface {
	// SetSession stores the access token, refresh token, username and the
	// precomputed expiry instant.
	SetSession(ctx context.Context, session models.Session) error

	// Token returns the stored access token. The second return is false when
	// no token is stored, a storage read fails (fail closed), or the current
	// time is within the safety margin of the expiry instant.
	Token(ctx context.Context) (string, bool)

	// RefreshToken returns the stored refresh token, if any.
	RefreshToken(ctx context.Context) (string, bool)

	// Username returns the stored username, or "" if none.
	Username(ctx context.Context) string

	// HasValidToken reports whether a non-expired access token is stored.
	HasValidToken(ctx context.Context) bool

	// HasRefreshToken reports whether a refresh token is stored.
	HasRefreshToken(ctx context.Context) bool

	// Clear removes all credential rows.
	Clear(ctx context.Context) error
}

// RootRepository owns the persisted sync root: the activities, transactions
// and tasks collections together with their mutation tags. All mutating
// calls persist the full root atomically.
type RootRepository interface {
	// Root loads the persisted sync root. A missing row yields an empty root.
	Root(ctx context.Context) (models.SyncRoot, error)

	// SaveRoot persists the full root as one write.
	SaveRoot(ctx context.Context, root models.SyncRoot) error

	// CreateActivity appends a new activity with tag Create. A missing id is
	// assigned a client-side UUID. Returns the stored activity.
	CreateActivity(ctx context.Context, activity models.Activity) (models.Activity, error)

	// CreateTransaction appends a new transaction with tag Create. Returns
	// ErrIntegrity if the parent activity does not exist.
	CreateTransaction(ctx context.Context, tx models.Transaction) (models.Transaction, error)

	// CreateTask appends a new task with tag Create. Returns ErrIntegrity if
	// ParentID is set and no such transaction exists.
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)

	// UpdateActivity replaces the activity's domain fields and applies tag.
	// An existing Create tag is never downgraded to Update. A Delete applied
	// to a Create-tagged record removes it and its subtree locally instead,
	// since the server holds nothing to reconcile.
	UpdateActivity(ctx context.Context, activity models.Activity, tag models.MutationTag) error

	// UpdateTransaction replaces the transaction's domain fields and applies
	// tag, with the same Create-tag rules as UpdateActivity.
	UpdateTransaction(ctx context.Context, tx models.Transaction, tag models.MutationTag) error

	// UpdateTask replaces the task's domain fields and applies tag, with the
	// same Create-tag rules as UpdateActivity.
	UpdateTask(ctx context.Context, task models.Task, tag models.MutationTag) error

	// MarkActivitySynced clears the activity's tag after a server
	// acknowledgment.
	MarkActivitySynced(ctx context.Context, id string) error

	// MarkTransactionSynced clears the transaction's tag after a server
	// acknowledgment.
	MarkTransactionSynced(ctx context.Context, id string) error

	// MarkTaskSynced clears the task's tag after a server acknowledgment.
	MarkTaskSynced(ctx context.Context, id string) error

	// RemoveActivity hard-deletes the activity row. Only valid once its
	// delete mutation has been acknowledged by the server.
	RemoveActivity(ctx context.Context, id string) error

	// RemoveTransaction hard-deletes the transaction row after its delete
	// mutation was acknowledged.
	RemoveTransaction(ctx context.Context, id string) error

	// RemoveTask hard-deletes the task row after its delete mutation was
	// acknowledged.
	RemoveTask(ctx context.Context, id string) error

	// Clear removes the persisted root entirely.
	Clear(ctx context.Context) error
}

// MasterDataRepository holds the six reference collections downloaded from
// the server. They have no local mutation path: each is replaced wholesale.
type MasterDataRepository interface {
	ReplaceMaterials(ctx context.Context, rows []models.Material) error
	Materials(ctx context.Context) ([]models.Material, error)

	ReplacePoints(ctx context.Context, rows []models.Point) error
	Points(ctx context.Context) ([]models.Point, error)

	// ReplaceThirdParties installs the server copy but retains locally
	// registered rows that still await acknowledgment, so a download can
	// never drop a pending field registration.
	ReplaceThirdParties(ctx context.Context, rows []models.ThirdParty) error
	ThirdParties(ctx context.Context) ([]models.ThirdParty, error)

	// CreateThirdParty appends a field-registered third party with tag
	// Create. A missing id is assigned a client-side UUID.
	CreateThirdParty(ctx context.Context, row models.ThirdParty) (models.ThirdParty, error)

	// MarkThirdPartySynced clears the row's tag (optionally adopting the
	// server-assigned id) after the server acknowledged its creation.
	MarkThirdPartySynced(ctx context.Context, id, serverID string) error

	ReplaceTreatments(ctx context.Context, rows []models.Treatment) error
	Treatments(ctx context.Context) ([]models.Treatment, error)

	ReplaceVehicles(ctx context.Context, rows []models.Vehicle) error
	Vehicles(ctx context.Context) ([]models.Vehicle, error)

	ReplacePackaging(ctx context.Context, rows []models.Packaging) error
	Packaging(ctx context.Context) ([]models.Packaging, error)
}
