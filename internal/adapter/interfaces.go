// Package adapter provides the transport layer for communicating with the
// remote field-operations API.
//
// The primary abstraction is [RemoteAPI], which decouples the sync engine
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteAPI]) built on resty. Transport failures with a status code
// are raised as [*StatusError] values that unwrap to the sentinel errors in
// errors.go, so callers can use [errors.Is] for transport-agnostic handling.
//
// The adapter performs no retries: a sync pass aborts at its first failure
// and the caller decides when to run another pass.
package adapter

import (
	"context"

	"github.com/ecowaste/fieldsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_api_mock.go -package=mock

// TokenSource supplies the bearer token attached to authenticated requests.
// The second return is false when no usable token is available.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// RemoteAPI defines the full surface of the remote field-operations server
// used by the sync engine. Login, Refresh and Ping are public endpoints;
// every other call carries a bearer token from the configured [TokenSource].
type RemoteAPI interface {
	// Login exchanges credentials for a token pair.
	Login(ctx context.Context, creds models.Credentials) (models.TokenResponse, error)

	// Refresh exchanges a refresh token for a fresh token pair.
	Refresh(ctx context.Context, refreshToken string) (models.TokenResponse, error)

	// Ping probes server reachability. It returns false on any failure
	// (timeout, non-2xx, network error) instead of an error: callers treat
	// "unknown" as "offline".
	Ping(ctx context.Context) bool

	// Reference collection downloads. Each returns the authoritative
	// server copy, replaced locally wholesale.
	Materials(ctx context.Context) ([]models.Material, error)
	Points(ctx context.Context) ([]models.Point, error)
	ThirdParties(ctx context.Context) ([]models.ThirdParty, error)
	Treatments(ctx context.Context) ([]models.Treatment, error)
	Vehicles(ctx context.Context) ([]models.Vehicle, error)
	Packaging(ctx context.Context) ([]models.Packaging, error)

	// TransactionRoot downloads the full transactional root (activities,
	// transactions, tasks) as acknowledged by the server.
	TransactionRoot(ctx context.Context) (models.SyncRoot, error)

	// CreateActivity uploads a locally created activity and returns the
	// server-assigned id.
	CreateActivity(ctx context.Context, activity models.Activity) (string, error)

	// StartActivity reports a field-started activity and returns the
	// server-assigned id.
	StartActivity(ctx context.Context, activity models.Activity) (string, error)

	// UpdateActivity uploads a modified activity.
	UpdateActivity(ctx context.Context, activity models.Activity) error

	// CreateTransaction uploads a locally created transaction and returns
	// the server-assigned id.
	CreateTransaction(ctx context.Context, tx models.Transaction) (string, error)

	// UpdateTransaction uploads a modified transaction.
	UpdateTransaction(ctx context.Context, tx models.Transaction) error

	// CreateTask uploads a locally created task and returns the
	// server-assigned id.
	CreateTask(ctx context.Context, task models.Task) (string, error)

	// UpdateTask uploads a modified task.
	UpdateTask(ctx context.Context, task models.Task) error

	// CreateThirdParty uploads a field-registered third party and returns
	// the server-assigned id. Used by the best-effort master-data stage of
	// a refresh pass.
	CreateThirdParty(ctx context.Context, row models.ThirdParty) (string, error)

	// EmitCertificate requests emission of the treatment certificate for an
	// acknowledged transaction. Best-effort from the caller's perspective.
	EmitCertificate(ctx context.Context, transactionID string) error

	// Backup posts an emergency backup envelope. Best-effort: the local
	// backup file remains the durable copy of record.
	Backup(ctx context.Context, envelope models.BackupEnvelope) error
}
