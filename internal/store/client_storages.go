package store

import (
	"context"
	"fmt"

	"github.com/ecowaste/fieldsync/internal/config"
	"github.com/ecowaste/fieldsync/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Root is the repository owning the persisted mutation queue.
	Root RootRepository

	// Master holds the six server-authoritative reference collections.
	Master MasterDataRepository

	// Tokens holds the session credentials. No other component persists
	// credentials.
	Tokens TokenRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Root:   NewRootRepository(db, logger),
		Master: NewMasterDataRepository(db, logger),
		Tokens: NewTokenRepository(db, logger),
		db:     db,
	}, nil
}

// ClearAll wipes every persisted row: the mutation queue, the reference
// collections and the credentials. Callers are responsible for making sure
// nothing pending is lost (successful close upload or a written backup).
func (s *ClientStorages) ClearAll(ctx context.Context) error {
	return s.db.Wipe(ctx)
}

// Close releases the underlying database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.DB.Close()
}
