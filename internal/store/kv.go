package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// getValue reads a single storage row. Returns ErrKeyNotFound when absent.
func (db *DB) getValue(ctx context.Context, key string) (string, error) {
	var value string
	err := db.QueryRowContext(ctx, getRecord, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		return "", fmt.Errorf("read record %s: %w", key, err)
	}

	return value, nil
}

func (db *DB) setValue(ctx context.Context, key, value string) error {
	if _, err := db.ExecContext(ctx, upsertRecord, key, value); err != nil {
		return fmt.Errorf("write record %s: %w", key, err)
	}
	return nil
}

func (db *DB) deleteValue(ctx context.Context, key string) error {
	if _, err := db.ExecContext(ctx, deleteRecord, key); err != nil {
		return fmt.Errorf("delete record %s: %w", key, err)
	}
	return nil
}

// Wipe removes every storage row. Used by the graceful close handoff and the
// force-quit path after a successful backup export.
func (db *DB) Wipe(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, deleteAllRecords); err != nil {
		return fmt.Errorf("wipe local storage: %w", err)
	}
	return nil
}

// getJSON decodes the row at key into out. A missing row returns
// ErrKeyNotFound untouched so callers can substitute an empty value.
func (db *DB) getJSON(ctx context.Context, key string, out any) error {
	raw, err := db.getValue(ctx, key)
	if err != nil {
		return err
	}

	if err = json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode record %s: %w", key, err)
	}
	return nil
}

func (db *DB) setJSON(ctx context.Context, key string, in any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", key, err)
	}
	return db.setValue(ctx, key, string(payload))
}
