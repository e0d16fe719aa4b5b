package store

import "errors"

var (
	// ErrNotFound is returned when a record with the requested id does not
	// exist in the local queue.
	ErrNotFound = errors.New("record not found")

	// ErrIntegrity is returned when a child entity is created against a
	// missing parent. The UI flow should make this impossible; detecting it
	// beats silently orphaning the child in the queue.
	ErrIntegrity = errors.New("referential integrity violation")

	// ErrKeyNotFound is returned by the key-value layer when a storage row
	// is absent.
	ErrKeyNotFound = errors.New("storage key not found")
)
