package service

import "errors"

var (
	// ErrLoginOnServer wraps a failed authentication call.
	ErrLoginOnServer = errors.New("login on server failed")

	// ErrBackupWrite marks a failed local backup write. Fatal: the local
	// file is the durable copy of record and storage must not be cleared
	// without it.
	ErrBackupWrite = errors.New("local backup write failed")
)
