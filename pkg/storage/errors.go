package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin when the handle already wraps a
	// transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit/Rollback on a non-transactional handle.
	ErrNotInTx = errors.New("not in tx")
)
