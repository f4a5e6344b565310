package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned when an operation requiring a non-transactional
	// context is attempted while already inside a transaction.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned when a transaction-specific operation is attempted
	// while not currently inside a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrNotStored is returned when an update targets a customer that has no row.
	ErrNotStored = errors.New("customer is not stored")
	// ErrUnknownIndustry is returned when a stored industry id is not part of
	// the domain catalog.
	ErrUnknownIndustry = errors.New("unknown industry")
)
