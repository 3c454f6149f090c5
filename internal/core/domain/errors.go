package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Snapshot and history stores return it for a never-written record;
	// callers treat that as a normal empty state, not a fault.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not available on this
	// implementation, e.g. change watching on the in-memory stores.
	ErrNotImplemented = errors.New("not implemented")

	// ErrParse indicates a search response body was not valid JSON.
	ErrParse = errors.New("search response is not valid JSON")

	// ErrStorageRead indicates a persisted record was unreadable or corrupt.
	ErrStorageRead = errors.New("storage read failed")

	// ErrStorageWrite indicates a persisted record could not be written.
	ErrStorageWrite = errors.New("storage write failed")
)
