package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Storage failures are non-fatal by contract: the offline coordinator logs
// them and keeps the affected operation in memory for the next attempt.
var (
	// ErrOperationExists is returned when an insert would violate the
	// queue's unique-id invariant.
	ErrOperationExists = errors.New("pending operation id already queued")

	// ErrOperationNotFound is returned when an update targets an operation
	// id that is not present in the queue.
	ErrOperationNotFound = errors.New("pending operation was not found")

	// ErrItemNotFound is returned when a cache lookup misses.
	ErrItemNotFound = errors.New("cached item was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
