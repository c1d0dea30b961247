package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAlreadyExists is returned when an insert violates a uniqueness
	// constraint (username, email or order code).
	ErrAlreadyExists = errors.New("record already exists")

	// ErrNotFound is returned when a query expected to match a record
	// produces an empty result.
	ErrNotFound = errors.New("record was not found")

	// ErrUnsupportedDSN is returned by [NewStorages] when the DSN scheme
	// does not name a known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a store-level operation fails before any domain
// logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a read query fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a write
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when decoding a single record fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when decoding fails during multi-record
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
