package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrEntryAlreadyExists is returned when an entry with the same id is
	// already on the user's list.
	ErrEntryAlreadyExists = errors.New("entry already exists")

	// ErrEntryNotFound is returned when an update or move targets an entry
	// that is not on the user's list.
	ErrEntryNotFound = errors.New("entry was not found")

	// ErrInvalidEntry is returned when the database rejects an entry through
	// a check constraint (rating or runtime out of range, unknown content type).
	ErrInvalidEntry = errors.New("entry violates list constraints")

	// ErrTokenNotFound is returned by the client token store when no token
	// is saved under the requested name.
	ErrTokenNotFound = errors.New("token not found")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
