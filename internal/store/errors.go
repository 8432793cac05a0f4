package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrIdentityExists is returned when a conditional insert of an identity
	// fails because the userID is already registered.
	ErrIdentityExists = errors.New("identity already exists")

	// ErrIdentityNotFound is returned when no identity matches the userID.
	ErrIdentityNotFound = errors.New("identity was not found")

	// ErrItemExists is returned when a catalog item with the same itemID is
	// already stored.
	ErrItemExists = errors.New("catalog item already exists")

	// ErrItemNotFound is returned when no catalog item matches the itemID.
	ErrItemNotFound = errors.New("catalog item was not found")

	// ErrCustodyExists is returned when the conditional insert of an active
	// custody record loses against an existing record for the same item.
	ErrCustodyExists = errors.New("item already has an active custody record")

	// ErrCustodyNotFound is returned when an item has no active custody record.
	ErrCustodyNotFound = errors.New("active custody record was not found")

	// ErrHolderMismatch is returned when a custody record is closed on behalf
	// of someone other than its holder.
	ErrHolderMismatch = errors.New("custody record belongs to another holder")
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
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the configured DSN does not name a
	// known backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
