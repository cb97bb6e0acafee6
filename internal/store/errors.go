package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when registering a username that already
	// belongs to another account.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrAccountNotFound is returned when no account matches the lookup key.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrSnapshotNotFound is returned when an account has no vault snapshot.
	ErrSnapshotNotFound = errors.New("vault snapshot was not found")

	// ErrRevisionConflict is returned when a snapshot is appended at a
	// revision that is not above the stored latest revision, either because
	// the check inside the transaction failed or because the unique
	// (account_id, revision) index rejected the row.
	ErrRevisionConflict = errors.New("vault revision conflict occurred")

	// ErrRefreshTokenNotFound is returned when a refresh token value is
	// unknown, already rotated or already revoked.
	ErrRefreshTokenNotFound = errors.New("refresh token was not found")

	// ErrKeyNotFound is returned when an account has no matching public key.
	ErrKeyNotFound = errors.New("encryption key was not found")

	// ErrRecoveryCodeNotFound is returned when a recovery code is unknown or
	// was already used.
	ErrRecoveryCodeNotFound = errors.New("recovery code was not found")

	// ErrLocalVaultNotFound is returned by the client cache when nothing was
	// pulled for the username yet.
	ErrLocalVaultNotFound = errors.New("local vault was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
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
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
