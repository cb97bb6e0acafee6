package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells a caller what to do with a failed statement.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not recognised below.
	NonRetryable ErrorClassification = iota

	// Retryable errors may succeed when the transaction is replayed:
	// lost connections, serialization failures and deadlocks.
	Retryable

	// Conflict marks a unique or exclusion constraint violation. Replaying
	// the statement cannot help; callers translate it into a domain error
	// such as [ErrUsernameTaken] or [ErrRevisionConflict].
	Conflict
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and classifies its SQLSTATE.
// Errors that are not driver errors are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// ClassifyPgError works on SQLSTATE classes rather than single codes:
// class 08 (connection), class 40 (transaction rollback) and class 57
// (operator intervention) are retried, 23505 and 23P01 are conflicts and
// everything else fails immediately.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch code := pgErr.Code; {
	case code == pgerrcode.UniqueViolation, code == pgerrcode.ExclusionViolation:
		return Conflict
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code):
		return Retryable
	default:
		return NonRetryable
	}
}

// isConflict reports whether err is a constraint conflict.
func isConflict(err error) bool {
	return NewPostgresErrorClassifier().Classify(err) == Conflict
}
