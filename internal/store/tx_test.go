package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error { return nil })
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_CommitErrorIsAFailure(t *testing.T) {
	for name, commitErr := range map[string]error{
		"already rolled back": sql.ErrTxDone,
		"driver error":        errors.New("connection reset"),
	} {
		t.Run(name, func(t *testing.T) {
			db, mock := newMockDB(t)

			mock.ExpectBegin()
			mock.ExpectCommit().WillReturnError(commitErr)

			err := db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error { return nil })
			require.ErrorIs(t, err, ErrCommitingTransaction)
			require.ErrorIs(t, err, commitErr)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWithTx_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error { return boom })
	require.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_RetriesSerializationFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.SerializationFailure))
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx_GivesUpAfterMaxAttempts(t *testing.T) {
	db, mock := newMockDB(t)

	for range maxTxAttempts {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	calls := 0
	err := db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})
	require.Error(t, err)
	assert.Equal(t, maxTxAttempts, calls)
}

func TestWithTx_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error { return nil })
	require.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestWithTx_RethrowsPanics(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = db.withTx(context.Background(), func(ctx context.Context, tx DBTX) error { panic("boom") })
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.SerializationFailure)))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrapped: %w", pgError(pgerrcode.ConnectionFailure))))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, Conflict, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, Conflict, c.Classify(pgError(pgerrcode.ExclusionViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.NotNullViolation)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.SyntaxError)))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, c.Classify(nil))
}
