package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type recoveryCodeRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRecoveryCodeRepository(db *DB, logger *logger.Logger) RecoveryCodeRepository {
	logger.Debug().Msg("RecoveryCodeRepository created")
	return &recoveryCodeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *recoveryCodeRepository) ReplaceCodes(ctx context.Context, accountID int64, codeHashes []string) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		deleteQuery, deleteArgs, err := psql.Delete("recovery_codes").
			Where(sq.Eq{"account_id": accountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(codeHashes) == 0 {
			return nil
		}

		insert := psql.Insert("recovery_codes").Columns("account_id", "code_hash")
		for _, hash := range codeHashes {
			insert = insert.Values(accountID, hash)
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "recoveryCodeRepository.ReplaceCodes").
			Int64("account_id", accountID).
			Msg("failed to replace recovery codes")
	}

	return err
}

// ConsumeCode relies on the "used_at IS NULL" predicate so that two
// concurrent uses of one code cannot both succeed.
func (r *recoveryCodeRepository) ConsumeCode(ctx context.Context, accountID int64, codeHash string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("recovery_codes").
		Set("used_at", at).
		Where(sq.Eq{"account_id": accountID, "code_hash": codeHash, "used_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recoveryCodeRepository.ConsumeCode").
			Int64("account_id", accountID).
			Msg("failed to consume recovery code")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecoveryCodeNotFound
	}

	return nil
}
