package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var keyColumns = []string{"key_id", "account_id", "public_key", "is_primary", "created_at"}

type encryptionKeyRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewEncryptionKeyRepository(db *DB, logger *logger.Logger) EncryptionKeyRepository {
	logger.Debug().Msg("EncryptionKeyRepository created")
	return &encryptionKeyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *encryptionKeyRepository) AddKey(ctx context.Context, key models.EncryptionKey) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		countQuery, countArgs, err := psql.Select("COUNT(*)").
			From("encryption_keys").
			Where(sq.Eq{"account_id": key.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var existing int64
		if err = tx.QueryRowContext(ctx, countQuery, countArgs...).Scan(&existing); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		key.Primary = key.Primary || existing == 0
		if key.Primary {
			if err = clearPrimary(ctx, tx, key.AccountID); err != nil {
				return err
			}
		}

		insertQuery, insertArgs, err := psql.Insert("encryption_keys").
			Columns("account_id", "public_key", "is_primary", "created_at").
			Values(key.AccountID, key.PublicKey, key.Primary, key.CreatedAt).
			Suffix("RETURNING key_id").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&key.KeyID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "encryptionKeyRepository.AddKey").
			Int64("account_id", key.AccountID).
			Msg("failed to add key")
		return models.EncryptionKey{}, err
	}

	return key, nil
}

func (r *encryptionKeyRepository) GetPrimary(ctx context.Context, accountID int64) (models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(keyColumns...).
		From("encryption_keys").
		Where(sq.Eq{"account_id": accountID, "is_primary": true}).
		ToSql()
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	key, err := scanKey(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptionKey{}, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "encryptionKeyRepository.GetPrimary").
			Int64("account_id", accountID).
			Msg("failed to scan primary key")
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return key, nil
}

func (r *encryptionKeyRepository) ListKeys(ctx context.Context, accountID int64) ([]models.EncryptionKey, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(keyColumns...).
		From("encryption_keys").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("key_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "encryptionKeyRepository.ListKeys").
			Int64("account_id", accountID).
			Msg("failed to list keys")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	keys := make([]models.EncryptionKey, 0, 4)
	for rows.Next() {
		key, scanErr := scanKey(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return keys, nil
}

func (r *encryptionKeyRepository) SetPrimary(ctx context.Context, accountID, keyID int64) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		if err := clearPrimary(ctx, tx, accountID); err != nil {
			return err
		}

		query, args, err := psql.Update("encryption_keys").
			Set("is_primary", true).
			Where(sq.Eq{"account_id": accountID, "key_id": keyID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			// rolls back clearPrimary, the previous primary stays
			return ErrKeyNotFound
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrKeyNotFound) {
		log.Err(err).
			Str("func", "encryptionKeyRepository.SetPrimary").
			Int64("account_id", accountID).
			Int64("key_id", keyID).
			Msg("failed to set primary key")
	}

	return err
}

func clearPrimary(ctx context.Context, tx DBTX, accountID int64) error {
	query, args, err := psql.Update("encryption_keys").
		Set("is_primary", false).
		Where(sq.Eq{"account_id": accountID, "is_primary": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func scanKey(row rowScanner) (models.EncryptionKey, error) {
	var key models.EncryptionKey
	err := row.Scan(&key.KeyID, &key.AccountID, &key.PublicKey, &key.Primary, &key.CreatedAt)
	return key, err
}
