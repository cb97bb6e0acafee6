// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

var snapshotColumns = []string{
	"snapshot_id",
	"account_id",
	"blob",
	"version",
	"revision",
	"salt",
	"verifier",
	"encryption_algo",
	"encryption_params",
	"size",
	"credential_count",
	"email_count",
	"client_id",
	"created_at",
	"updated_at",
}

var snapshotMetaColumns = []string{
	"snapshot_id",
	"revision",
	"version",
	"size",
	"credential_count",
	"email_count",
	"created_at",
}

type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSnapshotRepository returns the Postgres [SnapshotRepository].
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	logger.Debug().Msg("SnapshotRepository created")
	return &snapshotRepository{
		db:     db,
		logger: logger,
	}
}

func (r *snapshotRepository) AppendSnapshot(ctx context.Context, snapshot models.VaultSnapshot) (models.VaultSnapshot, error) {
	return r.append(ctx, "snapshotRepository.AppendSnapshot", snapshot, false)
}

func (r *snapshotRepository) AppendPasswordChange(ctx context.Context, snapshot models.VaultSnapshot) (models.VaultSnapshot, error) {
	return r.append(ctx, "snapshotRepository.AppendPasswordChange", snapshot, true)
}

// append locks the account row so that concurrent writers of one account
// serialize, re-reads the latest revision and inserts. The unique
// (account_id, revision) index backs the check.
func (r *snapshotRepository) append(ctx context.Context, funcName string, snapshot models.VaultSnapshot, passwordChanged bool) (models.VaultSnapshot, error) {
	log := logger.FromContext(ctx)

	var stored models.VaultSnapshot
	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		lockQuery, lockArgs, err := psql.Select("account_id").
			From("accounts").
			Where(sq.Eq{"account_id": snapshot.AccountID}).
			Suffix("FOR UPDATE").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var lockedID int64
		if err = tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&lockedID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		latestQuery, latestArgs, err := psql.Select("COALESCE(MAX(revision), -1)").
			From("vault_snapshots").
			Where(sq.Eq{"account_id": snapshot.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var latest int64
		if err = tx.QueryRowContext(ctx, latestQuery, latestArgs...).Scan(&latest); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if latest >= snapshot.Revision {
			return ErrRevisionConflict
		}

		if stored, err = insertSnapshot(ctx, tx, snapshot); err != nil {
			return err
		}

		if !passwordChanged {
			return nil
		}

		updateQuery, updateArgs, err := psql.Update("accounts").
			Set("password_changed_at", stored.CreatedAt).
			Where(sq.Eq{"account_id": snapshot.AccountID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRevisionConflict) {
			log.Err(err).
				Str("func", funcName).
				Int64("account_id", snapshot.AccountID).
				Int64("revision", snapshot.Revision).
				Msg("failed to append snapshot")
		}
		return models.VaultSnapshot{}, err
	}

	return stored, nil
}

func insertSnapshot(ctx context.Context, tx DBTX, snapshot models.VaultSnapshot) (models.VaultSnapshot, error) {
	query, args, err := psql.Insert("vault_snapshots").
		Columns(
			"account_id",
			"blob",
			"version",
			"revision",
			"salt",
			"verifier",
			"encryption_algo",
			"encryption_params",
			"size",
			"credential_count",
			"email_count",
			"client_id",
			"created_at",
			"updated_at",
		).
		Values(
			snapshot.AccountID,
			snapshot.Blob,
			snapshot.Version,
			snapshot.Revision,
			snapshot.Salt,
			snapshot.Verifier,
			snapshot.EncryptionAlgo,
			snapshot.EncryptionParams,
			snapshot.Size,
			snapshot.CredentialCount,
			snapshot.EmailCount,
			snapshot.ClientID,
			snapshot.CreatedAt,
			snapshot.UpdatedAt,
		).
		Suffix("RETURNING snapshot_id").
		ToSql()
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&snapshot.SnapshotID); err != nil {
		if isConflict(err) {
			return models.VaultSnapshot{}, ErrRevisionConflict
		}
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return snapshot, nil
}

func (r *snapshotRepository) GetLatest(ctx context.Context, accountID int64) (models.VaultSnapshot, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(snapshotColumns...).
		From("vault_snapshots").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("revision DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var s models.VaultSnapshot
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.SnapshotID,
		&s.AccountID,
		&s.Blob,
		&s.Version,
		&s.Revision,
		&s.Salt,
		&s.Verifier,
		&s.EncryptionAlgo,
		&s.EncryptionParams,
		&s.Size,
		&s.CredentialCount,
		&s.EmailCount,
		&s.ClientID,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.GetLatest").
			Int64("account_id", accountID).
			Msg("failed to scan latest snapshot")
		return models.VaultSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return s, nil
}

func (r *snapshotRepository) ListHistory(ctx context.Context, accountID int64) ([]models.SnapshotMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(snapshotMetaColumns...).
		From("vault_snapshots").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("revision ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.ListHistory").
			Int64("account_id", accountID).
			Msg("failed to execute history query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	history := make([]models.SnapshotMeta, 0, 32)
	for rows.Next() {
		var m models.SnapshotMeta
		if err = rows.Scan(
			&m.SnapshotID,
			&m.Revision,
			&m.Version,
			&m.Size,
			&m.CredentialCount,
			&m.EmailCount,
			&m.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "snapshotRepository.ListHistory").
				Int64("account_id", accountID).
				Msg("failed to scan snapshot meta row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		history = append(history, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return history, nil
}

func (r *snapshotRepository) DeleteSnapshots(ctx context.Context, accountID int64, revisions []int64) (int64, error) {
	if len(revisions) == 0 {
		return 0, nil
	}

	log := logger.FromContext(ctx)

	query, args, err := psql.Delete("vault_snapshots").
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Eq{"revision": revisions}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "snapshotRepository.DeleteSnapshots").
			Int64("account_id", accountID).
			Int("revisions", len(revisions)).
			Msg("failed to delete snapshots")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}
