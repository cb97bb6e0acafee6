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

// localVaultRepository caches the last synced vault per username in SQLite.
// Blobs stay encrypted; the cache only saves a round trip and lets the
// client work with the last known revision while offline.
type localVaultRepository struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLocalVaultRepository wraps an open SQLite connection, see
// [NewConnectSQLite].
func NewLocalVaultRepository(db *sql.DB, logger *logger.Logger) LocalVaultRepository {
	return &localVaultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *localVaultRepository) Save(ctx context.Context, vault models.CachedVault) error {
	query, args, err := sq.Insert("cached_vaults").
		Columns("username", "revision", "version", "blob", "salt", "encryption_algo", "encryption_params", "synced_at").
		Values(vault.Username, vault.Revision, vault.Version, vault.Blob, vault.Salt, vault.EncryptionAlgo, vault.EncryptionParams, vault.SyncedAt).
		Suffix(`ON CONFLICT(username) DO UPDATE SET
			revision = excluded.revision,
			version = excluded.version,
			blob = excluded.blob,
			salt = excluded.salt,
			encryption_algo = excluded.encryption_algo,
			encryption_params = excluded.encryption_params,
			synced_at = excluded.synced_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "localVaultRepository.Save").
			Str("username", vault.Username).
			Msg("failed to save local vault")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localVaultRepository) Get(ctx context.Context, username string) (models.CachedVault, error) {
	query, args, err := sq.Select("username", "revision", "version", "blob", "salt", "encryption_algo", "encryption_params", "synced_at").
		From("cached_vaults").
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.CachedVault{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var v models.CachedVault
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&v.Username,
		&v.Revision,
		&v.Version,
		&v.Blob,
		&v.Salt,
		&v.EncryptionAlgo,
		&v.EncryptionParams,
		&v.SyncedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CachedVault{}, ErrLocalVaultNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "localVaultRepository.Get").
			Str("username", username).
			Msg("failed to read local vault")
		return models.CachedVault{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return v, nil
}

func (r *localVaultRepository) Delete(ctx context.Context, username string) error {
	query, args, err := sq.Delete("cached_vaults").Where(sq.Eq{"username": username}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
