package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var refreshTokenColumns = []string{
	"token_id",
	"account_id",
	"device_id",
	"token",
	"previous_token",
	"remember_me",
	"ip_address",
	"expires_at",
	"created_at",
}

// refreshTokenRepository keeps refresh tokens in the "refresh_tokens" table.
// The unique (account_id, device_id) index guarantees one active token per
// device even if two logins race.
type refreshTokenRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("RefreshTokenRepository created")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *refreshTokenRepository) ReplaceForDevice(ctx context.Context, token models.RefreshToken) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := deleteTokens(ctx, tx, sq.Eq{"account_id": token.AccountID, "device_id": token.DeviceID}); err != nil {
			return err
		}
		return insertRefreshToken(ctx, tx, token)
	})
	if err != nil {
		log.Err(err).
			Str("func", "refreshTokenRepository.ReplaceForDevice").
			Int64("account_id", token.AccountID).
			Msg("failed to replace refresh token")
		return err
	}

	return nil
}

func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (models.RefreshToken, error) {
	return r.findOne(ctx, "refreshTokenRepository.FindByToken", sq.Eq{"token": token})
}

func (r *refreshTokenRepository) FindByPreviousToken(ctx context.Context, previous string) (models.RefreshToken, error) {
	return r.findOne(ctx, "refreshTokenRepository.FindByPreviousToken", sq.Eq{"previous_token": previous})
}

func (r *refreshTokenRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.RefreshToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(refreshTokenColumns...).
		From("refresh_tokens").
		Where(where).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		t        models.RefreshToken
		previous sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.TokenID,
		&t.AccountID,
		&t.DeviceID,
		&t.Token,
		&previous,
		&t.RememberMe,
		&t.IPAddress,
		&t.ExpiresAt,
		&t.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan refresh token")
		return models.RefreshToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if previous.Valid {
		t.PreviousToken = &previous.String
	}

	return t, nil
}

func (r *refreshTokenRepository) Rotate(ctx context.Context, oldToken string, next models.RefreshToken) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		deleted, err := deleteTokens(ctx, tx, sq.Eq{"token": oldToken})
		if err != nil {
			return err
		}
		if deleted == 0 {
			return ErrRefreshTokenNotFound
		}
		return insertRefreshToken(ctx, tx, next)
	})
	if err != nil && !errors.Is(err, ErrRefreshTokenNotFound) {
		log.Err(err).
			Str("func", "refreshTokenRepository.Rotate").
			Int64("account_id", next.AccountID).
			Msg("failed to rotate refresh token")
	}

	return err
}

func (r *refreshTokenRepository) DeleteByDevice(ctx context.Context, accountID int64, deviceID string) (int64, error) {
	return r.delete(ctx, "refreshTokenRepository.DeleteByDevice", sq.Eq{"account_id": accountID, "device_id": deviceID})
}

func (r *refreshTokenRepository) DeleteOtherDevices(ctx context.Context, accountID int64, keepDeviceID string) (int64, error) {
	return r.delete(ctx, "refreshTokenRepository.DeleteOtherDevices", sq.And{
		sq.Eq{"account_id": accountID},
		sq.NotEq{"device_id": keepDeviceID},
	})
}

func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return r.delete(ctx, "refreshTokenRepository.DeleteExpired", sq.LtOrEq{"expires_at": now})
}

func (r *refreshTokenRepository) delete(ctx context.Context, funcName string, where sq.Sqlizer) (int64, error) {
	deleted, err := deleteTokens(ctx, r.db, where)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to delete refresh tokens")
		return 0, err
	}

	return deleted, nil
}

func deleteTokens(ctx context.Context, db DBTX, where sq.Sqlizer) (int64, error) {
	query, args, err := psql.Delete("refresh_tokens").Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return result.RowsAffected()
}

func insertRefreshToken(ctx context.Context, tx DBTX, t models.RefreshToken) error {
	query, args, err := psql.Insert("refresh_tokens").
		Columns(
			"account_id",
			"device_id",
			"token",
			"previous_token",
			"remember_me",
			"ip_address",
			"expires_at",
			"created_at",
		).
		Values(
			t.AccountID,
			t.DeviceID,
			t.Token,
			t.PreviousToken,
			t.RememberMe,
			t.IPAddress,
			t.ExpiresAt,
			t.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
