// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

var accountColumns = []string{
	"account_id",
	"username",
	"blocked",
	"failed_attempts",
	"locked_until",
	"password_changed_at",
	"totp_secret",
	"totp_enabled",
	"created_at",
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository returns the Postgres [AccountRepository].
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("AccountRepository created")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account, initial models.VaultSnapshot) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Insert("accounts").
		Columns("username", "password_changed_at", "created_at").
		Values(account.Username, account.PasswordChangedAt, account.CreatedAt).
		Suffix("RETURNING " + joinColumns(accountColumns)).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Account
	err = r.db.withTx(ctx, func(ctx context.Context, tx DBTX) error {
		created, err = scanAccount(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if isConflict(err) {
				return ErrUsernameTaken
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		initial.AccountID = created.AccountID
		_, err = insertSnapshot(ctx, tx, initial)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.CreateAccount").
			Str("username", account.Username).
			Msg("failed to create account")
		return models.Account{}, err
	}

	return created, nil
}

func (r *accountRepository) FindByUsername(ctx context.Context, username string) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindByUsername", sq.Eq{"username": username})
}

func (r *accountRepository) FindByID(ctx context.Context, accountID int64) (models.Account, error) {
	return r.findOne(ctx, "accountRepository.FindByID", sq.Eq{"account_id": accountID})
}

func (r *accountRepository) findOne(ctx context.Context, funcName string, where sq.Eq) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select(accountColumns...).
		From("accounts").
		Where(where).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to find account")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

func (r *accountRepository) RegisterFailedAttempt(ctx context.Context, accountID int64, threshold int, lockUntil time.Time) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Update("accounts").
		Set("failed_attempts", sq.Expr("CASE WHEN failed_attempts + 1 >= ? THEN 0 ELSE failed_attempts + 1 END", threshold)).
		Set("locked_until", sq.Expr("CASE WHEN failed_attempts + 1 >= ? THEN ? ELSE locked_until END", threshold, lockUntil)).
		Where(sq.Eq{"account_id": accountID}).
		Suffix("RETURNING " + joinColumns(accountColumns)).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "accountRepository.RegisterFailedAttempt").
			Int64("account_id", accountID).
			Msg("failed to register failed attempt")
		return models.Account{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return account, nil
}

func (r *accountRepository) ResetFailedAttempts(ctx context.Context, accountID int64) error {
	query, args, err := psql.Update("accounts").
		Set("failed_attempts", 0).
		Set("locked_until", nil).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "accountRepository.ResetFailedAttempts", accountID, query, args)
}

func (r *accountRepository) SetTwoFactor(ctx context.Context, accountID int64, secret string, enabled bool) error {
	query, args, err := psql.Update("accounts").
		Set("totp_secret", secret).
		Set("totp_enabled", enabled).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execOne(ctx, "accountRepository.SetTwoFactor", accountID, query, args)
}

func (r *accountRepository) execOne(ctx context.Context, funcName string, accountID int64, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Int64("account_id", accountID).Msg("failed to update account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account     models.Account
		lockedUntil sql.NullTime
	)

	err := row.Scan(
		&account.AccountID,
		&account.Username,
		&account.Blocked,
		&account.FailedAttempts,
		&lockedUntil,
		&account.PasswordChangedAt,
		&account.TOTPSecret,
		&account.TOTPEnabled,
		&account.CreatedAt,
	)
	if err != nil {
		return models.Account{}, err
	}

	if lockedUntil.Valid {
		t := lockedUntil.Time
		account.LockedUntil = &t
	}

	return account, nil
}
