package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts and their authentication counters.
type AccountRepository interface {
	// CreateAccount stores a new account and its revision 0 snapshot in one
	// transaction. Returns ErrUsernameTaken when the username exists.
	CreateAccount(ctx context.Context, account models.Account, initial models.VaultSnapshot) (models.Account, error)
	FindByUsername(ctx context.Context, username string) (models.Account, error)
	FindByID(ctx context.Context, accountID int64) (models.Account, error)

	// RegisterFailedAttempt increments the failed-attempt counter. When the
	// counter reaches threshold the account is locked until lockUntil and the
	// counter starts over. The updated account is returned.
	RegisterFailedAttempt(ctx context.Context, accountID int64, threshold int, lockUntil time.Time) (models.Account, error)
	ResetFailedAttempts(ctx context.Context, accountID int64) error
	SetTwoFactor(ctx context.Context, accountID int64, secret string, enabled bool) error
}

// SnapshotRepository is the append-only vault history.
type SnapshotRepository interface {
	// AppendSnapshot stores snapshot if its revision is above the latest
	// stored revision, otherwise returns ErrRevisionConflict.
	AppendSnapshot(ctx context.Context, snapshot models.VaultSnapshot) (models.VaultSnapshot, error)

	// AppendPasswordChange is AppendSnapshot that also stamps the account's
	// password_changed_at with the snapshot creation time.
	AppendPasswordChange(ctx context.Context, snapshot models.VaultSnapshot) (models.VaultSnapshot, error)

	// GetLatest returns the highest revision or ErrSnapshotNotFound.
	GetLatest(ctx context.Context, accountID int64) (models.VaultSnapshot, error)
	ListHistory(ctx context.Context, accountID int64) ([]models.SnapshotMeta, error)
	DeleteSnapshots(ctx context.Context, accountID int64, revisions []int64) (int64, error)
}

// RefreshTokenRepository stores at most one refresh token per device.
type RefreshTokenRepository interface {
	// ReplaceForDevice removes every token of (AccountID, DeviceID) and
	// stores token.
	ReplaceForDevice(ctx context.Context, token models.RefreshToken) error
	FindByToken(ctx context.Context, token string) (models.RefreshToken, error)

	// FindByPreviousToken returns the token that replaced previous.
	FindByPreviousToken(ctx context.Context, previous string) (models.RefreshToken, error)

	// Rotate deletes oldToken and stores next atomically. Returns
	// ErrRefreshTokenNotFound when oldToken was already consumed.
	Rotate(ctx context.Context, oldToken string, next models.RefreshToken) error
	DeleteByDevice(ctx context.Context, accountID int64, deviceID string) (int64, error)
	DeleteOtherDevices(ctx context.Context, accountID int64, keepDeviceID string) (int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// EncryptionKeyRepository stores the public halves of account key pairs.
type EncryptionKeyRepository interface {
	// AddKey stores key. The first key of an account, or a key with Primary
	// set, becomes the only primary key.
	AddKey(ctx context.Context, key models.EncryptionKey) (models.EncryptionKey, error)
	GetPrimary(ctx context.Context, accountID int64) (models.EncryptionKey, error)
	ListKeys(ctx context.Context, accountID int64) ([]models.EncryptionKey, error)
	SetPrimary(ctx context.Context, accountID, keyID int64) error
}

// RecoveryCodeRepository stores hashed single-use recovery codes.
type RecoveryCodeRepository interface {
	ReplaceCodes(ctx context.Context, accountID int64, codeHashes []string) error

	// ConsumeCode marks an unused code as used at the given time, or returns
	// ErrRecoveryCodeNotFound.
	ConsumeCode(ctx context.Context, accountID int64, codeHash string, at time.Time) error
}

// AuditRepository is the advisory authentication log.
type AuditRepository interface {
	Record(ctx context.Context, event models.AuthEvent) error
	ListByUsername(ctx context.Context, username string, limit uint64) ([]models.AuthEvent, error)
}

// MessageRepository stores sealed mailbox messages.
type MessageRepository interface {
	Create(ctx context.Context, message models.MailboxMessage) (models.MailboxMessage, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.MailboxMessage, error)
}

// LocalVaultRepository is the client-side cache of the last synced vault.
type LocalVaultRepository interface {
	Save(ctx context.Context, vault models.CachedVault) error
	Get(ctx context.Context, username string) (models.CachedVault, error)
	Delete(ctx context.Context, username string) error
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
