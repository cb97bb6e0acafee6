package service

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService runs the SRP handshakes. It never sees a password or anything
// derived from one other than the verifier.
type AuthService interface {
	// InitiateLogin answers with the salt, the KDF parameters and a fresh
	// server ephemeral. Unknown usernames receive deterministic fake
	// credentials in a response of the same shape.
	InitiateLogin(ctx context.Context, username string, client models.ClientInfo) (models.InitiateLoginResponse, error)
	ValidateLogin(ctx context.Context, req models.ValidateLoginRequest, client models.ClientInfo) (models.ValidateLoginResponse, error)
	ValidateTwoFactor(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error)
	ValidateRecoveryCode(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error)

	// InitiateChangePassword and VerifyChangePassword repeat the handshake
	// for an authenticated session so that a password change proves
	// knowledge of the current password.
	InitiateChangePassword(ctx context.Context, session models.Session) (models.InitiateLoginResponse, error)
	VerifyChangePassword(ctx context.Context, session models.Session, clientEphemeral, clientProof []byte) ([]byte, error)
}

// TokenService issues, rotates and revokes access and refresh tokens.
type TokenService interface {
	IssueNew(ctx context.Context, account models.Account, client models.ClientInfo, rememberMe bool) (models.TokenPair, error)
	Rotate(ctx context.Context, accessToken, refreshToken string) (models.TokenPair, error)
	Revoke(ctx context.Context, refreshToken string) error
	RevokeOtherDevices(ctx context.Context, accountID int64, keepDeviceID string) (int64, error)
	ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error)
	SweepExpired(ctx context.Context) (int64, error)
}

// VaultService is the sync protocol over the snapshot history.
type VaultService interface {
	GetVault(ctx context.Context, accountID int64) (models.VaultResponse, error)

	// PushVault accepts a write only on top of the latest revision. A stale
	// base revision yields status Outdated and the true latest revision.
	PushVault(ctx context.Context, session models.Session, req models.PushVaultRequest) (models.PushVaultResponse, error)
	ChangePassword(ctx context.Context, session models.Session, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error)
}

// AccountService handles registration and second-factor enrolment.
type AccountService interface {
	Register(ctx context.Context, req models.RegisterRequest, client models.ClientInfo) (models.RegisterResponse, error)
	SetupTwoFactor(ctx context.Context, accountID int64) (models.TwoFactorSetupResponse, error)
	ConfirmTwoFactor(ctx context.Context, accountID int64, code string) (models.TwoFactorConfirmResponse, error)
}

// AuditService writes the advisory authentication log.
type AuditService interface {
	// Record never fails the caller; storage errors are logged.
	Record(ctx context.Context, event models.AuthEvent)
	History(ctx context.Context, username string, limit uint64) ([]models.AuthEvent, error)
}

type KeyService interface {
	AddKey(ctx context.Context, accountID int64, req models.AddKeyRequest) (models.EncryptionKey, error)
	GetPrimary(ctx context.Context, accountID int64) (models.EncryptionKey, error)
	ListKeys(ctx context.Context, accountID int64) ([]models.EncryptionKey, error)
	SetPrimary(ctx context.Context, accountID, keyID int64) error
}

type MailboxService interface {
	// Deliver seals the plaintext fields to the recipient's primary public
	// key and stores the result. The plaintext is not persisted.
	Deliver(ctx context.Context, req models.DeliverMessageRequest) (models.MailboxMessage, error)
	List(ctx context.Context, accountID int64) ([]models.MailboxMessage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Status(ctx context.Context, clientVersion string) models.StatusResponse
}
