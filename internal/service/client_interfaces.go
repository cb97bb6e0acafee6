package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ClientLogin is the outcome of a password login on the client.
type ClientLogin struct {
	// Keys are derived from the master password and the account salt.
	Keys crypto.VaultKeys

	// RequiresTwoFactor is set when the server asks for a second factor;
	// TwoFactorToken must then be passed to CompleteTwoFactor.
	RequiresTwoFactor bool
	TwoFactorToken    string
}

// ClientAuthService defines the client-side contract for registration and
// authentication. The master password never leaves this layer: only the
// salt, the SRP verifier and SRP proofs are sent.
type ClientAuthService interface {
	// Register derives fresh credentials for password and creates the
	// account with an empty vault.
	Register(ctx context.Context, username, password string) (models.RegisterResponse, error)

	// Login runs the SRP handshake and verifies the server proof. On success
	// the adapter holds a token pair unless a second factor is required.
	Login(ctx context.Context, username, password string, rememberMe bool) (ClientLogin, error)

	// CompleteTwoFactor finishes a login with a TOTP code, or with a
	// recovery code when recovery is set.
	CompleteTwoFactor(ctx context.Context, username, twoFactorToken, code string, recovery bool) error

	// Logout revokes the refresh token of this device.
	Logout(ctx context.Context) error

	// EnableTwoFactor starts TOTP enrolment; ConfirmTwoFactor finishes it
	// and returns the recovery codes.
	EnableTwoFactor(ctx context.Context) (models.TwoFactorSetupResponse, error)
	ConfirmTwoFactor(ctx context.Context, code string) ([]string, error)

	// CheckVersion asks the server whether this client must update.
	CheckVersion(ctx context.Context, clientVersion string) (models.StatusResponse, error)
}

// ClientVaultService defines the client-side contract for the encrypted
// vault. Every read goes through the local cache, every write carries the
// cached revision as its base.
type ClientVaultService interface {
	// Pull downloads, decrypts and caches the latest vault.
	Pull(ctx context.Context, username string, keys crypto.VaultKeys) (models.VaultDocument, error)

	// Push encrypts doc and writes it on top of the cached revision. Returns
	// ErrVaultOutdated when another device wrote first.
	Push(ctx context.Context, username string, doc models.VaultDocument, keys crypto.VaultKeys) (models.PushVaultResponse, error)

	// Update pulls, applies mutate and pushes, retrying when another device
	// wrote in between.
	Update(ctx context.Context, username string, keys crypto.VaultKeys, mutate func(*models.VaultDocument)) (models.PushVaultResponse, error)

	// ChangePassword re-encrypts the vault under newPassword and replaces the
	// SRP credentials. Other devices are signed out by the server.
	ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (crypto.VaultKeys, error)

	// Cached returns the local copy without contacting the server.
	Cached(ctx context.Context, username string) (models.CachedVault, error)
}

// ClientKeyService manages the account key pair used for shared records.
type ClientKeyService interface {
	// GenerateKey creates a key pair, registers the public key as primary
	// and stores the private key inside the vault.
	GenerateKey(ctx context.Context, username string, keys crypto.VaultKeys) (models.EncryptionKey, error)

	// ReadMailbox opens every mailbox message with the matching private key
	// from the vault.
	ReadMailbox(ctx context.Context, username string, keys crypto.VaultKeys) ([]map[string]string, error)
}

// ClientSyncJob periodically refreshes the local vault cache.
type ClientSyncJob interface {
	Start(ctx context.Context, username string, keys crypto.VaultKeys, interval time.Duration)
	Stop()
}
