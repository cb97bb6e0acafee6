package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// VaultDataVersion is the data-model version of the vault documents this
// client writes.
const VaultDataVersion = "1.0.0"

// maxUpdateAttempts bounds the pull-merge-push loop of Update.
const maxUpdateAttempts = 3

type clientVaultService struct {
	adapter    adapter.ServerAdapter
	localVault store.LocalVaultRepository
	keyChain   crypto.KeyChain
	params     models.KDFParams
	clientID   string
	now        func() time.Time
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, localVault store.LocalVaultRepository, keyChain crypto.KeyChain, params models.KDFParams, clientID string) ClientVaultService {
	return &clientVaultService{
		adapter:    serverAdapter,
		localVault: localVault,
		keyChain:   keyChain,
		params:     params,
		clientID:   clientID,
		now:        time.Now,
	}
}

func (v *clientVaultService) Pull(ctx context.Context, username string, keys crypto.VaultKeys) (models.VaultDocument, error) {
	vault, err := v.adapter.GetVault(ctx)
	if err != nil {
		return models.VaultDocument{}, mapAdapterError(err)
	}

	doc, err := v.keyChain.DecryptVault(vault.Blob, keys.EncryptionKey)
	if err != nil {
		return models.VaultDocument{}, fmt.Errorf("%w: %w", ErrWrongPassword, err)
	}

	err = v.localVault.Save(ctx, models.CachedVault{
		Username:         username,
		Revision:         vault.Revision,
		Version:          vault.Version,
		Blob:             nonNil(vault.Blob),
		Salt:             vault.Salt,
		EncryptionAlgo:   vault.EncryptionAlgo,
		EncryptionParams: vault.EncryptionParams,
		SyncedAt:         v.now().UTC(),
	})
	if err != nil {
		return models.VaultDocument{}, fmt.Errorf("error caching vault: %w", err)
	}

	return doc, nil
}

func (v *clientVaultService) Push(ctx context.Context, username string, doc models.VaultDocument, keys crypto.VaultKeys) (models.PushVaultResponse, error) {
	cached, err := v.localVault.Get(ctx, username)
	if errors.Is(err, store.ErrLocalVaultNotFound) {
		return models.PushVaultResponse{}, ErrNoLocalVault
	}
	if err != nil {
		return models.PushVaultResponse{}, fmt.Errorf("error reading local vault: %w", err)
	}

	blob, err := v.keyChain.EncryptVault(doc, keys.EncryptionKey)
	if err != nil {
		return models.PushVaultResponse{}, fmt.Errorf("error encrypting vault: %w", err)
	}

	pushed, err := v.adapter.PushVault(ctx, models.PushVaultRequest{
		Username:        username,
		Blob:            blob,
		Version:         VaultDataVersion,
		BaseRevision:    cached.Revision,
		CredentialCount: len(doc.Credentials),
		EmailCount:      len(doc.Emails),
		ClientID:        v.clientID,
	})
	if err != nil {
		if pushed.Status == models.VaultStatusVersionTooOld {
			return pushed, ErrVersionTooOld
		}
		return pushed, mapAdapterError(err)
	}

	if pushed.Status == models.VaultStatusOutdated {
		return pushed, ErrVaultOutdated
	}

	cached.Revision = pushed.Revision
	cached.Version = VaultDataVersion
	cached.Blob = blob
	cached.SyncedAt = v.now().UTC()
	if err = v.localVault.Save(ctx, cached); err != nil {
		return pushed, fmt.Errorf("error caching vault: %w", err)
	}

	return pushed, nil
}

func (v *clientVaultService) Update(ctx context.Context, username string, keys crypto.VaultKeys, mutate func(*models.VaultDocument)) (models.PushVaultResponse, error) {
	var lastErr error

	for range maxUpdateAttempts {
		doc, err := v.Pull(ctx, username, keys)
		if err != nil {
			return models.PushVaultResponse{}, err
		}

		mutate(&doc)

		pushed, err := v.Push(ctx, username, doc, keys)
		if errors.Is(err, ErrVaultOutdated) {
			lastErr = err
			continue
		}
		return pushed, err
	}

	return models.PushVaultResponse{}, lastErr
}

// ChangePassword:
//  1. proves the current password to the server;
//  2. decrypts the latest vault with the current keys;
//  3. derives new credentials and re-encrypts the vault under them;
//  4. sends the proof, the new credentials and the new blob in one request.
func (v *clientVaultService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) (crypto.VaultKeys, error) {
	if newPassword == "" {
		return crypto.VaultKeys{}, ErrInvalidDataProvided
	}

	initiated, err := v.adapter.InitiateChangePassword(ctx)
	if err != nil {
		return crypto.VaultKeys{}, mapAdapterError(err)
	}

	current, err := v.keyChain.DeriveKeys(currentPassword, initiated.Salt, initiated.EncryptionParams)
	if err != nil {
		return crypto.VaultKeys{}, fmt.Errorf("error deriving keys: %w", err)
	}

	vault, err := v.adapter.GetVault(ctx)
	if err != nil {
		return crypto.VaultKeys{}, mapAdapterError(err)
	}

	doc, err := v.keyChain.DecryptVault(vault.Blob, current.EncryptionKey)
	if err != nil {
		return crypto.VaultKeys{}, ErrWrongPassword
	}

	clientEphemeral, clientProof, session, err := proveKeys(current, initiated)
	if err != nil {
		return crypto.VaultKeys{}, err
	}

	credentials, err := v.keyChain.NewCredentials(newPassword, v.params)
	if err != nil {
		return crypto.VaultKeys{}, fmt.Errorf("error deriving credentials: %w", err)
	}

	blob, err := v.keyChain.EncryptVault(doc, credentials.Keys.EncryptionKey)
	if err != nil {
		return crypto.VaultKeys{}, fmt.Errorf("error encrypting vault: %w", err)
	}

	changed, err := v.adapter.ChangePassword(ctx, models.ChangePasswordRequest{
		PushVaultRequest: models.PushVaultRequest{
			Username:        username,
			Blob:            blob,
			Version:         VaultDataVersion,
			BaseRevision:    vault.Revision,
			CredentialCount: len(doc.Credentials),
			EmailCount:      len(doc.Emails),
			ClientID:        v.clientID,
		},
		ClientEphemeral:  clientEphemeral,
		ClientProof:      clientProof,
		NewSalt:          credentials.Salt,
		NewVerifier:      credentials.Verifier,
		EncryptionAlgo:   models.DefaultEncryptionAlgo,
		EncryptionParams: v.params,
	})
	if err != nil {
		return crypto.VaultKeys{}, mapAdapterError(err)
	}
	if changed.Status == models.VaultStatusOutdated {
		return crypto.VaultKeys{}, ErrVaultOutdated
	}
	if err = session.VerifyServer(changed.ServerProof); err != nil {
		return crypto.VaultKeys{}, ErrServerProofInvalid
	}

	err = v.localVault.Save(ctx, models.CachedVault{
		Username:         username,
		Revision:         changed.Revision,
		Version:          VaultDataVersion,
		Blob:             blob,
		Salt:             credentials.Salt,
		EncryptionAlgo:   models.DefaultEncryptionAlgo,
		EncryptionParams: v.params,
		SyncedAt:         v.now().UTC(),
	})
	if err != nil {
		return crypto.VaultKeys{}, fmt.Errorf("error caching vault: %w", err)
	}

	return credentials.Keys, nil
}

func (v *clientVaultService) Cached(ctx context.Context, username string) (models.CachedVault, error) {
	cached, err := v.localVault.Get(ctx, username)
	if errors.Is(err, store.ErrLocalVaultNotFound) {
		return models.CachedVault{}, ErrNoLocalVault
	}
	return cached, err
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
