// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/retention"
	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultService is the concrete implementation of VaultService.
//
// Every accepted write appends a snapshot with revision baseRevision+1. A
// write whose base is not the latest revision is answered with Outdated and
// the latest revision, and the client is expected to pull, merge and retry.
// After each accepted write the retention policy prunes the history.
type vaultService struct {
	accountRepository  store.AccountRepository
	snapshotRepository store.SnapshotRepository

	authService  AuthService
	tokenService TokenService
	auditService AuditService

	locker    *accountLocker
	policy    retention.Policy
	validator validators.Validator

	maxBlobSize           int64
	supportedEmailDomains []string

	now    func() time.Time
	logger *logger.Logger
}

func NewVaultService(
	storages *store.Storages,
	authService AuthService,
	tokenService TokenService,
	auditService AuditService,
	locker *accountLocker,
	policy retention.Policy,
	vaultCfg config.Vault,
	supportedEmailDomains []string,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		accountRepository:     storages.Accounts,
		snapshotRepository:    storages.Snapshots,
		authService:           authService,
		tokenService:          tokenService,
		auditService:          auditService,
		locker:                locker,
		policy:                policy,
		validator:             validators.NewRequestValidator(srp.RFC5054Group2048.Size()),
		maxBlobSize:           vaultCfg.MaxBlobSize,
		supportedEmailDomains: supportedEmailDomains,
		now:                   time.Now,
		logger:                logger,
	}
}

// GetVault returns the latest snapshot. An account without snapshots gets a
// well-formed empty vault at revision 0.
func (s *vaultService) GetVault(ctx context.Context, accountID int64) (models.VaultResponse, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.VaultResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if account.Blocked {
		return models.VaultResponse{}, ErrAccountBlocked
	}

	domains := s.supportedEmailDomains
	if domains == nil {
		domains = []string{}
	}

	latest, err := s.snapshotRepository.GetLatest(ctx, accountID)
	if errors.Is(err, store.ErrSnapshotNotFound) {
		return models.VaultResponse{
			Status:                models.VaultStatusOk,
			Blob:                  []byte{},
			Revision:              0,
			SupportedEmailDomains: domains,
		}, nil
	}
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("latest snapshot lookup failed")
		return models.VaultResponse{}, fmt.Errorf("latest snapshot lookup failed: %w", err)
	}

	return models.VaultResponse{
		Status:                models.VaultStatusOk,
		Blob:                  latest.Blob,
		Version:               latest.Version,
		Revision:              latest.Revision,
		Salt:                  latest.Salt,
		EncryptionAlgo:        latest.EncryptionAlgo,
		EncryptionParams:      latest.EncryptionParams,
		Size:                  latest.Size,
		SupportedEmailDomains: domains,
	}, nil
}

// PushVault appends a snapshot on top of req.BaseRevision.
//
// Returns status Ok and the new revision when the write was accepted, or
// status Outdated and the latest revision when req.BaseRevision is stale.
// Fails with ErrAccountBlocked, ErrUsernameMismatch, ErrBlobTooLarge,
// ErrInvalidDataProvided, or ErrVersionTooOld (together with a response of
// status VersionTooOld).
func (s *vaultService) PushVault(ctx context.Context, session models.Session, req models.PushVaultRequest) (models.PushVaultResponse, error) {
	if err := s.validatePush(ctx, req, req.Blob); err != nil {
		return models.PushVaultResponse{}, err
	}

	unlock := s.locker.lock(session.AccountID)
	defer unlock()

	return s.write(ctx, session, req, nil)
}

// ChangePassword proves the current password, writes the vault re-encrypted
// under the new one together with the new salt and verifier, and signs out
// every other device.
func (s *vaultService) ChangePassword(ctx context.Context, session models.Session, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validatePush(ctx, req, req.Blob); err != nil {
		return models.ChangePasswordResponse{}, err
	}

	serverProof, err := s.authService.VerifyChangePassword(ctx, session, req.ClientEphemeral, req.ClientProof)
	if err != nil {
		return models.ChangePasswordResponse{}, err
	}

	algo := req.EncryptionAlgo
	if algo == "" {
		algo = models.DefaultEncryptionAlgo
	}
	credentials := &snapshotCredentials{
		salt:     req.NewSalt,
		verifier: req.NewVerifier,
		algo:     algo,
		params:   req.EncryptionParams,
	}

	resp, err := s.writeLocked(ctx, session, req.PushVaultRequest, credentials)
	if err != nil || resp.Status != models.VaultStatusOk {
		return models.ChangePasswordResponse{PushVaultResponse: resp}, err
	}

	revoked, err := s.tokenService.RevokeOtherDevices(ctx, session.AccountID, session.DeviceID)
	if err != nil {
		log.Err(err).Int64("account_id", session.AccountID).Msg("failed to revoke other devices after password change")
		return models.ChangePasswordResponse{}, fmt.Errorf("password changed but other devices were not signed out: %w", err)
	}

	s.auditService.Record(ctx, models.AuthEvent{
		Username:  session.Username,
		EventType: models.AuthEventPasswordChanged,
		Reason:    fmt.Sprintf("%d other device(s) signed out", revoked),
	})

	return models.ChangePasswordResponse{PushVaultResponse: resp, ServerProof: serverProof}, nil
}

// writeLocked holds the account lock only for the write itself, so that the
// token revocation that follows a password change can take it again.
func (s *vaultService) writeLocked(ctx context.Context, session models.Session, req models.PushVaultRequest, credentials *snapshotCredentials) (models.PushVaultResponse, error) {
	unlock := s.locker.lock(session.AccountID)
	defer unlock()

	return s.write(ctx, session, req, credentials)
}

// snapshotCredentials replace the salt, verifier and KDF parameters carried
// over from the previous snapshot.
type snapshotCredentials struct {
	salt     []byte
	verifier []byte
	algo     string
	params   models.KDFParams
}

// write runs the acceptance checks in order and appends the snapshot. The
// caller holds the account lock.
func (s *vaultService) write(ctx context.Context, session models.Session, req models.PushVaultRequest, credentials *snapshotCredentials) (models.PushVaultResponse, error) {
	log := logger.FromContext(ctx)

	account, err := s.accountRepository.FindByID(ctx, session.AccountID)
	if err != nil {
		return models.PushVaultResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if account.Blocked {
		return models.PushVaultResponse{}, ErrAccountBlocked
	}
	if models.NormalizeUsername(req.Username) != account.Username {
		log.Warn().
			Int64("account_id", account.AccountID).
			Str("username", req.Username).
			Msg("vault write for another username refused")
		return models.PushVaultResponse{}, ErrUsernameMismatch
	}

	latest, err := s.snapshotRepository.GetLatest(ctx, account.AccountID)
	if err != nil {
		return models.PushVaultResponse{}, fmt.Errorf("latest snapshot lookup failed: %w", err)
	}

	if olderVersion(req.Version, latest.Version) {
		return models.PushVaultResponse{Status: models.VaultStatusVersionTooOld, Revision: latest.Revision}, ErrVersionTooOld
	}

	newRevision := req.BaseRevision + 1
	if latest.Revision >= newRevision {
		return models.PushVaultResponse{Status: models.VaultStatusOutdated, Revision: latest.Revision}, nil
	}

	now := s.now().UTC()
	snapshot := models.VaultSnapshot{
		AccountID:        account.AccountID,
		Blob:             req.Blob,
		Version:          req.Version,
		Revision:         newRevision,
		Salt:             latest.Salt,
		Verifier:         latest.Verifier,
		EncryptionAlgo:   latest.EncryptionAlgo,
		EncryptionParams: latest.EncryptionParams,
		Size:             int64(len(req.Blob)),
		CredentialCount:  req.CredentialCount,
		EmailCount:       req.EmailCount,
		ClientID:         req.ClientID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if snapshot.Blob == nil {
		snapshot.Blob = []byte{}
	}

	appendSnapshot := s.snapshotRepository.AppendSnapshot
	if credentials != nil {
		snapshot.Salt = credentials.salt
		snapshot.Verifier = credentials.verifier
		snapshot.EncryptionAlgo = credentials.algo
		snapshot.EncryptionParams = credentials.params
		appendSnapshot = s.snapshotRepository.AppendPasswordChange
	}

	stored, err := appendSnapshot(ctx, snapshot)
	if errors.Is(err, store.ErrRevisionConflict) {
		// Another writer got there first, possibly from another instance.
		current, getErr := s.snapshotRepository.GetLatest(ctx, account.AccountID)
		if getErr != nil {
			return models.PushVaultResponse{}, fmt.Errorf("latest snapshot lookup failed: %w", getErr)
		}
		return models.PushVaultResponse{Status: models.VaultStatusOutdated, Revision: current.Revision}, nil
	}
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Int64("revision", newRevision).Msg("failed to append snapshot")
		return models.PushVaultResponse{}, fmt.Errorf("error appending snapshot: %w", err)
	}

	s.prune(ctx, account.AccountID, stored.Meta())

	return models.PushVaultResponse{Status: models.VaultStatusOk, Revision: newRevision}, nil
}

// prune applies the retention policy after an accepted write. It never fails
// the write.
func (s *vaultService) prune(ctx context.Context, accountID int64, justWritten models.SnapshotMeta) {
	log := logger.FromContext(ctx)

	history, err := s.snapshotRepository.ListHistory(ctx, accountID)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("retention skipped: history lookup failed")
		return
	}

	doomed := retention.Prune(s.policy, history, s.now().UTC(), justWritten)
	if len(doomed) == 0 {
		return
	}

	revisions := make([]int64, len(doomed))
	for i, m := range doomed {
		revisions[i] = m.Revision
	}

	deleted, err := s.snapshotRepository.DeleteSnapshots(ctx, accountID, revisions)
	if err != nil {
		log.Err(err).Int64("account_id", accountID).Msg("retention failed to delete snapshots")
		return
	}

	log.Debug().Int64("account_id", accountID).Int64("deleted", deleted).Msg("retention pruned vault history")
}

// validatePush checks the blob size against the configured limit and the
// shape of req, which is a push or a password change request.
func (s *vaultService) validatePush(ctx context.Context, req any, blob []byte) error {
	if s.maxBlobSize > 0 && int64(len(blob)) > s.maxBlobSize {
		return ErrBlobTooLarge
	}
	if err := s.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// olderVersion reports whether proposed is strictly older than stored. An
// unparsable stored version never blocks a write.
func olderVersion(proposed, stored string) bool {
	if stored == "" {
		return false
	}
	storedVersion, err := semver.NewVersion(stored)
	if err != nil {
		return false
	}
	proposedVersion, err := semver.NewVersion(proposed)
	if err != nil {
		return true
	}
	return proposedVersion.LessThan(storedVersion)
}
