// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// totpValidateOpts accepts the current 30 second step and one step on
// either side of it.
var totpValidateOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

// authService is the concrete implementation of AuthService.
//
// A handshake is two requests. InitiateLogin creates an [srp.Server] for the
// verifier of the latest snapshot and parks it in a TTL cache keyed by
// device and username. ValidateLogin takes it out again, so every server
// ephemeral is used at most once and a handshake that was not completed in
// time simply fails.
type authService struct {
	// accountRepository finds accounts and maintains the lockout counters.
	accountRepository store.AccountRepository

	// snapshotRepository provides the current salt and verifier.
	snapshotRepository store.SnapshotRepository

	// recoveryCodeRepository consumes single-use recovery codes.
	recoveryCodeRepository store.RecoveryCodeRepository

	tokenService TokenService
	auditService AuditService

	// group is the SRP group every verifier was computed in.
	group *srp.Group

	// sessions holds pending handshakes; fakes answers unknown usernames.
	sessions *sessionCache
	fakes    *fakeCredentials

	// pendingTwoFactor maps opaque two-factor tokens to logins that passed
	// the password proof.
	pendingTwoFactor *expirable.LRU[string, pendingTwoFactor]

	lockoutThreshold int
	lockoutDuration  time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The fake credentials of unknown
// usernames are keyed with hashKey and advertise the configured default KDF
// parameters.
func NewAuthService(
	storages *store.Storages,
	tokenService TokenService,
	auditService AuditService,
	hashKey string,
	cfg config.Auth,
	logger *logger.Logger,
) AuthService {
	group := srp.RFC5054Group2048
	params := models.KDFParams{
		Iterations:  cfg.KDF.Iterations,
		MemoryKiB:   cfg.KDF.MemoryKiB,
		Parallelism: cfg.KDF.Parallelism,
	}

	return &authService{
		accountRepository:      storages.Accounts,
		snapshotRepository:     storages.Snapshots,
		recoveryCodeRepository: storages.RecoveryCodes,
		tokenService:           tokenService,
		auditService:           auditService,
		group:                  group,
		sessions:               newSessionCache(cfg.EphemeralCacheSize, cfg.EphemeralTTL),
		fakes:                  newFakeCredentials(utils.NewHasher(hashKey), group, params, cfg.FakeCredentialCacheSize, cfg.FakeCredentialTTL),
		pendingTwoFactor:       expirable.NewLRU[string, pendingTwoFactor](cfg.EphemeralCacheSize, nil, cfg.EphemeralTTL),
		lockoutThreshold:       cfg.LockoutThreshold,
		lockoutDuration:        cfg.LockoutDuration,
		now:                    time.Now,
		logger:                 logger,
	}
}

// InitiateLogin starts a handshake for username.
//
// Registered accounts are answered with the salt and parameters of their
// latest snapshot. Unknown usernames are answered with fake credentials
// derived from the username, and the handshake that follows always fails
// with ErrAuthenticationFailed. Both paths build a real [srp.Server], so the
// responses have the same shape and similar timing.
func (a *authService) InitiateLogin(ctx context.Context, username string, client models.ClientInfo) (models.InitiateLoginResponse, error) {
	log := logger.FromContext(ctx)

	username = models.NormalizeUsername(username)
	if username == "" {
		return models.InitiateLoginResponse{}, ErrInvalidDataProvided
	}

	account, err := a.accountRepository.FindByUsername(ctx, username)
	if errors.Is(err, store.ErrAccountNotFound) {
		return a.initiateFake(ctx, username, client)
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("account lookup failed")
		return models.InitiateLoginResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}

	if err = a.checkAccess(account); err != nil {
		return models.InitiateLoginResponse{}, err
	}

	latest, err := a.snapshotRepository.GetLatest(ctx, account.AccountID)
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("latest snapshot lookup failed")
		return models.InitiateLoginResponse{}, fmt.Errorf("latest snapshot lookup failed: %w", err)
	}

	server, err := srp.NewServer(a.group, latest.Verifier)
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("stored verifier is unusable")
		return models.InitiateLoginResponse{}, fmt.Errorf("error starting handshake: %w", err)
	}

	a.sessions.put(loginKey(client.DeviceID, username), srpSession{
		server:    server,
		accountID: account.AccountID,
		username:  username,
	})

	a.auditService.Record(ctx, models.AuthEvent{
		Username:  username,
		EventType: models.AuthEventLoginInitiated,
		IPAddress: client.IPAddress,
	})

	return models.InitiateLoginResponse{
		Salt:             latest.Salt,
		ServerEphemeral:  server.PublicEphemeral(),
		EncryptionAlgo:   latest.EncryptionAlgo,
		EncryptionParams: latest.EncryptionParams,
	}, nil
}

// fakeAccountID is never assigned to a real account.
const fakeAccountID int64 = 0

// initiateFake mirrors the store work of a registered account: one snapshot
// lookup and one audit record.
func (a *authService) initiateFake(ctx context.Context, username string, client models.ClientInfo) (models.InitiateLoginResponse, error) {
	fake := a.fakes.get(username)

	if _, err := a.snapshotRepository.GetLatest(ctx, fakeAccountID); err != nil && !errors.Is(err, store.ErrSnapshotNotFound) {
		logger.FromContext(ctx).Err(err).Msg("latest snapshot lookup failed")
	}

	server, err := srp.NewServer(a.group, fake.verifier)
	if err != nil {
		return models.InitiateLoginResponse{}, fmt.Errorf("error starting handshake: %w", err)
	}

	a.sessions.put(loginKey(client.DeviceID, username), srpSession{
		server:   server,
		username: username,
		fake:     true,
	})

	a.auditService.Record(ctx, models.AuthEvent{
		Username:  username,
		EventType: models.AuthEventLoginInitiated,
		IPAddress: client.IPAddress,
	})

	return models.InitiateLoginResponse{
		Salt:             fake.salt,
		ServerEphemeral:  server.PublicEphemeral(),
		EncryptionAlgo:   models.DefaultEncryptionAlgo,
		EncryptionParams: a.fakes.params,
	}, nil
}

// ValidateLogin checks the client proof of a pending handshake.
//
// Returns the server proof and either a token pair or, for accounts with a
// second factor, a two-factor token. Fails with:
//   - ErrAuthenticationFailed for unknown usernames, missing or expired
//     handshakes and wrong proofs;
//   - ErrAccountLocked while the account is locked, whatever the proof;
//   - ErrAccountBlocked for blocked accounts.
func (a *authService) ValidateLogin(ctx context.Context, req models.ValidateLoginRequest, client models.ClientInfo) (models.ValidateLoginResponse, error) {
	log := logger.FromContext(ctx)

	username := models.NormalizeUsername(req.Username)

	session, ok := a.sessions.take(loginKey(client.DeviceID, username))
	if !ok {
		a.recordFailure(ctx, username, models.AuthEventLoginFailed, "no pending handshake", client)
		return models.ValidateLoginResponse{}, ErrAuthenticationFailed
	}

	if session.fake {
		// Keeps the work done for unknown usernames equal to a real check.
		_, _ = session.server.VerifyClient(req.ClientEphemeral, req.ClientProof)
		a.recordFailure(ctx, username, models.AuthEventLoginFailed, "unknown username", client)
		return models.ValidateLoginResponse{}, ErrAuthenticationFailed
	}

	account, err := a.accountRepository.FindByID(ctx, session.accountID)
	if err != nil {
		log.Err(err).Int64("account_id", session.accountID).Msg("account lookup failed")
		return models.ValidateLoginResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if err = a.checkAccess(account); err != nil {
		a.recordFailure(ctx, username, models.AuthEventLoginFailed, err.Error(), client)
		return models.ValidateLoginResponse{}, err
	}

	serverProof, err := session.server.VerifyClient(req.ClientEphemeral, req.ClientProof)
	if err != nil {
		a.registerFailure(ctx, account, models.AuthEventLoginFailed, err.Error(), client)
		return models.ValidateLoginResponse{}, ErrAuthenticationFailed
	}

	if account.TOTPEnabled {
		token := uuid.NewString()
		a.pendingTwoFactor.Add(token, pendingTwoFactor{
			accountID:  account.AccountID,
			username:   account.Username,
			deviceID:   client.DeviceID,
			rememberMe: req.RememberMe,
		})
		a.auditService.Record(ctx, models.AuthEvent{
			Username:  account.Username,
			EventType: models.AuthEventTwoFactorRequired,
			IPAddress: client.IPAddress,
		})

		return models.ValidateLoginResponse{
			RequiresTwoFactor: true,
			ServerProof:       serverProof,
			TwoFactorToken:    token,
		}, nil
	}

	tokens, err := a.completeLogin(ctx, account, client, req.RememberMe, models.AuthEventLoginSucceeded)
	if err != nil {
		return models.ValidateLoginResponse{}, err
	}

	return models.ValidateLoginResponse{ServerProof: serverProof, Tokens: &tokens}, nil
}

// ValidateTwoFactor finishes a pending login with a TOTP code.
func (a *authService) ValidateTwoFactor(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error) {
	return a.validateSecondFactor(ctx, req, client, a.checkTOTP,
		models.AuthEventTwoFactorSucceeded, models.AuthEventTwoFactorFailed)
}

// ValidateRecoveryCode finishes a pending login with a recovery code. Each
// code works once.
func (a *authService) ValidateRecoveryCode(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error) {
	return a.validateSecondFactor(ctx, req, client, a.consumeRecoveryCode,
		models.AuthEventRecoveryCodeUsed, models.AuthEventRecoveryCodeFailed)
}

// secondFactorCheck reports whether code is valid for account.
type secondFactorCheck func(ctx context.Context, account models.Account, code string) (bool, error)

func (a *authService) validateSecondFactor(
	ctx context.Context,
	req models.ValidateTwoFactorRequest,
	client models.ClientInfo,
	check secondFactorCheck,
	succeeded, failed models.AuthEventType,
) (models.ValidateLoginResponse, error) {
	username := models.NormalizeUsername(req.Username)

	pending, ok := a.pendingTwoFactor.Get(req.TwoFactorToken)
	if !ok || pending.username != username || pending.deviceID != client.DeviceID {
		a.recordFailure(ctx, username, failed, "no pending two-factor login", client)
		return models.ValidateLoginResponse{}, ErrAuthenticationFailed
	}

	account, err := a.accountRepository.FindByID(ctx, pending.accountID)
	if err != nil {
		return models.ValidateLoginResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if err = a.checkAccess(account); err != nil {
		a.pendingTwoFactor.Remove(req.TwoFactorToken)
		a.recordFailure(ctx, username, failed, err.Error(), client)
		return models.ValidateLoginResponse{}, err
	}

	valid, err := check(ctx, account, req.Code)
	if err != nil {
		return models.ValidateLoginResponse{}, err
	}
	if !valid {
		a.registerFailure(ctx, account, failed, "invalid code", client)
		return models.ValidateLoginResponse{}, ErrAuthenticationFailed
	}

	if !a.pendingTwoFactor.Remove(req.TwoFactorToken) {
		return models.ValidateLoginResponse{}, ErrAuthenticationFailed
	}

	tokens, err := a.completeLogin(ctx, account, client, pending.rememberMe, succeeded)
	if err != nil {
		return models.ValidateLoginResponse{}, err
	}

	return models.ValidateLoginResponse{Tokens: &tokens}, nil
}

func (a *authService) checkTOTP(_ context.Context, account models.Account, code string) (bool, error) {
	if !account.TOTPEnabled || account.TOTPSecret == "" {
		return false, nil
	}

	valid, err := totp.ValidateCustom(strings.TrimSpace(code), account.TOTPSecret, a.now().UTC(), totpValidateOpts)
	if err != nil {
		// Malformed codes are just wrong codes.
		return false, nil
	}

	return valid, nil
}

func (a *authService) consumeRecoveryCode(ctx context.Context, account models.Account, code string) (bool, error) {
	err := a.recoveryCodeRepository.ConsumeCode(ctx, account.AccountID, hashRecoveryCode(code), a.now().UTC())
	if errors.Is(err, store.ErrRecoveryCodeNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error consuming recovery code: %w", err)
	}

	return true, nil
}

// InitiateChangePassword starts a handshake against the current verifier of
// the session's account.
func (a *authService) InitiateChangePassword(ctx context.Context, session models.Session) (models.InitiateLoginResponse, error) {
	account, err := a.accountRepository.FindByID(ctx, session.AccountID)
	if err != nil {
		return models.InitiateLoginResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if err = a.checkAccess(account); err != nil {
		return models.InitiateLoginResponse{}, err
	}

	latest, err := a.snapshotRepository.GetLatest(ctx, account.AccountID)
	if err != nil {
		return models.InitiateLoginResponse{}, fmt.Errorf("latest snapshot lookup failed: %w", err)
	}

	server, err := srp.NewServer(a.group, latest.Verifier)
	if err != nil {
		return models.InitiateLoginResponse{}, fmt.Errorf("error starting handshake: %w", err)
	}

	a.sessions.put(changePasswordKey(account.AccountID, session.DeviceID), srpSession{
		server:    server,
		accountID: account.AccountID,
		username:  account.Username,
	})

	return models.InitiateLoginResponse{
		Salt:             latest.Salt,
		ServerEphemeral:  server.PublicEphemeral(),
		EncryptionAlgo:   latest.EncryptionAlgo,
		EncryptionParams: latest.EncryptionParams,
	}, nil
}

// VerifyChangePassword checks the proof of the current password and returns
// the server proof. A failed proof counts towards the lockout like a failed
// login.
func (a *authService) VerifyChangePassword(ctx context.Context, session models.Session, clientEphemeral, clientProof []byte) ([]byte, error) {
	client := models.ClientInfo{DeviceID: session.DeviceID}

	pending, ok := a.sessions.take(changePasswordKey(session.AccountID, session.DeviceID))
	if !ok {
		a.recordFailure(ctx, session.Username, models.AuthEventPasswordChangeFailed, "no pending handshake", client)
		return nil, ErrAuthenticationFailed
	}

	account, err := a.accountRepository.FindByID(ctx, pending.accountID)
	if err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	if err = a.checkAccess(account); err != nil {
		a.recordFailure(ctx, account.Username, models.AuthEventPasswordChangeFailed, err.Error(), client)
		return nil, err
	}

	serverProof, err := pending.server.VerifyClient(clientEphemeral, clientProof)
	if err != nil {
		a.registerFailure(ctx, account, models.AuthEventPasswordChangeFailed, err.Error(), client)
		return nil, ErrAuthenticationFailed
	}

	if account.FailedAttempts > 0 {
		if err = a.accountRepository.ResetFailedAttempts(ctx, account.AccountID); err != nil {
			return nil, fmt.Errorf("error resetting failed attempts: %w", err)
		}
	}

	return serverProof, nil
}

// completeLogin resets the failure counter, issues tokens and records the
// success.
func (a *authService) completeLogin(ctx context.Context, account models.Account, client models.ClientInfo, rememberMe bool, event models.AuthEventType) (models.TokenPair, error) {
	if account.FailedAttempts > 0 || account.LockedUntil != nil {
		if err := a.accountRepository.ResetFailedAttempts(ctx, account.AccountID); err != nil {
			return models.TokenPair{}, fmt.Errorf("error resetting failed attempts: %w", err)
		}
	}

	tokens, err := a.tokenService.IssueNew(ctx, account, client, rememberMe)
	if err != nil {
		return models.TokenPair{}, err
	}

	a.auditService.Record(ctx, models.AuthEvent{
		Username:  account.Username,
		EventType: event,
		IPAddress: client.IPAddress,
	})

	return tokens, nil
}

// registerFailure counts a failed proof and locks the account once the
// threshold is reached.
func (a *authService) registerFailure(ctx context.Context, account models.Account, event models.AuthEventType, reason string, client models.ClientInfo) {
	log := logger.FromContext(ctx)

	now := a.now().UTC()
	updated, err := a.accountRepository.RegisterFailedAttempt(ctx, account.AccountID, a.lockoutThreshold, now.Add(a.lockoutDuration))
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("failed to count failed attempt")
	}

	a.recordFailure(ctx, account.Username, event, reason, client)

	if err == nil && updated.IsLocked(now) && !account.IsLocked(now) {
		log.Warn().Int64("account_id", account.AccountID).Msg("account locked after repeated failures")
		a.auditService.Record(ctx, models.AuthEvent{
			Username:  account.Username,
			EventType: models.AuthEventAccountLocked,
			IPAddress: client.IPAddress,
		})
	}
}

func (a *authService) recordFailure(ctx context.Context, username string, event models.AuthEventType, reason string, client models.ClientInfo) {
	a.auditService.Record(ctx, models.AuthEvent{
		Username:  username,
		EventType: event,
		Reason:    reason,
		IPAddress: client.IPAddress,
	})
}

func (a *authService) checkAccess(account models.Account) error {
	if account.Blocked {
		return ErrAccountBlocked
	}
	if account.IsLocked(a.now()) {
		return ErrAccountLocked
	}
	return nil
}
