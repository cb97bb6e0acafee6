// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// refreshTokenBytes is the amount of randomness in a refresh token.
const refreshTokenBytes = 32

// tokenService is the concrete implementation of TokenService.
//
// Access tokens are short-lived HS256 JWTs. Refresh tokens are opaque random
// strings stored one per (account, device). Rotation replaces the stored
// token and remembers the replaced value, so that a client retrying with the
// old value shortly after a successful rotation receives the same successor
// instead of being logged out.
type tokenService struct {
	// refreshTokenRepository stores refresh tokens.
	refreshTokenRepository store.RefreshTokenRepository

	// accountRepository is used to re-read the account on rotation so that
	// new access tokens carry the current username and blocked accounts are
	// refused.
	accountRepository store.AccountRepository

	// locker serializes issuance and rotation per account.
	locker *accountLocker

	// signKey and issuer sign and verify access tokens.
	signKey string
	issuer  string

	accessTokenDuration  time.Duration
	refreshTokenDuration time.Duration
	rememberMeDuration   time.Duration

	// reuseWindow is how long after a rotation the replaced token still
	// yields its successor.
	reuseWindow time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the auth configuration.
func NewTokenService(
	refreshTokenRepository store.RefreshTokenRepository,
	accountRepository store.AccountRepository,
	locker *accountLocker,
	cfg config.Auth,
	logger *logger.Logger,
) TokenService {
	return &tokenService{
		refreshTokenRepository: refreshTokenRepository,
		accountRepository:      accountRepository,
		locker:                 locker,
		signKey:                cfg.TokenSignKey,
		issuer:                 cfg.TokenIssuer,
		accessTokenDuration:    cfg.AccessTokenDuration,
		refreshTokenDuration:   cfg.RefreshTokenDuration,
		rememberMeDuration:     cfg.RememberMeDuration,
		reuseWindow:            cfg.RefreshReuseWindow,
		now:                    time.Now,
		logger:                 logger,
	}
}

// IssueNew creates a fresh token pair for client. Any refresh token the same
// device held before is replaced.
func (s *tokenService) IssueNew(ctx context.Context, account models.Account, client models.ClientInfo, rememberMe bool) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	unlock := s.locker.lock(account.AccountID)
	defer unlock()

	refresh, err := newRefreshToken()
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	now := s.now().UTC()
	token := models.RefreshToken{
		AccountID:  account.AccountID,
		DeviceID:   client.DeviceID,
		Token:      refresh,
		RememberMe: rememberMe,
		IPAddress:  client.IPAddress,
		ExpiresAt:  now.Add(s.refreshLifetime(rememberMe)),
		CreatedAt:  now,
	}

	if err = s.refreshTokenRepository.ReplaceForDevice(ctx, token); err != nil {
		log.Err(err).
			Str("func", "tokenService.IssueNew").
			Int64("account_id", account.AccountID).
			Msg("failed to store refresh token")
		return models.TokenPair{}, fmt.Errorf("error storing refresh token: %w", err)
	}

	return s.pair(account, client.DeviceID, refresh)
}

// Rotate exchanges refreshToken for a new pair.
//
//  1. If accessToken is set, its signature and issuer must verify (expiry is
//     ignored) and its subject must own the refresh token.
//  2. A token rotated less than reuseWindow ago yields its successor again.
//  3. Otherwise the presented token must exist and be unexpired; it is
//     replaced by a new token of the same device and lifetime class.
//
// Every failure is reported as ErrRefreshTokenInvalid.
func (s *tokenService) Rotate(ctx context.Context, accessToken, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if refreshToken == "" {
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}

	var subject int64
	if accessToken != "" {
		token, err := utils.ParseExpiredAccessToken(accessToken, s.signKey, s.issuer)
		if err != nil {
			log.Debug().Err(err).Msg("refresh request carries an invalid access token")
			return models.TokenPair{}, ErrRefreshTokenInvalid
		}
		subject = token.AccountID
	}

	if pair, ok, err := s.reuse(ctx, refreshToken, subject); err != nil || ok {
		return pair, err
	}

	current, err := s.refreshTokenRepository.FindByToken(ctx, refreshToken)
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("error looking up refresh token: %w", err)
	}

	now := s.now().UTC()
	if current.IsExpired(now) || (subject != 0 && subject != current.AccountID) {
		return models.TokenPair{}, ErrRefreshTokenInvalid
	}

	unlock := s.locker.lock(current.AccountID)
	defer unlock()

	account, err := s.activeAccount(ctx, current.AccountID)
	if err != nil {
		return models.TokenPair{}, err
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	previous := refreshToken
	next := models.RefreshToken{
		AccountID:     current.AccountID,
		DeviceID:      current.DeviceID,
		Token:         refresh,
		PreviousToken: &previous,
		RememberMe:    current.RememberMe,
		IPAddress:     current.IPAddress,
		ExpiresAt:     now.Add(s.refreshLifetime(current.RememberMe)),
		CreatedAt:     now,
	}

	err = s.refreshTokenRepository.Rotate(ctx, refreshToken, next)
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		// A concurrent request rotated the token first.
		pair, ok, reuseErr := s.reuse(ctx, refreshToken, subject)
		if reuseErr != nil {
			return models.TokenPair{}, reuseErr
		}
		if !ok {
			return models.TokenPair{}, ErrRefreshTokenInvalid
		}
		return pair, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "tokenService.Rotate").
			Int64("account_id", current.AccountID).
			Msg("failed to rotate refresh token")
		return models.TokenPair{}, fmt.Errorf("error rotating refresh token: %w", err)
	}

	return s.pair(account, current.DeviceID, refresh)
}

// reuse looks for a token that replaced presented within the reuse window.
// ok is false when there is none.
func (s *tokenService) reuse(ctx context.Context, presented string, subject int64) (models.TokenPair, bool, error) {
	successor, err := s.refreshTokenRepository.FindByPreviousToken(ctx, presented)
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		return models.TokenPair{}, false, nil
	}
	if err != nil {
		return models.TokenPair{}, false, fmt.Errorf("error looking up rotated refresh token: %w", err)
	}

	now := s.now().UTC()
	if now.Sub(successor.CreatedAt) > s.reuseWindow || successor.IsExpired(now) {
		return models.TokenPair{}, false, nil
	}
	if subject != 0 && subject != successor.AccountID {
		return models.TokenPair{}, false, ErrRefreshTokenInvalid
	}

	account, err := s.activeAccount(ctx, successor.AccountID)
	if err != nil {
		return models.TokenPair{}, false, err
	}

	pair, err := s.pair(account, successor.DeviceID, successor.Token)
	if err != nil {
		return models.TokenPair{}, false, err
	}

	logger.FromContext(ctx).Debug().
		Int64("account_id", successor.AccountID).
		Msg("refresh token reused within the reuse window")

	return pair, true, nil
}

// Revoke deletes refreshToken and every other token of the same device.
// Unknown tokens are ignored so that logout is idempotent.
func (s *tokenService) Revoke(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	token, err := s.refreshTokenRepository.FindByToken(ctx, refreshToken)
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		// The client may be logging out with a value it just rotated away.
		token, err = s.refreshTokenRepository.FindByPreviousToken(ctx, refreshToken)
	}
	if errors.Is(err, store.ErrRefreshTokenNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error looking up refresh token: %w", err)
	}

	unlock := s.locker.lock(token.AccountID)
	defer unlock()

	if _, err = s.refreshTokenRepository.DeleteByDevice(ctx, token.AccountID, token.DeviceID); err != nil {
		return fmt.Errorf("error revoking refresh token: %w", err)
	}

	return nil
}

// RevokeOtherDevices deletes the refresh tokens of every device of accountID
// except keepDeviceID and returns how many were removed.
func (s *tokenService) RevokeOtherDevices(ctx context.Context, accountID int64, keepDeviceID string) (int64, error) {
	unlock := s.locker.lock(accountID)
	defer unlock()

	removed, err := s.refreshTokenRepository.DeleteOtherDevices(ctx, accountID, keepDeviceID)
	if err != nil {
		return 0, fmt.Errorf("error revoking refresh tokens: %w", err)
	}

	return removed, nil
}

// ParseAccessToken validates tokenString. Any failure is normalised to
// ErrTokenIsExpiredOrInvalid.
func (s *tokenService) ParseAccessToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseAccessToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("access token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (s *tokenService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.refreshTokenRepository.DeleteExpired(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("error deleting expired refresh tokens: %w", err)
	}

	return removed, nil
}

func (s *tokenService) activeAccount(ctx context.Context, accountID int64) (models.Account, error) {
	account, err := s.accountRepository.FindByID(ctx, accountID)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrRefreshTokenInvalid
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("error looking up account: %w", err)
	}
	if account.Blocked {
		return models.Account{}, ErrRefreshTokenInvalid
	}

	return account, nil
}

func (s *tokenService) pair(account models.Account, deviceID, refresh string) (models.TokenPair, error) {
	access, err := utils.GenerateAccessToken(utils.AccessTokenParams{
		Issuer:    s.issuer,
		SignKey:   s.signKey,
		AccountID: account.AccountID,
		Username:  account.Username,
		DeviceID:  deviceID,
		Duration:  s.accessTokenDuration,
	})
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{
		AccessToken:          access.SignedString,
		RefreshToken:         refresh,
		AccessTokenExpiresAt: access.ExpiresAt.Time,
	}, nil
}

func (s *tokenService) refreshLifetime(rememberMe bool) time.Duration {
	if rememberMe {
		return s.rememberMeDuration
	}
	return s.refreshTokenDuration
}

func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
