// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Account is a registered vault owner. Authentication material (salt and
// verifier) is not stored here: it travels with every [VaultSnapshot] so that
// the latest snapshot always defines the current password.
type Account struct {
	AccountID int64  `json:"account_id"`
	Username  string `json:"username"`

	// Blocked is an administrative flag independent of the password.
	Blocked bool `json:"-"`

	// FailedAttempts counts consecutive failed proofs since the last success
	// or the last lockout.
	FailedAttempts int `json:"-"`

	// LockedUntil is set when FailedAttempts reached the lockout threshold.
	LockedUntil *time.Time `json:"-"`

	PasswordChangedAt time.Time `json:"password_changed_at"`

	// TOTPSecret is the base32 secret of the authenticator app. It is stored
	// during enrolment and only enforced once TOTPEnabled is true.
	TOTPSecret  string `json:"-"`
	TOTPEnabled bool   `json:"two_factor_enabled"`

	CreatedAt time.Time `json:"created_at"`
}

// IsLocked reports whether the account is inside a lockout window at now.
func (a Account) IsLocked(now time.Time) bool {
	return a.LockedUntil != nil && now.Before(*a.LockedUntil)
}

// NormalizeUsername returns the canonical form used for lookups and
// uniqueness: surrounding whitespace removed and lower-cased.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// ClientInfo describes the caller of an unauthenticated request. DeviceID is
// derived on the server from the request fingerprint and never taken from the
// client.
type ClientInfo struct {
	IPAddress string
	UserAgent string
	DeviceID  string
}

// RegisterRequest creates an account together with its revision 0 snapshot.
type RegisterRequest struct {
	Username         string    `json:"username"`
	Salt             []byte    `json:"salt"`
	Verifier         []byte    `json:"verifier"`
	EncryptionAlgo   string    `json:"encryptionAlgo"`
	EncryptionParams KDFParams `json:"encryptionParams"`
	Version          string    `json:"version"`
	ClientID         string    `json:"clientId"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	AccountID int64 `json:"accountId"`
	Revision  int64 `json:"revision"`
}

// TwoFactorSetupResponse carries a freshly generated TOTP secret. The secret
// is not enforced until it is confirmed with a valid code.
type TwoFactorSetupResponse struct {
	Secret string `json:"secret"`
	URL    string `json:"url"`
}

// TwoFactorConfirmRequest confirms a pending TOTP enrolment.
type TwoFactorConfirmRequest struct {
	Code string `json:"code"`
}

// TwoFactorConfirmResponse lists the single-use recovery codes. They are
// returned exactly once; only their hashes are persisted.
type TwoFactorConfirmResponse struct {
	RecoveryCodes []string `json:"recoveryCodes"`
}
