package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is deliberately generic: unknown usernames,
	// wrong proofs, stale handshakes and bad second factors all map to it.
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrAccountLocked        = errors.New("account is temporarily locked")
	ErrAccountBlocked       = errors.New("account is blocked")

	ErrTokenIsExpiredOrInvalid = errors.New("access token is expired or invalid")
	ErrRefreshTokenInvalid     = errors.New("refresh token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUsernameTaken    = errors.New("username is already taken")
	ErrUsernameMismatch = errors.New("username does not match the session")
	ErrVersionTooOld    = errors.New("vault data version is older than the stored one")
	ErrBlobTooLarge     = errors.New("vault blob is too large")

	ErrTwoFactorNotPending     = errors.New("two-factor enrolment was not started")
	ErrTwoFactorAlreadyEnabled = errors.New("two-factor authentication is already enabled")
	ErrInvalidTwoFactorCode    = errors.New("invalid two-factor code")

	ErrNoPrimaryKey = errors.New("recipient has no primary encryption key")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)

// Client-side errors.
var (
	// ErrServerProofInvalid means the server could not prove knowledge of
	// the verifier. The client must not trust that server.
	ErrServerProofInvalid = errors.New("server proof is invalid")
	ErrWrongPassword      = errors.New("wrong password")
	ErrVaultOutdated      = errors.New("vault changed on the server, pull before pushing")
	ErrNoLocalVault       = errors.New("no local vault, pull first")
	ErrNoPrivateKey       = errors.New("no private key for message")
)
