// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the server handlers and
// the client error mapper.
//
// Handlers write one of the Msg* constants as the plain-text body of an error
// response; the client maps status code and body back to a service error.
// Keeping both sides on the same constants keeps the wording consistent.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgAuthenticationFailed covers every failed proof. It never says
	// whether the username exists.
	MsgAuthenticationFailed = "authentication failed"

	// MsgAccountLocked is returned while an account is locked after too many
	// failed attempts.
	MsgAccountLocked = "account is temporarily locked"

	// MsgAccountBlocked is returned for administratively blocked accounts.
	MsgAccountBlocked = "account is blocked"

	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"
	MsgRefreshTokenIsInvalid   = "refresh token is expired or invalid"
	MsgUsernameAlreadyExists   = "username already exists"
	MsgUsernameMismatch        = "username does not match the session"
	MsgVersionTooOld           = "vault data version is older than the stored one"
	MsgBlobTooLarge            = "vault blob is too large"
	MsgTwoFactorNotPending     = "two-factor enrolment was not started"
	MsgTwoFactorAlreadyEnabled = "two-factor authentication is already enabled"
	MsgInvalidTwoFactorCode    = "invalid two-factor code"
	MsgNoPrimaryKey            = "recipient has no primary encryption key"
	MsgNotFound                = "not found"
	MsgTooManyRequests         = "too many requests"
	MsgInvalidIngestKey        = "invalid ingest key"

	// MsgInternalServerError is returned for unexpected server-side failures.
	// Internal details are logged, never returned.
	MsgInternalServerError = "internal server error"
)
