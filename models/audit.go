// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AuthEventType names an authentication-relevant outcome.
type AuthEventType string

const (
	AuthEventLoginInitiated       AuthEventType = "login_initiated"
	AuthEventLoginSucceeded       AuthEventType = "login_succeeded"
	AuthEventLoginFailed          AuthEventType = "login_failed"
	AuthEventTwoFactorRequired    AuthEventType = "two_factor_required"
	AuthEventTwoFactorSucceeded   AuthEventType = "two_factor_succeeded"
	AuthEventTwoFactorFailed      AuthEventType = "two_factor_failed"
	AuthEventRecoveryCodeUsed     AuthEventType = "recovery_code_used"
	AuthEventRecoveryCodeFailed   AuthEventType = "recovery_code_failed"
	AuthEventAccountLocked        AuthEventType = "account_locked"
	AuthEventPasswordChanged      AuthEventType = "password_changed"
	AuthEventPasswordChangeFailed AuthEventType = "password_change_failed"
	AuthEventTokenRevoked         AuthEventType = "token_revoked"
	AuthEventRegistered           AuthEventType = "registered"
)

// AuthEvent is one advisory audit log entry.
type AuthEvent struct {
	EventID   int64         `json:"eventId"`
	Username  string        `json:"username"`
	EventType AuthEventType `json:"eventType"`
	Reason    string        `json:"reason,omitempty"`
	IPAddress string        `json:"ipAddress,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}
