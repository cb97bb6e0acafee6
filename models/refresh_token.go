// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RefreshToken is a persisted, opaque, long-lived credential bound to one
// account and one device.
type RefreshToken struct {
	TokenID   int64
	AccountID int64
	DeviceID  string
	Token     string

	// PreviousToken is the value this token replaced during rotation. It lets
	// a near-simultaneous retry with the old value receive this token again.
	PreviousToken *string

	// RememberMe selects the long lifetime class; rotation preserves it.
	RememberMe bool

	IPAddress string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is no longer usable at now.
func (t RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
