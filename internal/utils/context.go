// Package utils provides general-purpose helpers used across the server and
// the client: typed context keys, keyed hashing, JSON response writing,
// request metadata extraction, access token signing and an HTTP client.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

var (
	// AccountIDCtxKey carries the int64 account id of an authenticated request.
	AccountIDCtxKey = contextKey("accountID")
	// DeviceIDCtxKey carries the device id bound to the access token.
	DeviceIDCtxKey = contextKey("deviceID")
	// UsernameCtxKey carries the normalized username bound to the access token.
	UsernameCtxKey = contextKey("username")
)

// GetAccountIDFromContext returns the account id and whether it was present
// with the expected type.
func GetAccountIDFromContext(ctx context.Context) (int64, bool) {
	accountID, ok := ctx.Value(AccountIDCtxKey).(int64)
	return accountID, ok
}

// GetDeviceIDFromContext returns the device id stored by the auth middleware.
func GetDeviceIDFromContext(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDCtxKey).(string)
	return deviceID, ok
}

// GetUsernameFromContext returns the username stored by the auth middleware.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// WithAccount stores the identity of an authenticated caller in ctx.
func WithAccount(ctx context.Context, accountID int64, username, deviceID string) context.Context {
	ctx = context.WithValue(ctx, AccountIDCtxKey, accountID)
	ctx = context.WithValue(ctx, UsernameCtxKey, username)
	return context.WithValue(ctx, DeviceIDCtxKey, deviceID)
}
