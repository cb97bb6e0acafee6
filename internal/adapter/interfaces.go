// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the client uses to talk to
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from HTTP. Error values defined in errors.go are mapped from HTTP
// status codes by mapHTTPError so that callers can use [errors.Is] (for
// example [ErrConflict] for 409 or [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the vault server. The adapter
// keeps the current token pair: validate calls store the pair they receive,
// and authenticated calls refresh it once when the server answers 401.
type ServerAdapter interface {
	// SetTokens replaces the stored token pair.
	SetTokens(tokens models.TokenPair)

	// Tokens returns the stored token pair, which is empty before login.
	Tokens() models.TokenPair

	Status(ctx context.Context, clientVersion string) (models.StatusResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	InitiateLogin(ctx context.Context, username string) (models.InitiateLoginResponse, error)
	ValidateLogin(ctx context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error)
	ValidateTwoFactor(ctx context.Context, req models.ValidateTwoFactorRequest) (models.ValidateLoginResponse, error)
	ValidateRecoveryCode(ctx context.Context, req models.ValidateTwoFactorRequest) (models.ValidateLoginResponse, error)

	// Refresh rotates the stored refresh token and stores the new pair.
	Refresh(ctx context.Context) (models.TokenPair, error)

	// Revoke signs the current device out and forgets the stored pair.
	Revoke(ctx context.Context) error

	GetVault(ctx context.Context) (models.VaultResponse, error)

	// PushVault returns the decoded response together with ErrConflict when
	// the server refuses an older data version.
	PushVault(ctx context.Context, req models.PushVaultRequest) (models.PushVaultResponse, error)
	InitiateChangePassword(ctx context.Context) (models.InitiateLoginResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error)

	SetupTwoFactor(ctx context.Context) (models.TwoFactorSetupResponse, error)
	ConfirmTwoFactor(ctx context.Context, code string) (models.TwoFactorConfirmResponse, error)

	AddKey(ctx context.Context, req models.AddKeyRequest) (models.EncryptionKey, error)
	GetPrimaryKey(ctx context.Context) (models.EncryptionKey, error)
	ListMailbox(ctx context.Context) ([]models.MailboxMessage, error)
}
