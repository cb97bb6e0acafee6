// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testVerifierSize = 256

func validRegister() models.RegisterRequest {
	return models.RegisterRequest{
		Username:         "alice@example.com",
		Salt:             []byte("salt"),
		Verifier:         []byte("verifier"),
		EncryptionParams: models.KDFParams{Iterations: 3, MemoryKiB: 65536, Parallelism: 4},
		Version:          "1.0.0",
	}
}

func validPush() models.PushVaultRequest {
	return models.PushVaultRequest{
		Username:        "alice@example.com",
		Blob:            []byte("blob"),
		Version:         "1.0.0",
		BaseRevision:    4,
		CredentialCount: 2,
		EmailCount:      1,
	}
}

func validChangePassword() models.ChangePasswordRequest {
	return models.ChangePasswordRequest{
		PushVaultRequest: validPush(),
		NewSalt:          []byte("new salt"),
		NewVerifier:      []byte("new verifier"),
		EncryptionParams: models.KDFParams{Iterations: 3, MemoryKiB: 65536, Parallelism: 4},
	}
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewRequestValidator(testVerifierSize)
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("value and pointer", func(t *testing.T) {
		register := validRegister()
		require.NoError(t, v.Validate(ctx, register))
		require.NoError(t, v.Validate(ctx, &register))

		push := validPush()
		require.NoError(t, v.Validate(ctx, push))
		require.NoError(t, v.Validate(ctx, &push))

		change := validChangePassword()
		require.NoError(t, v.Validate(ctx, change))
		require.NoError(t, v.Validate(ctx, &change))
	})

	t.Run("unknown field", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, validRegister(), "no_such_field"), ErrUnknownField)
		require.ErrorIs(t, v.Validate(ctx, validPush(), FieldSalt), ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// RegisterRequest
// ---------------------------------------------------------------------------

func TestValidate_Register(t *testing.T) {
	v := NewRequestValidator(testVerifierSize)

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.RegisterRequest) {}},
		{name: "empty username", mutate: func(r *models.RegisterRequest) { r.Username = "" }, wantErr: ErrInvalidUsername},
		{name: "username too long", mutate: func(r *models.RegisterRequest) { r.Username = strings.Repeat("a", MaxUsernameLength+1) }, wantErr: ErrInvalidUsername},
		{name: "no salt", mutate: func(r *models.RegisterRequest) { r.Salt = nil }, wantErr: ErrEmptySalt},
		{name: "no verifier", mutate: func(r *models.RegisterRequest) { r.Verifier = nil }, wantErr: ErrInvalidVerifier},
		{name: "verifier larger than the group", mutate: func(r *models.RegisterRequest) { r.Verifier = make([]byte, testVerifierSize+1) }, wantErr: ErrInvalidVerifier},
		{name: "zero iterations", mutate: func(r *models.RegisterRequest) { r.EncryptionParams.Iterations = 0 }, wantErr: ErrInvalidEncryptionParams},
		{name: "zero parallelism", mutate: func(r *models.RegisterRequest) { r.EncryptionParams.Parallelism = 0 }, wantErr: ErrInvalidEncryptionParams},
		{name: "version is not semver", mutate: func(r *models.RegisterRequest) { r.Version = "latest" }, wantErr: ErrInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegister()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegisterScopedFields(t *testing.T) {
	v := NewRequestValidator(testVerifierSize)
	req := validRegister()
	req.Salt = nil

	assert.NoError(t, v.Validate(context.Background(), req, FieldUsername, FieldVersion), "salt is not checked")
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldSalt), ErrEmptySalt)
}

func TestValidate_UnlimitedVerifier(t *testing.T) {
	req := validRegister()
	req.Verifier = make([]byte, 4096)

	assert.NoError(t, NewRequestValidator(0).Validate(context.Background(), req))
}

// ---------------------------------------------------------------------------
// PushVaultRequest / ChangePasswordRequest
// ---------------------------------------------------------------------------

func TestValidate_Push(t *testing.T) {
	v := NewRequestValidator(testVerifierSize)

	tests := []struct {
		name    string
		mutate  func(r *models.PushVaultRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.PushVaultRequest) {}},
		{name: "first write", mutate: func(r *models.PushVaultRequest) { r.BaseRevision = 0 }},
		{name: "empty blob is allowed", mutate: func(r *models.PushVaultRequest) { r.Blob = nil }},
		{name: "negative base revision", mutate: func(r *models.PushVaultRequest) { r.BaseRevision = -1 }, wantErr: ErrInvalidBaseRevision},
		{name: "bad version", mutate: func(r *models.PushVaultRequest) { r.Version = "" }, wantErr: ErrInvalidVersion},
		{name: "negative credential count", mutate: func(r *models.PushVaultRequest) { r.CredentialCount = -1 }, wantErr: ErrInvalidCounts},
		{name: "negative email count", mutate: func(r *models.PushVaultRequest) { r.EmailCount = -3 }, wantErr: ErrInvalidCounts},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validPush()
			tt.mutate(&req)

			err := v.Validate(context.Background(), &req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_ChangePassword(t *testing.T) {
	v := NewRequestValidator(testVerifierSize)

	tests := []struct {
		name    string
		mutate  func(r *models.ChangePasswordRequest)
		wantErr error
	}{
		{name: "valid", mutate: func(r *models.ChangePasswordRequest) {}},
		{name: "push fields are checked", mutate: func(r *models.ChangePasswordRequest) { r.BaseRevision = -1 }, wantErr: ErrInvalidBaseRevision},
		{name: "no new salt", mutate: func(r *models.ChangePasswordRequest) { r.NewSalt = nil }, wantErr: ErrInvalidNewCredentials},
		{name: "no new verifier", mutate: func(r *models.ChangePasswordRequest) { r.NewVerifier = nil }, wantErr: ErrInvalidNewCredentials},
		{name: "oversized verifier", mutate: func(r *models.ChangePasswordRequest) { r.NewVerifier = make([]byte, testVerifierSize+1) }, wantErr: ErrInvalidNewCredentials},
		{name: "no params", mutate: func(r *models.ChangePasswordRequest) { r.EncryptionParams = models.KDFParams{} }, wantErr: ErrInvalidNewCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validChangePassword()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// AddKeyRequest / DeliverMessageRequest
// ---------------------------------------------------------------------------

func TestValidate_AddKey(t *testing.T) {
	v := NewRequestValidator(0)

	private, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	der, err := crypto.MarshalPublicKey(&private.PublicKey)
	require.NoError(t, err)

	assert.NoError(t, v.Validate(context.Background(), models.AddKeyRequest{PublicKey: der, Primary: true}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.AddKeyRequest{PublicKey: []byte("nope")}), ErrInvalidPublicKey)
	assert.ErrorIs(t, v.Validate(context.Background(), &models.AddKeyRequest{}), ErrInvalidPublicKey)
}

func TestValidate_Deliver(t *testing.T) {
	v := NewRequestValidator(0)

	tooMany := make(map[string]string, MaxMessageFields+1)
	for i := range MaxMessageFields + 1 {
		tooMany[strings.Repeat("f", i+1)] = "v"
	}

	tests := []struct {
		name    string
		req     models.DeliverMessageRequest
		wantErr error
	}{
		{name: "valid", req: models.DeliverMessageRequest{Username: "bob@example.com", Fields: map[string]string{"subject": "hi"}}},
		{name: "no recipient", req: models.DeliverMessageRequest{Fields: map[string]string{"subject": "hi"}}, wantErr: ErrInvalidUsername},
		{name: "no fields", req: models.DeliverMessageRequest{Username: "bob@example.com"}, wantErr: ErrInvalidMessageFields},
		{name: "too many fields", req: models.DeliverMessageRequest{Username: "bob@example.com", Fields: tooMany}, wantErr: ErrInvalidMessageFields},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
