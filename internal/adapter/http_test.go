// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, handler http.Handler) *httpServerAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://vault.example/ ", want: "https://vault.example"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_BadAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())

	assert.Error(t, err)
}

// ── Unauthenticated calls ───────────────────────────────────────────────────

func TestStatus_SendsClientVersion(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1.2.3", r.Header.Get("X-Client-Version"))
		assert.NotEmpty(t, r.Header.Get("X-Client-Platform"))
		writeJSON(t, w, http.StatusOK, models.StatusResponse{ServerVersion: "2.0.0", UpdateRequired: true})
	})
	a := newTestAdapter(t, r)

	status, err := a.Status(context.Background(), "1.2.3")

	require.NoError(t, err)
	assert.Equal(t, "2.0.0", status.ServerVersion)
	assert.True(t, status.UpdateRequired)
}

func TestRegister_PostsJSON(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/accounts/register", func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Username)
		assert.Equal(t, []byte{1, 2, 3}, req.Verifier)
		writeJSON(t, w, http.StatusCreated, models.RegisterResponse{AccountID: 7})
	})
	a := newTestAdapter(t, r)

	resp, err := a.Register(context.Background(), models.RegisterRequest{Username: "alice@example.com", Verifier: []byte{1, 2, 3}})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.AccountID)
}

func TestErrorStatusesMapToSentinels(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrConflict},
		{status: http.StatusRequestEntityTooLarge, want: ErrRequestTooLarge},
		{status: http.StatusLocked, want: ErrLocked},
		{status: http.StatusTooManyRequests, want: ErrTooManyRequests},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "server says no", tt.status)
			}))

			_, err := a.InitiateLogin(context.Background(), "alice")

			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "server says no", "the body travels with the error")

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.Code)
		})
	}
}

func TestUnknownStatusKeepsCode(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	_, err := a.InitiateLogin(context.Background(), "alice")

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTeapot, statusErr.Code)
	assert.EqualError(t, statusErr, "http 418: I'm a teapot")
}

func TestValidateLogin_StoresTokens(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/auth/validate", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ValidateLoginResponse{
			ServerProof: []byte("m2"),
			Tokens:      &models.TokenPair{AccessToken: "access", RefreshToken: "refresh"},
		})
	})
	r.Post("/api/auth/validate-2fa", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.ValidateLoginResponse{
			Tokens: &models.TokenPair{AccessToken: "access-2fa", RefreshToken: "refresh-2fa"},
		})
	})
	a := newTestAdapter(t, r)
	ctx := context.Background()

	validated, err := a.ValidateLogin(ctx, models.ValidateLoginRequest{Username: "alice"})
	require.NoError(t, err)
	assert.Equal(t, []byte("m2"), validated.ServerProof)
	assert.Equal(t, "refresh", a.Tokens().RefreshToken)

	_, err = a.ValidateTwoFactor(ctx, models.ValidateTwoFactorRequest{Username: "alice", Code: "123456"})
	require.NoError(t, err)
	assert.Equal(t, "access-2fa", a.Tokens().AccessToken)
}

// ── Authenticated calls ─────────────────────────────────────────────────────

func TestAuthedCall_WithoutLogin(t *testing.T) {
	a := newTestAdapter(t, http.NotFoundHandler())

	_, err := a.GetVault(context.Background())

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthedCall_RefreshesOnceOn401(t *testing.T) {
	var refreshes atomic.Int64

	r := chi.NewRouter()
	r.Get("/api/vault", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer fresh-access" {
			http.Error(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}
		writeJSON(t, w, http.StatusOK, models.VaultResponse{Status: models.VaultStatusOk, Revision: 3})
	})
	r.Post("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshes.Add(1)
		var req models.RefreshRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "old-refresh", req.RefreshToken)
		writeJSON(t, w, http.StatusOK, models.TokenPair{AccessToken: "fresh-access", RefreshToken: "new-refresh"})
	})
	a := newTestAdapter(t, r)
	a.SetTokens(models.TokenPair{AccessToken: "stale-access", RefreshToken: "old-refresh"})

	vault, err := a.GetVault(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), vault.Revision)
	assert.Equal(t, int64(1), refreshes.Load())
	assert.Equal(t, "new-refresh", a.Tokens().RefreshToken)
}

func TestAuthedCall_RefreshFails(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/mailbox", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token is expired or invalid", http.StatusUnauthorized)
	})
	r.Post("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "refresh token is expired or invalid", http.StatusUnauthorized)
	})
	a := newTestAdapter(t, r)
	a.SetTokens(models.TokenPair{AccessToken: "stale", RefreshToken: "stale"})

	_, err := a.ListMailbox(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestPushVault_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		httpStatus int
		body       models.PushVaultResponse
		wantErr    error
	}{
		{name: "accepted", httpStatus: http.StatusOK, body: models.PushVaultResponse{Status: models.VaultStatusOk, Revision: 5}},
		{name: "outdated is not an error", httpStatus: http.StatusOK, body: models.PushVaultResponse{Status: models.VaultStatusOutdated, Revision: 9}},
		{name: "older data version", httpStatus: http.StatusConflict, body: models.PushVaultResponse{Status: models.VaultStatusVersionTooOld, Revision: 4}, wantErr: ErrConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := chi.NewRouter()
			r.Post("/api/vault", func(w http.ResponseWriter, r *http.Request) {
				var req models.PushVaultRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				assert.Equal(t, int64(4), req.BaseRevision)
				writeJSON(t, w, tt.httpStatus, tt.body)
			})
			a := newTestAdapter(t, r)
			a.SetTokens(models.TokenPair{AccessToken: "access", RefreshToken: "refresh"})

			pushed, err := a.PushVault(context.Background(), models.PushVaultRequest{BaseRevision: 4})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.body, pushed)
		})
	}
}

func TestRevoke_ClearsTokensEvenOnFailure(t *testing.T) {
	a := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	a.SetTokens(models.TokenPair{AccessToken: "a", RefreshToken: "r"})

	err := a.Revoke(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, a.Tokens().RefreshToken)

	// nothing to revoke any more
	assert.NoError(t, a.Revoke(context.Background()))
}

func TestChangePassword_UsesBearer(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/vault/change-password", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer access", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.ChangePasswordResponse{
			PushVaultResponse: models.PushVaultResponse{Status: models.VaultStatusOk, Revision: 2},
			ServerProof:       []byte("m2"),
		})
	})
	a := newTestAdapter(t, r)
	a.SetTokens(models.TokenPair{AccessToken: "access", RefreshToken: "refresh"})

	changed, err := a.ChangePassword(context.Background(), models.ChangePasswordRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(2), changed.Revision)
	assert.Equal(t, []byte("m2"), changed.ServerProof)
}
