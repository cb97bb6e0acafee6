package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu     sync.RWMutex
	tokens models.TokenPair

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetTokens(tokens models.TokenPair) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = tokens
}

func (h *httpServerAdapter) Tokens() models.TokenPair {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tokens
}

// Status implements [ServerAdapter]. It sends the client version and
// platform headers to GET /api/status.
func (h *httpServerAdapter) Status(ctx context.Context, clientVersion string) (models.StatusResponse, error) {
	var status models.StatusResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("X-Client-Version", clientVersion).
		SetHeader("X-Client-Platform", runtime.GOOS).
		SetResult(&status).
		Get("/api/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	return status, nil
}

// Register implements [ServerAdapter] with POST /api/accounts/register.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse
	if err := h.postJSON(ctx, "/api/accounts/register", req, &registered); err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	return registered, nil
}

// InitiateLogin implements [ServerAdapter] with POST /api/auth/login.
func (h *httpServerAdapter) InitiateLogin(ctx context.Context, username string) (models.InitiateLoginResponse, error) {
	var initiated models.InitiateLoginResponse
	if err := h.postJSON(ctx, "/api/auth/login", models.InitiateLoginRequest{Username: username}, &initiated); err != nil {
		return models.InitiateLoginResponse{}, fmt.Errorf("initiate login request: %w", err)
	}
	return initiated, nil
}

// ValidateLogin implements [ServerAdapter] with POST /api/auth/validate.
// Tokens in the response are stored.
func (h *httpServerAdapter) ValidateLogin(ctx context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error) {
	return h.validate(ctx, "/api/auth/validate", req)
}

func (h *httpServerAdapter) ValidateTwoFactor(ctx context.Context, req models.ValidateTwoFactorRequest) (models.ValidateLoginResponse, error) {
	return h.validate(ctx, "/api/auth/validate-2fa", req)
}

func (h *httpServerAdapter) ValidateRecoveryCode(ctx context.Context, req models.ValidateTwoFactorRequest) (models.ValidateLoginResponse, error) {
	return h.validate(ctx, "/api/auth/validate-recovery-code", req)
}

func (h *httpServerAdapter) validate(ctx context.Context, path string, body any) (models.ValidateLoginResponse, error) {
	var validated models.ValidateLoginResponse
	if err := h.postJSON(ctx, path, body, &validated); err != nil {
		return models.ValidateLoginResponse{}, fmt.Errorf("validate request: %w", err)
	}

	if validated.Tokens != nil {
		h.SetTokens(*validated.Tokens)
	}
	return validated, nil
}

// Refresh implements [ServerAdapter] with POST /api/auth/refresh.
func (h *httpServerAdapter) Refresh(ctx context.Context) (models.TokenPair, error) {
	current := h.Tokens()
	if current.RefreshToken == "" {
		return models.TokenPair{}, ErrNotLoggedIn
	}

	var refreshed models.TokenPair
	err := h.postJSON(ctx, "/api/auth/refresh", models.RefreshRequest{
		AccessToken:  current.AccessToken,
		RefreshToken: current.RefreshToken,
	}, &refreshed)
	if err != nil {
		return models.TokenPair{}, fmt.Errorf("refresh request: %w", err)
	}

	h.SetTokens(refreshed)
	return refreshed, nil
}

// Revoke implements [ServerAdapter] with POST /api/auth/revoke. The stored
// pair is cleared even when the request fails.
func (h *httpServerAdapter) Revoke(ctx context.Context) error {
	current := h.Tokens()
	h.SetTokens(models.TokenPair{})

	if current.RefreshToken == "" {
		return nil
	}

	err := h.postJSON(ctx, "/api/auth/revoke", models.RefreshRequest{
		AccessToken:  current.AccessToken,
		RefreshToken: current.RefreshToken,
	}, nil)
	if err != nil {
		return fmt.Errorf("revoke request: %w", err)
	}
	return nil
}

// GetVault implements [ServerAdapter] with GET /api/vault.
func (h *httpServerAdapter) GetVault(ctx context.Context) (models.VaultResponse, error) {
	var vault models.VaultResponse

	resp, err := h.doAuthed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&vault).Get("/api/vault")
	})
	if err != nil {
		return models.VaultResponse{}, fmt.Errorf("get vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultResponse{}, err
	}

	return vault, nil
}

// PushVault implements [ServerAdapter] with POST /api/vault. A 409 answer
// carries a JSON body with the true latest revision; it is decoded and
// returned together with the wrapped [ErrConflict].
func (h *httpServerAdapter) PushVault(ctx context.Context, req models.PushVaultRequest) (models.PushVaultResponse, error) {
	var pushed models.PushVaultResponse

	resp, err := h.doAuthed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetBody(req).SetResult(&pushed).SetError(&pushed).Post("/api/vault")
	})
	if err != nil {
		return models.PushVaultResponse{}, fmt.Errorf("push vault request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if resp.StatusCode() == http.StatusConflict {
			return pushed, err
		}
		return models.PushVaultResponse{}, err
	}

	return pushed, nil
}

func (h *httpServerAdapter) InitiateChangePassword(ctx context.Context) (models.InitiateLoginResponse, error) {
	var initiated models.InitiateLoginResponse
	if err := h.postAuthed(ctx, "/api/vault/change-password/initiate", nil, &initiated); err != nil {
		return models.InitiateLoginResponse{}, fmt.Errorf("initiate change password request: %w", err)
	}
	return initiated, nil
}

func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error) {
	var changed models.ChangePasswordResponse
	if err := h.postAuthed(ctx, "/api/vault/change-password", req, &changed); err != nil {
		return models.ChangePasswordResponse{}, fmt.Errorf("change password request: %w", err)
	}
	return changed, nil
}

func (h *httpServerAdapter) SetupTwoFactor(ctx context.Context) (models.TwoFactorSetupResponse, error) {
	var setup models.TwoFactorSetupResponse
	if err := h.postAuthed(ctx, "/api/account/2fa/setup", nil, &setup); err != nil {
		return models.TwoFactorSetupResponse{}, fmt.Errorf("two-factor setup request: %w", err)
	}
	return setup, nil
}

func (h *httpServerAdapter) ConfirmTwoFactor(ctx context.Context, code string) (models.TwoFactorConfirmResponse, error) {
	var confirmed models.TwoFactorConfirmResponse
	if err := h.postAuthed(ctx, "/api/account/2fa/confirm", models.TwoFactorConfirmRequest{Code: code}, &confirmed); err != nil {
		return models.TwoFactorConfirmResponse{}, fmt.Errorf("two-factor confirm request: %w", err)
	}
	return confirmed, nil
}

func (h *httpServerAdapter) AddKey(ctx context.Context, req models.AddKeyRequest) (models.EncryptionKey, error) {
	var key models.EncryptionKey
	if err := h.postAuthed(ctx, "/api/keys", req, &key); err != nil {
		return models.EncryptionKey{}, fmt.Errorf("add key request: %w", err)
	}
	return key, nil
}

func (h *httpServerAdapter) GetPrimaryKey(ctx context.Context) (models.EncryptionKey, error) {
	var key models.EncryptionKey

	resp, err := h.doAuthed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&key).Get("/api/keys/primary")
	})
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("get primary key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptionKey{}, err
	}

	return key, nil
}

func (h *httpServerAdapter) ListMailbox(ctx context.Context) ([]models.MailboxMessage, error) {
	var messages []models.MailboxMessage

	resp, err := h.doAuthed(ctx, func(r *resty.Request) (*resty.Response, error) {
		return r.SetResult(&messages).Get("/api/mailbox")
	})
	if err != nil {
		return nil, fmt.Errorf("list mailbox request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return messages, nil
}

// postJSON sends an unauthenticated JSON POST and decodes a 2xx answer into
// result when it is not nil.
func (h *httpServerAdapter) postJSON(ctx context.Context, path string, body, result any) error {
	r := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if result != nil {
		r.SetResult(result)
	}

	resp, err := r.Post(path)
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

// postAuthed is postJSON with the bearer token and one refresh on 401.
func (h *httpServerAdapter) postAuthed(ctx context.Context, path string, body, result any) error {
	resp, err := h.doAuthed(ctx, func(r *resty.Request) (*resty.Response, error) {
		r.SetHeader("Content-Type", "application/json")
		if body != nil {
			r.SetBody(body)
		}
		if result != nil {
			r.SetResult(result)
		}
		return r.Post(path)
	})
	if err != nil {
		return err
	}
	return mapHTTPError(resp)
}

// doAuthed runs send with the current access token. When the server answers
// 401 and a refresh token is stored, the pair is refreshed once and send is
// repeated with the new access token.
func (h *httpServerAdapter) doAuthed(ctx context.Context, send func(r *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if h.Tokens().AccessToken == "" {
		return nil, ErrNotLoggedIn
	}

	resp, err := send(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusUnauthorized {
		return resp, nil
	}

	if _, err = h.Refresh(ctx); err != nil {
		h.logger.Debug().Err(err).Msg("token refresh after 401 failed")
		return resp, nil
	}

	return send(h.authedRequest(ctx))
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(h.Tokens().AccessToken)
}
