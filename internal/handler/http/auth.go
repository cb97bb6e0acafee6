package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// login starts an SRP handshake. Unknown usernames get a response of the
// same shape, so this endpoint never reveals whether an account exists.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.InitiateLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	initiated, err := h.services.AuthService.InitiateLogin(r.Context(), req.Username, h.clientInfo(r))
	if err != nil {
		writeError(w, r, err, "login initiation failed")
		return
	}

	writeJSON(w, r, initiated, http.StatusOK)
}

func (h *Handler) validateLogin(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateLoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	validated, err := h.services.AuthService.ValidateLogin(r.Context(), req, h.clientInfo(r))
	if err != nil {
		writeError(w, r, err, "login validation failed")
		return
	}

	logger.FromRequest(r).Debug().Bool("requires_two_factor", validated.RequiresTwoFactor).Msg("login validated")
	writeJSON(w, r, validated, http.StatusOK)
}

func (h *Handler) validateTwoFactor(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateTwoFactorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	validated, err := h.services.AuthService.ValidateTwoFactor(r.Context(), req, h.clientInfo(r))
	if err != nil {
		writeError(w, r, err, "two-factor validation failed")
		return
	}

	writeJSON(w, r, validated, http.StatusOK)
}

func (h *Handler) validateRecoveryCode(w http.ResponseWriter, r *http.Request) {
	var req models.ValidateTwoFactorRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	validated, err := h.services.AuthService.ValidateRecoveryCode(r.Context(), req, h.clientInfo(r))
	if err != nil {
		writeError(w, r, err, "recovery code validation failed")
		return
	}

	writeJSON(w, r, validated, http.StatusOK)
}

// refresh rotates a refresh token. The access token may be expired but must
// carry a valid signature.
func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	tokens, err := h.services.TokenService.Rotate(r.Context(), req.AccessToken, req.RefreshToken)
	if err != nil {
		writeError(w, r, err, "token rotation failed")
		return
	}

	writeJSON(w, r, tokens, http.StatusOK)
}

func (h *Handler) revoke(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.services.TokenService.Revoke(r.Context(), req.RefreshToken); err != nil {
		writeError(w, r, err, "token revocation failed")
		return
	}

	w.WriteHeader(http.StatusOK)
}
