package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	vault, err := h.services.VaultService.GetVault(r.Context(), s.AccountID)
	if err != nil {
		writeError(w, r, err, "vault read failed")
		return
	}

	writeJSON(w, r, vault, http.StatusOK)
}

// pushVault answers 200 for both Ok and Outdated; the status field tells
// them apart. A write of an older data model version is a 409 whose body
// still carries the push response.
func (h *Handler) pushVault(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.PushVaultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pushed, err := h.services.VaultService.PushVault(r.Context(), s, req)
	if errors.Is(err, service.ErrVersionTooOld) {
		logger.FromRequest(r).Warn().Err(err).Str("version", req.Version).Msg("vault push rejected")
		writeJSON(w, r, pushed, http.StatusConflict)
		return
	}
	if err != nil {
		writeError(w, r, err, "vault push failed")
		return
	}

	logger.FromRequest(r).Debug().
		Str("status", string(pushed.Status)).
		Int64("base_revision", req.BaseRevision).
		Int64("revision", pushed.Revision).
		Msg("vault push handled")
	writeJSON(w, r, pushed, http.StatusOK)
}

// initiateChangePassword starts the handshake that proves the current
// password before a change.
func (h *Handler) initiateChangePassword(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	initiated, err := h.services.AuthService.InitiateChangePassword(r.Context(), s)
	if err != nil {
		writeError(w, r, err, "password change initiation failed")
		return
	}

	writeJSON(w, r, initiated, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.ChangePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	changed, err := h.services.VaultService.ChangePassword(r.Context(), s, req)
	if errors.Is(err, service.ErrVersionTooOld) {
		writeJSON(w, r, changed, http.StatusConflict)
		return
	}
	if err != nil {
		writeError(w, r, err, "password change failed")
		return
	}

	writeJSON(w, r, changed, http.StatusOK)
}
