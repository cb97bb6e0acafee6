package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	registered, err := h.services.AccountService.Register(r.Context(), req, h.clientInfo(r))
	if err != nil {
		writeError(w, r, err, "registration failed")
		return
	}

	logger.FromRequest(r).Info().Int64("account_id", registered.AccountID).Msg("account registered")
	writeJSON(w, r, registered, http.StatusCreated)
}

func (h *Handler) setupTwoFactor(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	setup, err := h.services.AccountService.SetupTwoFactor(r.Context(), s.AccountID)
	if err != nil {
		writeError(w, r, err, "two-factor setup failed")
		return
	}

	writeJSON(w, r, setup, http.StatusOK)
}

func (h *Handler) confirmTwoFactor(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.TwoFactorConfirmRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	confirmed, err := h.services.AccountService.ConfirmTwoFactor(r.Context(), s.AccountID, req.Code)
	if err != nil {
		writeError(w, r, err, "two-factor confirmation failed")
		return
	}

	writeJSON(w, r, confirmed, http.StatusOK)
}

// authEvents lists the caller's own audit history, newest first. The
// optional limit query parameter is capped by the service.
func (h *Handler) authEvents(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("limit", raw).Msg("invalid limit")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	events, err := h.services.AuditService.History(r.Context(), s.Username, limit)
	if err != nil {
		writeError(w, r, err, "listing auth events failed")
		return
	}
	if events == nil {
		events = []models.AuthEvent{}
	}

	writeJSON(w, r, events, http.StatusOK)
}
