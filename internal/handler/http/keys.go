package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) addKey(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.AddKeyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	key, err := h.services.KeyService.AddKey(r.Context(), s.AccountID, req)
	if err != nil {
		writeError(w, r, err, "adding key failed")
		return
	}

	writeJSON(w, r, key, http.StatusCreated)
}

func (h *Handler) getPrimaryKey(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	key, err := h.services.KeyService.GetPrimary(r.Context(), s.AccountID)
	if err != nil {
		writeError(w, r, err, "primary key lookup failed")
		return
	}

	writeJSON(w, r, key, http.StatusOK)
}
