package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// deliverMessage is the mail ingestion endpoint. It sits behind
// ingestKeyCheck, not behind user authentication.
func (h *Handler) deliverMessage(w http.ResponseWriter, r *http.Request) {
	var req models.DeliverMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	delivered, err := h.services.MailboxService.Deliver(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "message delivery failed")
		return
	}

	logger.FromRequest(r).Info().
		Int64("message_id", delivered.MessageID).
		Int64("key_id", delivered.KeyID).
		Msg("message delivered")
	writeJSON(w, r, delivered, http.StatusCreated)
}

func (h *Handler) listMailbox(w http.ResponseWriter, r *http.Request) {
	s, ok := session(r)
	if !ok {
		http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	messages, err := h.services.MailboxService.List(r.Context(), s.AccountID)
	if err != nil {
		writeError(w, r, err, "listing mailbox failed")
		return
	}
	if messages == nil {
		messages = []models.MailboxMessage{}
	}

	writeJSON(w, r, messages, http.StatusOK)
}
