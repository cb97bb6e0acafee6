package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	clientVersionHeader  = "X-Client-Version"
	clientPlatformHeader = "X-Client-Platform"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

// status compares the caller's version with the configured minimum. It never
// fails: a missing or unparsable version simply requires an update.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	clientVersion := r.Header.Get(clientVersionHeader)

	resp := h.services.AppInfoService.Status(r.Context(), clientVersion)

	logger.FromRequest(r).Debug().
		Str("client_version", clientVersion).
		Str("client_platform", r.Header.Get(clientPlatformHeader)).
		Bool("update_required", resp.UpdateRequired).
		Msg("status checked")
	writeJSON(w, r, resp, http.StatusOK)
}
