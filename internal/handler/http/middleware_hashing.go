package http

import (
	"crypto/hmac"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const ingestKeyHeader = "X-Ingest-Key"

// ingestKeyCheck guards the mail ingestion path. The presented key and the
// configured one are both run through the keyed hasher and the digests are
// compared in constant time. An empty configured key disables ingestion.
func (h *Handler) ingestKeyCheck(next http.Handler) http.Handler {
	expected := []byte(nil)
	if h.ingestKey != "" {
		expected = h.hasher.Sum([]byte(h.ingestKey))
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		presented := r.Header.Get(ingestKeyHeader)

		if expected == nil || presented == "" || !hmac.Equal(h.hasher.Sum([]byte(presented)), expected) {
			logger.FromRequest(r).Err(ErrInvalidIngestKey).Str("path", r.URL.Path).Send()
			http.Error(w, app.MsgInvalidIngestKey, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
