package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// defaultMaxBodySize applies when the vault blob limit is not configured.
const defaultMaxBodySize = 8 << 20

// bodyOverhead leaves room for the JSON envelope and base64 expansion of a
// blob of the maximum size.
const bodyOverhead = 64 << 10

type Handler struct {
	services *service.Services

	// hasher derives device fingerprints and compares ingest keys.
	hasher    *utils.Hasher
	ingestKey string

	limiter     *ipRateLimiter
	maxBodySize int64

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	maxBodySize := int64(defaultMaxBodySize)
	if cfg.Vault.MaxBlobSize > 0 {
		// base64 grows the blob by a third
		maxBodySize = cfg.Vault.MaxBlobSize/3*4 + bodyOverhead
	}

	logger.Info().Int64("max_body_size", maxBodySize).Msg("http handler created")
	return &Handler{
		services:    services,
		hasher:      utils.NewHasher(cfg.App.HashKey),
		ingestKey:   cfg.App.IngestKey,
		limiter:     newIPRateLimiter(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst),
		maxBodySize: maxBodySize,
		logger:      logger,
	}
}

// clientInfo identifies the caller of an unauthenticated request. The device
// id is a keyed fingerprint of the user agent and the client address, so a
// client cannot choose it.
func (h *Handler) clientInfo(r *http.Request) models.ClientInfo {
	ip := utils.ClientIP(r)
	userAgent := r.UserAgent()

	return models.ClientInfo{
		IPAddress: ip,
		UserAgent: userAgent,
		DeviceID:  h.hasher.DeviceID(userAgent, ip),
	}
}

// session returns the identity the auth middleware stored in the request.
func session(r *http.Request) (models.Session, bool) {
	ctx := r.Context()

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		return models.Session{}, false
	}
	username, _ := utils.GetUsernameFromContext(ctx)
	deviceID, _ := utils.GetDeviceIDFromContext(ctx)

	return models.Session{AccountID: accountID, Username: username, DeviceID: deviceID}, true
}

// decodeJSON reads the request body into v. A body that hit the size limit
// is answered with 413, anything else unreadable with 400. It reports
// whether the handler may continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Err(err).Msg("request body too large")
			http.Error(w, app.MsgBlobTooLarge, http.StatusRequestEntityTooLarge)
			return false
		}
		log.Err(err).Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

// writeJSON writes v and logs a failed write. Headers are gone by then, so
// there is nothing else to do about it.
func writeJSON(w http.ResponseWriter, r *http.Request, v any, status int) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to write response")
	}
}
