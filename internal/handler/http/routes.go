package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Every request gets a trace id, an access log line
// and transparent gzip; unauthenticated endpoints are rate limited per
// client address.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, h.withGZip)

	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/status", h.status)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)

		r.Post("/api/accounts/register", h.register)

		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/validate", h.validateLogin)
		r.Post("/api/auth/validate-2fa", h.validateTwoFactor)
		r.Post("/api/auth/validate-recovery-code", h.validateRecoveryCode)
		r.Post("/api/auth/refresh", h.refresh)
		r.Post("/api/auth/revoke", h.revoke)

		r.With(h.ingestKeyCheck).Post("/api/mailbox/deliver", h.deliverMessage)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/vault", h.getVault)
		r.Post("/api/vault", h.pushVault)
		r.Post("/api/vault/change-password/initiate", h.initiateChangePassword)
		r.Post("/api/vault/change-password", h.changePassword)

		r.Post("/api/account/2fa/setup", h.setupTwoFactor)
		r.Post("/api/account/2fa/confirm", h.confirmTwoFactor)
		r.Get("/api/account/events", h.authEvents)

		r.Post("/api/keys", h.addKey)
		r.Get("/api/keys/primary", h.getPrimaryKey)

		r.Get("/api/mailbox", h.listMailbox)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
