package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

func TestNewIPRateLimiter(t *testing.T) {
	assert.Nil(t, newIPRateLimiter(0, 10), "zero rate disables limiting")
	assert.Nil(t, newIPRateLimiter(-1, 10))

	l := newIPRateLimiter(1, 0)
	require.NotNil(t, l)
	assert.Equal(t, 1, l.burst, "burst is at least one")
}

func TestIPRateLimiter_Allow(t *testing.T) {
	l := newIPRateLimiter(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.allow("198.51.100.1"), "request %d is within the burst", i)
	}
	assert.False(t, l.allow("198.51.100.1"))
	assert.True(t, l.allow("198.51.100.2"))
}

func TestWithRateLimit(t *testing.T) {
	h := &Handler{limiter: newIPRateLimiter(0.001, 1), logger: logger.Nop()}
	handler := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	serve := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
		req.RemoteAddr = "192.0.2.5:40000"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusOK, serve().Code)

	rr := serve()
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "1", rr.Header().Get("Retry-After"))
}

func TestWithRateLimit_Disabled(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withRateLimit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	for range 100 {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/auth/login", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}
