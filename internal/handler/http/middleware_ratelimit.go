package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

const (
	rateLimiterSize = 10_000
	rateLimiterTTL  = 10 * time.Minute
)

// ipRateLimiter keeps one token bucket per client address. Idle buckets
// expire, so the memory held is bounded by rateLimiterSize.
type ipRateLimiter struct {
	limit rate.Limit
	burst int

	buckets *expirable.LRU[string, *rate.Limiter]
}

// newIPRateLimiter returns nil when rps is not positive, which disables
// limiting.
func newIPRateLimiter(rps float64, burst int) *ipRateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}

	return &ipRateLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		buckets: expirable.NewLRU[string, *rate.Limiter](rateLimiterSize, nil, rateLimiterTTL),
	}
}

// allow reports whether one more request from ip fits the bucket. Two
// first requests racing for the same ip may each create a bucket; the later
// Add wins, which at worst grants one extra request.
func (l *ipRateLimiter) allow(ip string) bool {
	limiter, ok := l.buckets.Get(ip)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.buckets.Add(ip, limiter)
	}
	return limiter.Allow()
}

// withRateLimit answers 429 once a client address exhausts its bucket.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.limiter == nil {
			next.ServeHTTP(w, r)
			return
		}

		ip := utils.ClientIP(r)
		if !h.limiter.allow(ip) {
			logger.FromRequest(r).Warn().Str("ip", ip).Str("path", r.URL.Path).Msg("rate limit exceeded")
			w.Header().Set("Retry-After", "1")
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
