package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// newTestLogger creates a logger that writes to the provided buffer.
func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// makeRequest puts a buffer logger into the request context the same way
// withTraceID does.
func makeRequest(method, path string, body string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	l := newTestLogger(buf)
	return req.WithContext(l.WithContext(req.Context()))
}

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		handler      http.HandlerFunc
		wantContains []string
	}{
		{
			name:   "status without explicit WriteHeader",
			method: http.MethodGet,
			path:   "/api/status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("OK"))
			},
			wantContains: []string{`"level":"info"`, `"method":"GET"`, `"path":"/api/status"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name:   "handler that writes nothing",
			method: http.MethodPost,
			path:   "/api/auth/revoke",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			wantContains: []string{`"status":200`, `"size":0`},
		},
		{
			name:   "client error",
			method: http.MethodPost,
			path:   "/api/auth/validate",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "authentication failed", http.StatusUnauthorized)
			},
			wantContains: []string{`"level":"info"`, `"status":401`},
		},
		{
			name:   "server error logs at error level",
			method: http.MethodGet,
			path:   "/api/vault",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantContains: []string{`"level":"error"`, `"status":500`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &Handler{logger: logger.Nop()}

			rr := httptest.NewRecorder()
			h.withLogging(tt.handler).ServeHTTP(rr, makeRequest(tt.method, tt.path, "", &buf))

			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestWithLogging_NeverLogsBodies(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}
	const secret = `{"clientProof":"c2VjcmV0LXByb29m"}`

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"serverProof":"bTI="}`))
	})
	h.withLogging(handler).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodPost, "/api/auth/validate?x=1", secret, &buf))

	assert.NotContains(t, buf.String(), "c2VjcmV0LXByb29m")
	assert.NotContains(t, buf.String(), "bTI=")
	assert.Contains(t, buf.String(), `"path":"/api/auth/validate"`)
}

// ---- X-Forwarded-For определяет IP клиента ----

func TestWithLogging_ClientIP(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: logger.Nop()}

	req := makeRequest(http.MethodGet, "/api/status", "", &buf)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	h.withLogging(http.NotFoundHandler()).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"ip":"203.0.113.7"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
