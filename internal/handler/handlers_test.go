package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Handlers only store the services pointer at construction time, so nil is
// safe here.
func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name     string
		server   config.Server
		wantErr  bool
		wantGRPC bool
	}{
		{name: "http and grpc", server: config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, wantGRPC: true},
		{name: "http only", server: config.Server{HTTPAddress: ":8080"}},
		{name: "grpc only", server: config.Server{GRPCAddress: ":9090"}, wantErr: true},
		{name: "nothing", server: config.Server{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.StructuredConfig{Server: tt.server}

			h, err := NewHandlers(nil, cfg, logger.Nop())

			if tt.wantErr {
				assert.ErrorIs(t, err, errNoHandlersAreCreated)
				assert.Nil(t, h)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, h.HTTP)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}
