package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		wantErr bool
	}{
		{name: "version only", cfg: config.App{Version: "1.0.0"}},
		{name: "with minimum client version", cfg: config.App{Version: "1.4.0", MinClientVersion: "1.2.0"}},
		{name: "no version", cfg: config.App{}, wantErr: true},
		{name: "minimum is not semver", cfg: config.App{Version: "1.0.0", MinClientVersion: "latest"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.cfg.Version, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	_, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ─────────────────────────────────────────────
// Status
// ─────────────────────────────────────────────

func TestAppInfoService_Status(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "2.0.0", MinClientVersion: "1.2.0"}, logger.Nop())
	require.NoError(t, err)

	tests := []struct {
		client     string
		wantUpdate bool
	}{
		{client: "1.2.0", wantUpdate: false},
		{client: "1.10.3", wantUpdate: false},
		{client: "1.1.9", wantUpdate: true},
		{client: "1.2.0-beta.1", wantUpdate: true},
		{client: "", wantUpdate: true},
		{client: "not-a-version", wantUpdate: true},
	}

	for _, tt := range tests {
		t.Run(tt.client, func(t *testing.T) {
			status := svc.Status(context.Background(), tt.client)

			assert.Equal(t, "2.0.0", status.ServerVersion)
			assert.Equal(t, "1.2.0", status.MinimumClientVersion)
			assert.Equal(t, tt.wantUpdate, status.UpdateRequired)
		})
	}
}

func TestAppInfoService_Status_NoMinimum(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "2.0.0"}, logger.Nop())
	require.NoError(t, err)

	status := svc.Status(context.Background(), "0.0.1")

	assert.False(t, status.UpdateRequired)
	assert.Empty(t, status.MinimumClientVersion)
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	storages := store.NewMemoryStorages(store.NewMemoryStore())

	cfg := &config.StructuredConfig{
		App:   config.App{Version: "1.0.0", HashKey: "secret"},
		Auth:  testAuthConfig(),
		Vault: config.Vault{RetentionPolicy: "latest:10,daily:7", MaxBlobSize: 1 << 20},
	}

	services, err := NewServices(storages, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.VaultService)
	assert.NotNil(t, services.MailboxService)
}

func TestNewServices_BadRetentionPolicy(t *testing.T) {
	storages := store.NewMemoryStorages(store.NewMemoryStore())

	cfg := &config.StructuredConfig{
		App:   config.App{Version: "1.0.0"},
		Auth:  testAuthConfig(),
		Vault: config.Vault{RetentionPolicy: "hourly:3"},
	}

	_, err := NewServices(storages, cfg, logger.Nop())

	assert.Error(t, err)
}
