package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllGroups(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("APP_MIN_CLIENT_VERSION", "1.0.0")
	t.Setenv("APP_HASH_KEY", "hash")
	t.Setenv("APP_INGEST_KEY", "ingest")
	t.Setenv("APP_SUPPORTED_EMAIL_DOMAINS", "mail.example.com,relay.example.org")
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "sign")
	t.Setenv("AUTH_REFRESH_REUSE_WINDOW", "45s")
	t.Setenv("AUTH_LOCKOUT_THRESHOLD", "7")
	t.Setenv("AUTH_KDF_MEMORY_KIB", "32768")
	t.Setenv("AUTH_RATE_LIMIT_RPS", "2.5")
	t.Setenv("VAULT_RETENTION_POLICY", "latest:3")
	t.Setenv("VAULT_MAX_BLOB_SIZE", "1024")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/vault")
	t.Setenv("STORAGE_LOCAL_PATH", "/tmp/cache.db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8443")
	t.Setenv("SERVER_GRPC_ADDRESS", "0.0.0.0:9443")
	t.Setenv("ADAPTER_ADDRESS", "https://vault.example.com")
	t.Setenv("WORKERS_TOKEN_SWEEP_INTERVAL", "10m")
	t.Setenv("CONFIG", "/etc/vault.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "1.0.0", cfg.App.MinClientVersion)
	assert.Equal(t, "hash", cfg.App.HashKey)
	assert.Equal(t, "ingest", cfg.App.IngestKey)
	assert.Equal(t, []string{"mail.example.com", "relay.example.org"}, cfg.App.SupportedEmailDomains)
	assert.Equal(t, "sign", cfg.Auth.TokenSignKey)
	assert.Equal(t, 45*time.Second, cfg.Auth.RefreshReuseWindow)
	assert.Equal(t, 7, cfg.Auth.LockoutThreshold)
	assert.Equal(t, uint32(32768), cfg.Auth.KDF.MemoryKiB)
	assert.InDelta(t, 2.5, cfg.Auth.RateLimitRPS, 1e-9)
	assert.Equal(t, "latest:3", cfg.Vault.RetentionPolicy)
	assert.Equal(t, int64(1024), cfg.Vault.MaxBlobSize)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/cache.db", cfg.Storage.Local.Path)
	assert.Equal(t, "0.0.0.0:8443", cfg.Server.HTTPAddress)
	assert.Equal(t, "0.0.0.0:9443", cfg.Server.GRPCAddress)
	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Minute, cfg.Workers.TokenSweepInterval)
	assert.Equal(t, "/etc/vault.json", cfg.JSONFilePath)
}

func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Zero(t, cfg.Auth.LockoutThreshold)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	t.Setenv("AUTH_LOCKOUT_THRESHOLD", "many")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_SecretFiles(t *testing.T) {
	dir := t.TempDir()
	signKey := filepath.Join(dir, "sign_key")
	require.NoError(t, os.WriteFile(signKey, []byte("from-file\n"), 0o600))

	t.Setenv("AUTH_TOKEN_SIGN_KEY_FILE", signKey)
	t.Setenv("APP_HASH_KEY", "from-env")
	t.Setenv("APP_HASH_KEY_FILE", filepath.Join(dir, "ignored"))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "from-file", cfg.Auth.TokenSignKey)
	assert.Equal(t, "from-env", cfg.App.HashKey, "an explicit variable wins over its file")
}

func TestParseEnv_MissingSecretFile(t *testing.T) {
	t.Setenv("APP_INGEST_KEY_FILE", filepath.Join(t.TempDir(), "absent"))

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_INGEST_KEY_FILE")
}
