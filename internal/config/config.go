// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging environment variables, command-line flags and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds versioning, shared secrets and account-wide metadata.
	App App `envPrefix:"APP_"`

	// Auth holds SRP, lockout and token lifecycle settings.
	Auth Auth `envPrefix:"AUTH_"`

	// Vault holds snapshot size and retention settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Storage holds the server database and the client local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen addresses and timeouts of the inbound transports.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server address.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background worker intervals.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the server version reported by the status endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// MinClientVersion is the oldest client version that does not need to
	// update. Empty disables the check.
	// Env: APP_MIN_CLIENT_VERSION
	MinClientVersion string `env:"MIN_CLIENT_VERSION"`

	// HashKey is the HMAC key used for device fingerprints and for deriving
	// fake SRP credentials of unknown usernames. Must be kept confidential
	// and stable across restarts.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// IngestKey authenticates the mail ingestion path.
	// Empty disables the deliver endpoint.
	// Env: APP_INGEST_KEY
	IngestKey string `env:"INGEST_KEY"`

	// SupportedEmailDomains are returned with every vault read.
	// Env: APP_SUPPORTED_EMAIL_DOMAINS (comma separated)
	SupportedEmailDomains []string `env:"SUPPORTED_EMAIL_DOMAINS" envSeparator:","`
}

// Auth holds authentication settings.
type Auth struct {
	// TokenSignKey is the HS256 secret for access tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every access token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Env: AUTH_ACCESS_TOKEN_DURATION
	AccessTokenDuration time.Duration `env:"ACCESS_TOKEN_DURATION"`

	// Env: AUTH_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// RememberMeDuration replaces RefreshTokenDuration when the client asks
	// to be remembered.
	// Env: AUTH_REMEMBER_ME_DURATION
	RememberMeDuration time.Duration `env:"REMEMBER_ME_DURATION"`

	// RefreshReuseWindow is how long a rotated refresh token still yields
	// its successor instead of failing.
	// Env: AUTH_REFRESH_REUSE_WINDOW
	RefreshReuseWindow time.Duration `env:"REFRESH_REUSE_WINDOW"`

	// EphemeralTTL bounds the time between initiating and validating an
	// SRP handshake.
	// Env: AUTH_EPHEMERAL_TTL
	EphemeralTTL time.Duration `env:"EPHEMERAL_TTL"`

	// Env: AUTH_EPHEMERAL_CACHE_SIZE
	EphemeralCacheSize int `env:"EPHEMERAL_CACHE_SIZE"`

	// Env: AUTH_FAKE_CREDENTIAL_TTL
	FakeCredentialTTL time.Duration `env:"FAKE_CREDENTIAL_TTL"`

	// Env: AUTH_FAKE_CREDENTIAL_CACHE_SIZE
	FakeCredentialCacheSize int `env:"FAKE_CREDENTIAL_CACHE_SIZE"`

	// LockoutThreshold is the number of consecutive failed proofs that locks
	// an account for LockoutDuration.
	// Env: AUTH_LOCKOUT_THRESHOLD
	LockoutThreshold int `env:"LOCKOUT_THRESHOLD"`

	// Env: AUTH_LOCKOUT_DURATION
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION"`

	// KDF holds the Argon2id parameters advertised for unknown usernames so
	// that their fake responses look like a default registration.
	KDF KDF `envPrefix:"KDF_"`

	// RateLimitRPS and RateLimitBurst limit unauthenticated auth requests
	// per client IP.
	// Env: AUTH_RATE_LIMIT_RPS, AUTH_RATE_LIMIT_BURST
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST"`
}

// KDF holds Argon2id cost parameters.
type KDF struct {
	Iterations  uint32 `env:"ITERATIONS"`
	MemoryKiB   uint32 `env:"MEMORY_KIB"`
	Parallelism uint8  `env:"PARALLELISM"`
}

// Vault holds snapshot settings.
type Vault struct {
	// RetentionPolicy is a comma separated rule list, for example
	// "latest:10,daily:7,weekly:4,monthly:6,versions:3,meaningful:5".
	// Env: VAULT_RETENTION_POLICY
	RetentionPolicy string `env:"RETENTION_POLICY"`

	// MaxBlobSize is the largest accepted encrypted blob in bytes.
	// Env: VAULT_MAX_BLOB_SIZE
	MaxBlobSize int64 `env:"MAX_BLOB_SIZE"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// DB holds the server database settings.
	DB DB `envPrefix:"DB_"`

	// Local holds the client local cache settings.
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the PostgreSQL connection string. Empty selects the in-memory
	// store, which is meant for development and tests.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Local holds the client SQLite cache location.
type Local struct {
	// Path is the SQLite database file. ":memory:" keeps the cache in memory.
	// Env: STORAGE_LOCAL_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the HTTP listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the gRPC health listen address in "host:port" format.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the client's outbound transport settings.
type Adapter struct {
	// HTTPAddress is the server base URL or "host:port".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the default timeout of outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// TokenSweepInterval is how often expired refresh tokens are deleted.
	// Env: WORKERS_TOKEN_SWEEP_INTERVAL
	TokenSweepInterval time.Duration `env:"TOKEN_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, defaults and validates the server
// configuration. Sources in increasing priority:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, cfg.validate()
}
