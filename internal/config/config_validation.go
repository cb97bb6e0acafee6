// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/MKhiriev/go-pass-vault/internal/retention"
)

// Defaults applied to zero-valued fields after merging.
const (
	DefaultHTTPAddress             = "localhost:8080"
	DefaultGRPCAddress             = "localhost:9090"
	DefaultRequestTimeout          = 30 * time.Second
	DefaultTokenIssuer             = "go-pass-vault"
	DefaultAccessTokenDuration     = 15 * time.Minute
	DefaultRefreshTokenDuration    = 24 * time.Hour
	DefaultRememberMeDuration      = 30 * 24 * time.Hour
	DefaultRefreshReuseWindow      = 30 * time.Second
	DefaultEphemeralTTL            = 5 * time.Minute
	DefaultEphemeralCacheSize      = 10_000
	DefaultFakeCredentialTTL       = 24 * time.Hour
	DefaultFakeCredentialCacheSize = 10_000
	DefaultLockoutThreshold        = 5
	DefaultLockoutDuration         = 15 * time.Minute
	DefaultKDFIterations           = 3
	DefaultKDFMemoryKiB            = 64 * 1024
	DefaultKDFParallelism          = 4
	DefaultRateLimitRPS            = 5
	DefaultRateLimitBurst          = 10
	DefaultRetentionPolicy         = "latest:10,daily:7,weekly:4,monthly:6,versions:3,meaningful:5"
	DefaultMaxBlobSize             = 16 << 20
	DefaultTokenSweepInterval      = time.Hour
	DefaultServerVersion           = "1.0.0"
	DefaultLocalPath               = "vault-cache.db"
)

func (cfg *StructuredConfig) applyDefaults() {
	setIfEmpty(&cfg.App.Version, DefaultServerVersion)

	setIfEmpty(&cfg.Auth.TokenIssuer, DefaultTokenIssuer)
	setIfZero(&cfg.Auth.AccessTokenDuration, DefaultAccessTokenDuration)
	setIfZero(&cfg.Auth.RefreshTokenDuration, DefaultRefreshTokenDuration)
	setIfZero(&cfg.Auth.RememberMeDuration, DefaultRememberMeDuration)
	setIfZero(&cfg.Auth.RefreshReuseWindow, DefaultRefreshReuseWindow)
	setIfZero(&cfg.Auth.EphemeralTTL, DefaultEphemeralTTL)
	setIfZero(&cfg.Auth.EphemeralCacheSize, DefaultEphemeralCacheSize)
	setIfZero(&cfg.Auth.FakeCredentialTTL, DefaultFakeCredentialTTL)
	setIfZero(&cfg.Auth.FakeCredentialCacheSize, DefaultFakeCredentialCacheSize)
	setIfZero(&cfg.Auth.LockoutThreshold, DefaultLockoutThreshold)
	setIfZero(&cfg.Auth.LockoutDuration, DefaultLockoutDuration)
	setIfZero(&cfg.Auth.KDF.Iterations, DefaultKDFIterations)
	setIfZero(&cfg.Auth.KDF.MemoryKiB, DefaultKDFMemoryKiB)
	setIfZero(&cfg.Auth.KDF.Parallelism, DefaultKDFParallelism)
	setIfZero(&cfg.Auth.RateLimitRPS, DefaultRateLimitRPS)
	setIfZero(&cfg.Auth.RateLimitBurst, DefaultRateLimitBurst)

	setIfEmpty(&cfg.Vault.RetentionPolicy, DefaultRetentionPolicy)
	setIfZero(&cfg.Vault.MaxBlobSize, DefaultMaxBlobSize)

	setIfEmpty(&cfg.Storage.Local.Path, DefaultLocalPath)

	setIfEmpty(&cfg.Server.HTTPAddress, DefaultHTTPAddress)
	setIfEmpty(&cfg.Server.GRPCAddress, DefaultGRPCAddress)
	setIfZero(&cfg.Server.RequestTimeout, DefaultRequestTimeout)

	setIfEmpty(&cfg.Adapter.HTTPAddress, DefaultHTTPAddress)
	setIfZero(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)

	setIfZero(&cfg.Workers.TokenSweepInterval, DefaultTokenSweepInterval)
}

// validate checks that the merged and defaulted [StructuredConfig] can be
// used to start the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.HashKey == "" {
		return fmt.Errorf("%w: hash key is required", ErrInvalidAppConfigs)
	}
	if _, err := semver.NewVersion(cfg.App.Version); err != nil {
		return fmt.Errorf("%w: version %q: %w", ErrInvalidAppConfigs, cfg.App.Version, err)
	}
	if cfg.App.MinClientVersion != "" {
		if _, err := semver.NewVersion(cfg.App.MinClientVersion); err != nil {
			return fmt.Errorf("%w: min client version %q: %w", ErrInvalidAppConfigs, cfg.App.MinClientVersion, err)
		}
	}

	if cfg.Auth.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.LockoutThreshold < 1 {
		return fmt.Errorf("%w: lockout threshold must be positive", ErrInvalidAuthConfigs)
	}
	if cfg.Auth.RefreshReuseWindow >= cfg.Auth.RefreshTokenDuration {
		return fmt.Errorf("%w: reuse window must be shorter than refresh token duration", ErrInvalidAuthConfigs)
	}

	if _, err := retention.ParsePolicy(cfg.Vault.RetentionPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVaultConfigs, err)
	}
	if cfg.Vault.MaxBlobSize <= 0 {
		return fmt.Errorf("%w: max blob size must be positive", ErrInvalidVaultConfigs)
	}

	if cfg.Workers.TokenSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.KDF.Iterations == 0 || cfg.KDF.MemoryKiB == 0 || cfg.KDF.Parallelism == 0 {
		return fmt.Errorf("%w: kdf parameters must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func setIfEmpty(field *string, value string) {
	if *field == "" {
		*field = value
	}
}

func setIfZero[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
