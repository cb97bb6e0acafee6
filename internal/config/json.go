package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Durations
// are accepted both as Go duration strings ("15m") and as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version               string   `json:"version"`
		MinClientVersion      string   `json:"min_client_version"`
		HashKey               string   `json:"hash_key"`
		IngestKey             string   `json:"ingest_key"`
		SupportedEmailDomains []string `json:"supported_email_domains"`
	} `json:"app,omitempty"`

	Auth struct {
		TokenSignKey            string   `json:"token_sign_key"`
		TokenIssuer             string   `json:"token_issuer"`
		AccessTokenDuration     Duration `json:"access_token_duration"`
		RefreshTokenDuration    Duration `json:"refresh_token_duration"`
		RememberMeDuration      Duration `json:"remember_me_duration"`
		RefreshReuseWindow      Duration `json:"refresh_reuse_window"`
		EphemeralTTL            Duration `json:"ephemeral_ttl"`
		EphemeralCacheSize      int      `json:"ephemeral_cache_size"`
		FakeCredentialTTL       Duration `json:"fake_credential_ttl"`
		FakeCredentialCacheSize int      `json:"fake_credential_cache_size"`
		LockoutThreshold        int      `json:"lockout_threshold"`
		LockoutDuration         Duration `json:"lockout_duration"`
		KDF                     struct {
			Iterations  uint32 `json:"iterations"`
			MemoryKiB   uint32 `json:"memory_kib"`
			Parallelism uint8  `json:"parallelism"`
		} `json:"kdf,omitempty"`
		RateLimitRPS   float64 `json:"rate_limit_rps"`
		RateLimitBurst int     `json:"rate_limit_burst"`
	} `json:"auth,omitempty"`

	Vault struct {
		RetentionPolicy string `json:"retention_policy"`
		MaxBlobSize     int64  `json:"max_blob_size"`
	} `json:"vault,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Local struct {
			Path string `json:"path"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		TokenSweepInterval Duration `json:"token_sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:               jsonCfg.App.Version,
			MinClientVersion:      jsonCfg.App.MinClientVersion,
			HashKey:               jsonCfg.App.HashKey,
			IngestKey:             jsonCfg.App.IngestKey,
			SupportedEmailDomains: jsonCfg.App.SupportedEmailDomains,
		},
		Auth: Auth{
			TokenSignKey:            jsonCfg.Auth.TokenSignKey,
			TokenIssuer:             jsonCfg.Auth.TokenIssuer,
			AccessTokenDuration:     time.Duration(jsonCfg.Auth.AccessTokenDuration),
			RefreshTokenDuration:    time.Duration(jsonCfg.Auth.RefreshTokenDuration),
			RememberMeDuration:      time.Duration(jsonCfg.Auth.RememberMeDuration),
			RefreshReuseWindow:      time.Duration(jsonCfg.Auth.RefreshReuseWindow),
			EphemeralTTL:            time.Duration(jsonCfg.Auth.EphemeralTTL),
			EphemeralCacheSize:      jsonCfg.Auth.EphemeralCacheSize,
			FakeCredentialTTL:       time.Duration(jsonCfg.Auth.FakeCredentialTTL),
			FakeCredentialCacheSize: jsonCfg.Auth.FakeCredentialCacheSize,
			LockoutThreshold:        jsonCfg.Auth.LockoutThreshold,
			LockoutDuration:         time.Duration(jsonCfg.Auth.LockoutDuration),
			KDF: KDF{
				Iterations:  jsonCfg.Auth.KDF.Iterations,
				MemoryKiB:   jsonCfg.Auth.KDF.MemoryKiB,
				Parallelism: jsonCfg.Auth.KDF.Parallelism,
			},
			RateLimitRPS:   jsonCfg.Auth.RateLimitRPS,
			RateLimitBurst: jsonCfg.Auth.RateLimitBurst,
		},
		Vault: Vault{
			RetentionPolicy: jsonCfg.Vault.RetentionPolicy,
			MaxBlobSize:     jsonCfg.Vault.MaxBlobSize,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Local: Local{Path: jsonCfg.Storage.Local.Path},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			TokenSweepInterval: time.Duration(jsonCfg.Workers.TokenSweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
