// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the `env` and
// `envPrefix` tags on [StructuredConfig].
//
// Secrets may also be mounted as files: when a secret variable is unset and
// the same name with a _FILE suffix points to a readable file, its trimmed
// contents are used.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	secrets := []struct {
		name   string
		target *string
	}{
		{"APP_HASH_KEY", &cfg.App.HashKey},
		{"APP_INGEST_KEY", &cfg.App.IngestKey},
		{"AUTH_TOKEN_SIGN_KEY", &cfg.Auth.TokenSignKey},
	}
	for _, secret := range secrets {
		if *secret.target != "" {
			continue
		}
		path, ok := os.LookupEnv(secret.name + "_FILE")
		if !ok || path == "" {
			continue
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s_FILE: %w", secret.name, err)
		}
		*secret.target = strings.TrimSpace(string(raw))
	}

	return nil
}
