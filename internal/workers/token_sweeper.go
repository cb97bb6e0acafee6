// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const defaultSweepInterval = time.Hour

// TokenSweeper periodically removes expired refresh tokens. Expired tokens
// are already rejected on use; sweeping only keeps the table small.
type TokenSweeper struct {
	tokens   ExpiredTokenSweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewTokenSweeper(tokens ExpiredTokenSweeper, interval time.Duration, logger *logger.Logger) *TokenSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &TokenSweeper{tokens: tokens, interval: interval, logger: logger}
}

// Run sweeps once right away and then on every tick until ctx is done. A
// failed sweep is logged and retried on the next tick.
func (s *TokenSweeper) Run(ctx context.Context) {
	s.logger.Info().Dur("interval", s.interval).Msg("token sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info().Msg("token sweeper stopped")
			return
		case <-ticker.C:
		}
	}
}

func (s *TokenSweeper) sweep(ctx context.Context) {
	removed, err := s.tokens.SweepExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*TokenSweeper.sweep").Msg("failed to sweep expired refresh tokens")
		}
		return
	}
	if removed > 0 {
		s.logger.Info().Int64("removed", removed).Msg("expired refresh tokens swept")
	}
}
