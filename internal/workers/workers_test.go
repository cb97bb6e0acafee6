// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// blockingWorker counts Run calls and returns once ctx is cancelled.
type blockingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Add(1)
	<-ctx.Done()
	w.stopped.Add(1)
}

func TestWorkers_RunAllUntilCancelled(t *testing.T) {
	w1, w2 := &blockingWorker{}, &blockingWorker{}
	ws := &Workers{workers: []Worker{w1, w2}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	select {
	case <-done:
		t.Fatal("Run returned before cancellation")
	default:
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancellation")
	}
	assert.Equal(t, int32(1), w1.stopped.Load())
	assert.Equal(t, int32(1), w2.stopped.Load())
}

func TestWorkers_RunEmpty(t *testing.T) {
	// не должно блокироваться без воркеров
	(&Workers{}).Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenService(ctrl)

	ws := NewWorkers(&service.Services{TokenService: tokens}, config.Workers{TokenSweepInterval: time.Minute}, logger.Nop())

	require.Len(t, ws.workers, 1)
	sweeper, ok := ws.workers[0].(*TokenSweeper)
	require.True(t, ok)
	assert.Equal(t, time.Minute, sweeper.interval)
}

// ─────────────────────────────────────────────
// TokenSweeper
// ─────────────────────────────────────────────

func TestTokenSweeper_SweepsImmediatelyAndOnTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenService(ctrl)

	var calls atomic.Int32
	tokens.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		calls.Add(1)
		return 2, nil
	}).MinTimes(3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewTokenSweeper(tokens, 10*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestTokenSweeper_KeepsRunningAfterErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	tokens := mock.NewMockTokenService(ctrl)

	var calls atomic.Int32
	tokens.EXPECT().SweepExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		if calls.Add(1) == 1 {
			return 0, errors.New("connection reset")
		}
		return 0, nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewTokenSweeper(tokens, 10*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestNewTokenSweeper_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		s := NewTokenSweeper(nil, interval, logger.Nop())
		assert.Equal(t, defaultSweepInterval, s.interval)
	}
}
