// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

// spyVaultService считает вызовы Pull; остальные методы не используются джобом.
type spyVaultService struct {
	calls atomic.Int64
	err   error

	mu       sync.Mutex
	username string
}

func (s *spyVaultService) Pull(_ context.Context, username string, _ crypto.VaultKeys) (models.VaultDocument, error) {
	s.calls.Add(1)
	s.mu.Lock()
	s.username = username
	s.mu.Unlock()
	return models.VaultDocument{}, s.err
}

func (s *spyVaultService) Push(context.Context, string, models.VaultDocument, crypto.VaultKeys) (models.PushVaultResponse, error) {
	return models.PushVaultResponse{}, nil
}

func (s *spyVaultService) Update(context.Context, string, crypto.VaultKeys, func(*models.VaultDocument)) (models.PushVaultResponse, error) {
	return models.PushVaultResponse{}, nil
}

func (s *spyVaultService) ChangePassword(context.Context, string, string, string) (crypto.VaultKeys, error) {
	return crypto.VaultKeys{}, nil
}

func (s *spyVaultService) Cached(context.Context, string) (models.CachedVault, error) {
	return models.CachedVault{}, nil
}

func (s *spyVaultService) lastUsername() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username
}

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestClientSyncJob_Start_PullsOnTicker(t *testing.T) {
	spy := &spyVaultService{}
	job := NewClientSyncJob(spy, nil)

	job.Start(context.Background(), "alice", crypto.VaultKeys{}, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "Pull должен быть вызван несколько раз, вызвано: %d", got)
	assert.Equal(t, "alice", spy.lastUsername())
}

func TestClientSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyVaultService{}
	job := NewClientSyncJob(spy, nil)

	job.Start(context.Background(), "alice", crypto.VaultKeys{}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestClientSyncJob_Stop_IsIdempotent(t *testing.T) {
	job := NewClientSyncJob(&spyVaultService{}, nil)

	assert.NotPanics(t, func() { job.Stop() })

	job.Start(context.Background(), "alice", crypto.VaultKeys{}, 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestClientSyncJob_Start_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		spy := &spyVaultService{}
		job := NewClientSyncJob(spy, nil)

		job.Start(context.Background(), "alice", crypto.VaultKeys{}, interval)
		time.Sleep(20 * time.Millisecond)
		job.Stop()

		assert.Zero(t, spy.calls.Load(), "interval %s falls back to %s", interval, defaultSyncInterval)
	}
}

func TestClientSyncJob_Restart_ReplacesUser(t *testing.T) {
	spy := &spyVaultService{}
	job := NewClientSyncJob(spy, nil)
	ctx := context.Background()

	job.Start(ctx, "alice", crypto.VaultKeys{}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	require.Positive(t, spy.calls.Load())

	// второй Start останавливает первую горутину
	job.Start(ctx, "bob", crypto.VaultKeys{}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Equal(t, "bob", spy.lastUsername())
}

func TestClientSyncJob_ContextCancel_StopsJob(t *testing.T) {
	job := NewClientSyncJob(&spyVaultService{}, nil)
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, "alice", crypto.VaultKeys{}, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop завис после отмены контекста")
	}
}

func TestClientSyncJob_ErrorsAreReportedAndJobContinues(t *testing.T) {
	spy := &spyVaultService{err: ErrTokenIsExpiredOrInvalid}

	var reported atomic.Int64
	job := NewClientSyncJob(spy, func(err error) {
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		reported.Add(1)
	})

	job.Start(context.Background(), "alice", crypto.VaultKeys{}, 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.Equal(t, spy.calls.Load(), reported.Load())
}
