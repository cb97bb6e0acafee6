package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/models"
)

func newMemoryAccount(t *testing.T, m *MemoryStore, username string) models.Account {
	t.Helper()

	now := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)
	account, err := m.CreateAccount(context.Background(),
		models.Account{Username: username, CreatedAt: now, PasswordChangedAt: now},
		models.VaultSnapshot{Revision: 0, Version: "1.0.0", CreatedAt: now},
	)
	require.NoError(t, err)
	return account
}

func TestMemoryStore_Accounts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	alice := newMemoryAccount(t, m, "alice")
	_, err := m.CreateAccount(ctx, models.Account{Username: "alice"}, models.VaultSnapshot{})
	require.ErrorIs(t, err, ErrUsernameTaken)

	found, err := m.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.AccountID, found.AccountID)

	_, err = m.FindByID(ctx, 999)
	require.ErrorIs(t, err, ErrAccountNotFound)

	latest, err := m.GetLatest(ctx, alice.AccountID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest.Revision)
}

func TestMemoryStore_RegisterFailedAttempt_LocksAtThreshold(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	alice := newMemoryAccount(t, m, "alice")
	lockUntil := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)

	for i := 1; i < 3; i++ {
		a, err := m.RegisterFailedAttempt(ctx, alice.AccountID, 3, lockUntil)
		require.NoError(t, err)
		assert.Equal(t, i, a.FailedAttempts)
		assert.Nil(t, a.LockedUntil)
	}

	a, err := m.RegisterFailedAttempt(ctx, alice.AccountID, 3, lockUntil)
	require.NoError(t, err)
	assert.Zero(t, a.FailedAttempts)
	require.NotNil(t, a.LockedUntil)
	assert.Equal(t, lockUntil, *a.LockedUntil)

	require.NoError(t, m.ResetFailedAttempts(ctx, alice.AccountID))
	a, err = m.FindByID(ctx, alice.AccountID)
	require.NoError(t, err)
	assert.Nil(t, a.LockedUntil)
}

func TestMemoryStore_AppendSnapshot_RevisionsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	alice := newMemoryAccount(t, m, "alice")

	var wg sync.WaitGroup
	results := make(chan error, 10)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.AppendSnapshot(ctx, models.VaultSnapshot{AccountID: alice.AccountID, Revision: 1})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	for err := range results {
		if err == nil {
			accepted++
			continue
		}
		require.ErrorIs(t, err, ErrRevisionConflict)
	}
	assert.Equal(t, 1, accepted)

	history, err := m.ListHistory(ctx, alice.AccountID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Less(t, history[0].Revision, history[1].Revision)
}

func TestMemoryStore_AppendPasswordChange(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	alice := newMemoryAccount(t, m, "alice")

	changedAt := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	_, err := m.AppendPasswordChange(ctx, models.VaultSnapshot{AccountID: alice.AccountID, Revision: 1, CreatedAt: changedAt})
	require.NoError(t, err)

	a, err := m.FindByID(ctx, alice.AccountID)
	require.NoError(t, err)
	assert.Equal(t, changedAt, a.PasswordChangedAt)
}

func TestMemoryStore_DeleteSnapshots(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	alice := newMemoryAccount(t, m, "alice")

	for r := int64(1); r <= 3; r++ {
		_, err := m.AppendSnapshot(ctx, models.VaultSnapshot{AccountID: alice.AccountID, Revision: r})
		require.NoError(t, err)
	}

	n, err := m.DeleteSnapshots(ctx, alice.AccountID, []int64{0, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	history, err := m.ListHistory(ctx, alice.AccountID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, int64(1), history[0].Revision)
	assert.Equal(t, int64(3), history[1].Revision)
}

func TestMemoryStore_RefreshTokens(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	now := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)

	require.NoError(t, m.ReplaceForDevice(ctx, models.RefreshToken{AccountID: 1, DeviceID: "a", Token: "a1", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, m.ReplaceForDevice(ctx, models.RefreshToken{AccountID: 1, DeviceID: "a", Token: "a2", ExpiresAt: now.Add(time.Hour)}))
	require.NoError(t, m.ReplaceForDevice(ctx, models.RefreshToken{AccountID: 1, DeviceID: "b", Token: "b1", ExpiresAt: now.Add(-time.Minute)}))

	_, err := m.FindByToken(ctx, "a1")
	require.ErrorIs(t, err, ErrRefreshTokenNotFound, "one token per device")

	prev := "a2"
	require.NoError(t, m.Rotate(ctx, "a2", models.RefreshToken{AccountID: 1, DeviceID: "a", Token: "a3", PreviousToken: &prev, CreatedAt: now, ExpiresAt: now.Add(time.Hour)}))
	require.ErrorIs(t, m.Rotate(ctx, "a2", models.RefreshToken{Token: "a4"}), ErrRefreshTokenNotFound)

	successor, err := m.FindByPreviousToken(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, "a3", successor.Token)

	n, err := m.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, m.ReplaceForDevice(ctx, models.RefreshToken{AccountID: 1, DeviceID: "c", Token: "c1", ExpiresAt: now.Add(time.Hour)}))
	n, err = m.DeleteOtherDevices(ctx, 1, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = m.FindByToken(ctx, "a3")
	require.NoError(t, err)
}

func TestMemoryStore_Keys(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	first, err := m.AddKey(ctx, models.EncryptionKey{AccountID: 1, PublicKey: []byte("k1")})
	require.NoError(t, err)
	assert.True(t, first.Primary)

	second, err := m.AddKey(ctx, models.EncryptionKey{AccountID: 1, PublicKey: []byte("k2")})
	require.NoError(t, err)
	assert.False(t, second.Primary)

	require.NoError(t, m.SetPrimary(ctx, 1, second.KeyID))
	primary, err := m.GetPrimary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second.KeyID, primary.KeyID)

	keys, err := m.ListKeys(ctx, 1)
	require.NoError(t, err)
	primaries := 0
	for _, k := range keys {
		if k.Primary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)

	require.ErrorIs(t, m.SetPrimary(ctx, 1, 999), ErrKeyNotFound)
}

func TestMemoryStore_RecoveryCodesAreSingleUse(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	now := time.Now()

	require.NoError(t, m.ReplaceCodes(ctx, 1, []string{"h1", "h2"}))
	require.NoError(t, m.ConsumeCode(ctx, 1, "h1", now))
	require.ErrorIs(t, m.ConsumeCode(ctx, 1, "h1", now), ErrRecoveryCodeNotFound)
	require.ErrorIs(t, m.ConsumeCode(ctx, 2, "h2", now), ErrRecoveryCodeNotFound)
}

func TestMemoryStore_AuditAndMessages(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	base := time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)

	for i := range 3 {
		require.NoError(t, m.Record(ctx, models.AuthEvent{Username: "alice", EventType: models.AuthEventLoginFailed, CreatedAt: base.Add(time.Duration(i) * time.Minute)}))
	}
	require.NoError(t, m.Record(ctx, models.AuthEvent{Username: "bob", EventType: models.AuthEventLoginSucceeded, CreatedAt: base}))

	events, err := m.ListByUsername(ctx, "alice", 2)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.True(t, events[0].CreatedAt.After(events[1].CreatedAt))

	_, err = m.Create(ctx, models.MailboxMessage{AccountID: 1, KeyID: 1})
	require.NoError(t, err)
	messages, err := m.ListByAccount(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, messages, 1)
}
