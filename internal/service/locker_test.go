package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestAccountLocker_SerializesOneAccount(t *testing.T) {
	locker := newAccountLocker()

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mu      sync.Mutex
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locker.lock(1)
			defer unlock()

			mu.Lock()
			inside++
			maxSeen = max(maxSeen, inside)
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inside--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
	assert.Empty(t, locker.locks, "released entries are dropped")
}

func TestAccountLocker_AccountsAreIndependent(t *testing.T) {
	locker := newAccountLocker()

	unlock := locker.lock(1)
	defer unlock()

	done := make(chan struct{})
	go func() {
		locker.lock(2)()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock of another account blocked")
	}
}

func TestSessionCache_TakeIsSingleUse(t *testing.T) {
	cache := newSessionCache(8, time.Minute)
	cache.put("k", srpSession{accountID: 5})

	s, ok := cache.take("k")
	assert.True(t, ok)
	assert.Equal(t, int64(5), s.accountID)

	_, ok = cache.take("k")
	assert.False(t, ok)
}

func TestSessionCache_Expires(t *testing.T) {
	cache := newSessionCache(8, 10*time.Millisecond)
	cache.put("k", srpSession{accountID: 5})

	time.Sleep(30 * time.Millisecond)

	_, ok := cache.take("k")
	assert.False(t, ok)
}

func TestFakeCredentials_DependOnHashKey(t *testing.T) {
	params := models.KDFParams{Iterations: 3, MemoryKiB: 65536, Parallelism: 4}
	a := newFakeCredentials(utils.NewHasher("key-a"), srp.RFC5054Group2048, params, 8, time.Minute)
	b := newFakeCredentials(utils.NewHasher("key-b"), srp.RFC5054Group2048, params, 8, time.Minute)

	assert.Equal(t, a.get("ghost").salt, a.get("ghost").salt)
	assert.NotEqual(t, a.get("ghost").salt, b.get("ghost").salt)
	assert.Len(t, a.get("ghost").verifier, srp.RFC5054Group2048.Size())
}

func TestCacheKeys_DoNotCollide(t *testing.T) {
	assert.NotEqual(t, loginKey("dev", "alice"), loginKey("alice", "dev"))
	assert.NotEqual(t, loginKey("1", "dev"), changePasswordKey(1, "dev"))
}
