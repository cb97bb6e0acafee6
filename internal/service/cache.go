package service

import (
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// srpSession is the server half of a handshake between initiate and
// validate.
type srpSession struct {
	server    *srp.Server
	accountID int64
	username  string
	// fake marks a handshake started for an unknown username. It can never
	// succeed but runs through the same verification code.
	fake bool
}

// sessionCache keeps pending handshakes for a bounded time. Entries are
// consumed exactly once.
type sessionCache struct {
	lru *expirable.LRU[string, srpSession]
}

func newSessionCache(size int, ttl time.Duration) *sessionCache {
	return &sessionCache{lru: expirable.NewLRU[string, srpSession](size, nil, ttl)}
}

func (c *sessionCache) put(key string, s srpSession) {
	c.lru.Add(key, s)
}

// take returns and removes the entry under key. Of two concurrent callers
// only the one whose Remove found the entry wins.
func (c *sessionCache) take(key string) (srpSession, bool) {
	s, ok := c.lru.Get(key)
	if !ok {
		return srpSession{}, false
	}
	if !c.lru.Remove(key) {
		return srpSession{}, false
	}
	return s, true
}

func loginKey(deviceID, username string) string {
	return "login|" + deviceID + "|" + username
}

func changePasswordKey(accountID int64, deviceID string) string {
	return "change-password|" + strconv.FormatInt(accountID, 10) + "|" + deviceID
}

// fakeCredential is what an unknown username is answered with.
type fakeCredential struct {
	salt     []byte
	verifier []byte
}

// fakeCredentials derives stable per-username salts and verifiers from the
// server hash key, so that repeated probes of one unknown username receive
// the same salt, even across restarts, and cannot be told apart from a
// registered account by the salt alone.
type fakeCredentials struct {
	hasher *utils.Hasher
	group  *srp.Group
	params models.KDFParams
	cache  *expirable.LRU[string, fakeCredential]
}

func newFakeCredentials(hasher *utils.Hasher, group *srp.Group, params models.KDFParams, size int, ttl time.Duration) *fakeCredentials {
	return &fakeCredentials{
		hasher: hasher,
		group:  group,
		params: params,
		cache:  expirable.NewLRU[string, fakeCredential](size, nil, ttl),
	}
}

func (f *fakeCredentials) get(username string) fakeCredential {
	if c, ok := f.cache.Get(username); ok {
		return c
	}

	salt := f.hasher.Sum([]byte("fake-salt|"), []byte(username))[:crypto.SaltSize]
	x := f.hasher.Sum([]byte("fake-x|"), []byte(username))

	c := fakeCredential{salt: salt, verifier: f.group.Verifier(x)}
	f.cache.Add(username, c)
	return c
}

// pendingTwoFactor is a login that passed the password proof and waits for
// a second factor.
type pendingTwoFactor struct {
	accountID  int64
	username   string
	deviceID   string
	rememberMe bool
}
