package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// Hasher computes keyed HMAC-SHA256 digests with pooled hash instances.
// It is safe for concurrent use.
type Hasher struct {
	pool sync.Pool
}

// NewHasher returns a Hasher keyed with hashKey.
func NewHasher(hashKey string) *Hasher {
	key := []byte(hashKey)
	return &Hasher{
		pool: sync.Pool{
			New: func() any {
				return hmac.New(sha256.New, key)
			},
		},
	}
}

// Sum returns the raw HMAC-SHA256 digest of the concatenated parts.
func (h *Hasher) Sum(parts ...[]byte) []byte {
	mac := h.pool.Get().(hash.Hash)
	mac.Reset()

	for _, p := range parts {
		mac.Write(p)
	}
	sum := mac.Sum(nil)

	mac.Reset()
	h.pool.Put(mac)

	return sum
}

// HexSum returns the hex-encoded digest of the concatenated strings.
func (h *Hasher) HexSum(parts ...string) string {
	raw := make([][]byte, len(parts))
	for i, p := range parts {
		raw[i] = []byte(p)
	}
	return hex.EncodeToString(h.Sum(raw...))
}

// DeviceID fingerprints a client by its user agent and IP address.
// The separator keeps ("ab", "c") and ("a", "bc") apart.
func (h *Hasher) DeviceID(userAgent, ipAddress string) string {
	return h.HexSum(userAgent, "|", ipAddress)
}

// SHA256Hex returns the unkeyed SHA-256 of data, hex-encoded. Used for
// values that are already high-entropy, such as recovery codes.
func SHA256Hex(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}
