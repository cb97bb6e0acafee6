// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package srp implements the SRP-6a password-authenticated key exchange with
// SHA-256 over the RFC 5054 2048-bit group.
//
// The server stores only a salt and a verifier v = g^x mod N. A login is two
// round trips: the server answers the username with the salt and its public
// ephemeral B, then checks the client proof M1 computed over A, B and the
// shared key K, and answers with its own proof M2.
//
// All values cross the package boundary as big-endian byte slices. Hash
// inputs that are group elements are left-padded to the byte length of N.
package srp

import (
	"crypto/sha256"
	"errors"
	"math/big"
)

var (
	// ErrInvalidEphemeral is returned when a peer's public ephemeral is
	// zero modulo N or a derived scrambling parameter is zero.
	ErrInvalidEphemeral = errors.New("srp: invalid public ephemeral")
	// ErrProofMismatch is returned when a peer's proof does not verify.
	ErrProofMismatch = errors.New("srp: proof mismatch")
	// ErrInvalidVerifier is returned for an empty or out-of-range verifier.
	ErrInvalidVerifier = errors.New("srp: invalid verifier")
	// ErrNoSession is returned when a proof is checked before the exchange
	// produced a session key.
	ErrNoSession = errors.New("srp: no session key")
)

const rfc5054N2048 = "" +
	"AC6BDB41324A9A9BF166DE5E1389582FAF72B6651987EE07FC3192943DB56050" +
	"A37329CBB4A099ED8193E0757767A13DD52312AB4B03310DCD7F48A9DA04FD50" +
	"E8083969EDB767B0CF6095179A163AB3661A05FBD5FAAAE82918A9962F0B93B8" +
	"55F97993EC975EEAA80D740ADBF4FF747359D041D5C33EA71D281E446B14773B" +
	"CA97B43A23FB801676BD207A436C6481F1D2B9078717461A5B9D32E688F87748" +
	"544523B524B0D57D5EA77A2775D2ECFA032CFBDBF52FB3786160279004E57AE6" +
	"AF874E7303CE53299CCC041C7BC308D82A5698F3A8D0C38271AE35F8E9DBFBB6" +
	"94B5C803D89F7AE435DE236D525F54759B65E372FCD68EF20FA7111F9E4AFF73"

// Group is a safe-prime group with generator g and multiplier k = H(N | PAD(g)).
type Group struct {
	n    *big.Int
	g    *big.Int
	k    *big.Int
	size int
}

// RFC5054Group2048 is the 2048-bit group from RFC 5054 appendix A with g = 2.
var RFC5054Group2048 = newGroup(rfc5054N2048, 2)

func newGroup(hexN string, g int64) *Group {
	n, ok := new(big.Int).SetString(hexN, 16)
	if !ok {
		panic("srp: malformed group prime")
	}

	grp := &Group{
		n:    n,
		g:    big.NewInt(g),
		size: (n.BitLen() + 7) / 8,
	}
	grp.k = new(big.Int).SetBytes(hash(grp.pad(grp.n), grp.pad(grp.g)))

	return grp
}

// Size returns the byte length of N, which is also the length of every
// padded group element this package emits.
func (grp *Group) Size() int {
	return grp.size
}

// Verifier returns v = g^x mod N for the private key x.
func (grp *Group) Verifier(x []byte) []byte {
	v := new(big.Int).Exp(grp.g, new(big.Int).SetBytes(x), grp.n)
	return grp.pad(v)
}

// ComputeX derives the SRP private key x = H(salt | H(secret)).
func ComputeX(salt, secret []byte) []byte {
	return hash(salt, hash(secret))
}

func (grp *Group) pad(x *big.Int) []byte {
	return x.FillBytes(make([]byte, grp.size))
}

// element parses b as a group element. It must fit the group size and lie
// in [1, N).
func (grp *Group) element(b []byte) (*big.Int, bool) {
	if len(b) > grp.size {
		return nil, false
	}
	x := new(big.Int).SetBytes(b)
	return x, x.Sign() > 0 && x.Cmp(grp.n) < 0
}

// scramble computes u = H(PAD(A) | PAD(B)).
func (grp *Group) scramble(a, b *big.Int) (*big.Int, error) {
	u := new(big.Int).SetBytes(hash(grp.pad(a), grp.pad(b)))
	if u.Sign() == 0 {
		return nil, ErrInvalidEphemeral
	}
	return u, nil
}

// proofs returns M1 = H(PAD(A) | PAD(B) | K) and M2 = H(PAD(A) | M1 | K).
func (grp *Group) proofs(a, b *big.Int, key []byte) (m1, m2 []byte) {
	m1 = hash(grp.pad(a), grp.pad(b), key)
	m2 = hash(grp.pad(a), m1, key)
	return m1, m2
}

func hash(parts ...[]byte) []byte {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return h.Sum(nil)
}
