package srp

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"math/big"
)

// ephemeralBits is the size of the random secret ephemerals a and b.
const ephemeralBits = 256

// Server holds one side of a single login exchange. A Server must not be
// reused after VerifyClient returns.
type Server struct {
	group *Group
	v     *big.Int
	b     *big.Int
	pubB  *big.Int
}

// NewServer starts an exchange against the stored verifier.
func NewServer(group *Group, verifier []byte) (*Server, error) {
	v, ok := group.element(verifier)
	if len(verifier) == 0 || !ok || v.Cmp(group.n) >= 0 {
		return nil, ErrInvalidVerifier
	}

	for {
		b, err := randomSecret()
		if err != nil {
			return nil, err
		}

		// B = k*v + g^b mod N
		pubB := new(big.Int).Mul(group.k, v)
		pubB.Add(pubB, new(big.Int).Exp(group.g, b, group.n))
		pubB.Mod(pubB, group.n)
		if pubB.Sign() == 0 {
			continue
		}

		return &Server{group: group, v: v, b: b, pubB: pubB}, nil
	}
}

// PublicEphemeral returns B, padded to the group size.
func (s *Server) PublicEphemeral() []byte {
	return s.group.pad(s.pubB)
}

// VerifyClient checks the client proof M1 for the client ephemeral A and
// returns the server proof M2 on success. The comparison runs in constant
// time.
func (s *Server) VerifyClient(clientEphemeral, clientProof []byte) ([]byte, error) {
	a, ok := s.group.element(clientEphemeral)
	if !ok {
		return nil, ErrInvalidEphemeral
	}

	u, err := s.group.scramble(a, s.pubB)
	if err != nil {
		return nil, err
	}

	// S = (A * v^u)^b mod N
	secret := new(big.Int).Exp(s.v, u, s.group.n)
	secret.Mul(secret, a)
	secret.Mod(secret, s.group.n)
	secret.Exp(secret, s.b, s.group.n)

	key := hash(s.group.pad(secret))
	m1, m2 := s.group.proofs(a, s.pubB, key)

	if subtle.ConstantTimeCompare(m1, clientProof) != 1 {
		return nil, ErrProofMismatch
	}

	return m2, nil
}

func randomSecret() (*big.Int, error) {
	buf := make([]byte, ephemeralBits/8)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("srp: reading random ephemeral: %w", err)
	}
	return new(big.Int).SetBytes(buf), nil
}
