package srp

import (
	"crypto/subtle"
	"math/big"
)

// Client holds the client side of a single login exchange.
type Client struct {
	group *Group
	x     *big.Int
	a     *big.Int
	pubA  *big.Int

	key []byte
	m1  []byte
	m2  []byte
}

// NewClient starts an exchange for the private key x, as returned by
// [ComputeX].
func NewClient(group *Group, x []byte) (*Client, error) {
	for {
		a, err := randomSecret()
		if err != nil {
			return nil, err
		}

		pubA := new(big.Int).Exp(group.g, a, group.n)
		if pubA.Sign() == 0 {
			continue
		}

		return &Client{group: group, x: new(big.Int).SetBytes(x), a: a, pubA: pubA}, nil
	}
}

// PublicEphemeral returns A, padded to the group size.
func (c *Client) PublicEphemeral() []byte {
	return c.group.pad(c.pubA)
}

// ComputeProof derives the session key from the server ephemeral B and
// returns the client proof M1.
func (c *Client) ComputeProof(serverEphemeral []byte) ([]byte, error) {
	b, ok := c.group.element(serverEphemeral)
	if !ok {
		return nil, ErrInvalidEphemeral
	}

	u, err := c.group.scramble(c.pubA, b)
	if err != nil {
		return nil, err
	}

	// S = (B - k*g^x)^(a + u*x) mod N
	base := new(big.Int).Exp(c.group.g, c.x, c.group.n)
	base.Mul(base, c.group.k)
	base.Sub(b, base)
	base.Mod(base, c.group.n)

	exp := new(big.Int).Mul(u, c.x)
	exp.Add(exp, c.a)

	secret := new(big.Int).Exp(base, exp, c.group.n)

	c.key = hash(c.group.pad(secret))
	c.m1, c.m2 = c.group.proofs(c.pubA, b, c.key)

	return c.m1, nil
}

// VerifyServer checks the server proof M2 in constant time.
func (c *Client) VerifyServer(serverProof []byte) error {
	if c.m2 == nil {
		return ErrNoSession
	}
	if subtle.ConstantTimeCompare(c.m2, serverProof) != 1 {
		return ErrProofMismatch
	}
	return nil
}

// SessionKey returns K once ComputeProof has succeeded.
func (c *Client) SessionKey() []byte {
	return c.key
}
