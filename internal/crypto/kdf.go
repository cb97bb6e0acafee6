// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"

	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	// SaltSize is the length of freshly generated salts.
	SaltSize = 16
	// KeySize is the length of every derived symmetric key.
	KeySize = 32

	infoEncryption = "vault-encryption"
	infoAuth       = "srp-auth"
)

// ErrInvalidKDFParams is returned for zero-valued Argon2id parameters.
var ErrInvalidKDFParams = errors.New("invalid kdf parameters")

// VaultKeys are the two independent keys derived from a master password.
// EncryptionKey never leaves the client. AuthSecret feeds the SRP private
// key, so the verifier the server stores reveals nothing about
// EncryptionKey.
type VaultKeys struct {
	EncryptionKey []byte
	AuthSecret    []byte
}

// SRPPrivateKey returns x = H(salt | H(AuthSecret)).
func (k VaultKeys) SRPPrivateKey(salt []byte) []byte {
	return srp.ComputeX(salt, k.AuthSecret)
}

// Verifier returns the SRP verifier registered for these keys.
func (k VaultKeys) Verifier(salt []byte) []byte {
	return srp.RFC5054Group2048.Verifier(k.SRPPrivateKey(salt))
}

// GenerateSalt reads SaltSize random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveVaultKeys stretches password with Argon2id under salt and params,
// then splits the master key with HKDF-SHA256.
func DeriveVaultKeys(password string, salt []byte, params models.KDFParams) (VaultKeys, error) {
	if params.Iterations == 0 || params.MemoryKiB == 0 || params.Parallelism == 0 {
		return VaultKeys{}, ErrInvalidKDFParams
	}

	master := argon2.IDKey([]byte(password), salt, params.Iterations, params.MemoryKiB, params.Parallelism, KeySize)

	encKey, err := expand(master, infoEncryption)
	if err != nil {
		return VaultKeys{}, err
	}
	authSecret, err := expand(master, infoAuth)
	if err != nil {
		return VaultKeys{}, err
	}

	return VaultKeys{EncryptionKey: encKey, AuthSecret: authSecret}, nil
}

func expand(master []byte, info string) ([]byte, error) {
	out := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.Expand(sha256.New, master, []byte(info)), out); err != nil {
		return nil, fmt.Errorf("hkdf expand %s: %w", info, err)
	}
	return out, nil
}
