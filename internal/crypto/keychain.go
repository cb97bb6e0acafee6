// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/models"
)

// vaultAAD binds vault blobs to their purpose so a sealed mailbox field can
// never be replayed as a vault.
var vaultAAD = []byte("vault")

type keyChain struct{}

// NewKeyChain returns the default [KeyChain].
func NewKeyChain() KeyChain {
	return &keyChain{}
}

func (k *keyChain) NewCredentials(password string, params models.KDFParams) (Credentials, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return Credentials{}, err
	}

	keys, err := DeriveVaultKeys(password, salt, params)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{Salt: salt, Verifier: keys.Verifier(salt), Keys: keys}, nil
}

func (k *keyChain) DeriveKeys(password string, salt []byte, params models.KDFParams) (VaultKeys, error) {
	return DeriveVaultKeys(password, salt, params)
}

func (k *keyChain) EncryptVault(doc models.VaultDocument, key []byte) ([]byte, error) {
	plaintext, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal vault: %w", err)
	}

	return Seal(key, plaintext, vaultAAD)
}

func (k *keyChain) DecryptVault(blob, key []byte) (models.VaultDocument, error) {
	var doc models.VaultDocument
	if len(blob) == 0 {
		return doc, nil
	}

	plaintext, err := Open(key, blob, vaultAAD)
	if err != nil {
		return doc, err
	}

	if err := json.Unmarshal(plaintext, &doc); err != nil {
		return doc, fmt.Errorf("unmarshal vault: %w", err)
	}
	return doc, nil
}
