// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// CachedVault is the client's local copy of the last vault it pulled or
// pushed. Blob stays encrypted at rest.
type CachedVault struct {
	Username         string
	Revision         int64
	Version          string
	Blob             []byte
	Salt             []byte
	EncryptionAlgo   string
	EncryptionParams KDFParams
	SyncedAt         time.Time
}

// VaultDocument is the plaintext the client encrypts into a vault blob.
type VaultDocument struct {
	Credentials []Credential `json:"credentials"`
	Emails      []string     `json:"emails,omitempty"`
	PrivateKeys []PrivateKey `json:"privateKeys,omitempty"`
}

// PrivateKey is a PKCS#8 encoded RSA private key kept inside the encrypted
// vault, matched to its server-side public key by KeyID.
type PrivateKey struct {
	KeyID int64  `json:"keyId"`
	PKCS8 []byte `json:"pkcs8"`
}

// Credential is a single login entry.
type Credential struct {
	Name     string `json:"name"`
	URL      string `json:"url,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Notes    string `json:"notes,omitempty"`
}
