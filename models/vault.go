// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// VaultStatus is the outcome of a vault read or write.
type VaultStatus string

const (
	// VaultStatusOk means the request was served or the write accepted.
	VaultStatusOk VaultStatus = "Ok"
	// VaultStatusOutdated means the caller's base revision is stale; the
	// response carries the true latest revision and nothing was written.
	VaultStatusOutdated VaultStatus = "Outdated"
	// VaultStatusVersionTooOld means the caller tried to write an older data
	// model version than the one already stored.
	VaultStatusVersionTooOld VaultStatus = "VersionTooOld"
)

// DefaultEncryptionAlgo identifies Argon2id key derivation with AES-256-GCM
// blob encryption.
const DefaultEncryptionAlgo = "argon2id-aes256gcm"

// KDFParams are the Argon2id cost parameters a snapshot was encrypted with.
type KDFParams struct {
	Iterations  uint32 `json:"iterations"`
	MemoryKiB   uint32 `json:"memoryKiB"`
	Parallelism uint8  `json:"parallelism"`
}

// IsZero reports whether no parameter was set.
func (p KDFParams) IsZero() bool {
	return p == KDFParams{}
}

// Value implements [driver.Valuer]; params are stored as JSON.
func (p KDFParams) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements [sql.Scanner].
func (p *KDFParams) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = KDFParams{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported type for KDFParams")
	}
}

// VaultSnapshot is one immutable entry of an account's vault history.
type VaultSnapshot struct {
	SnapshotID int64 `json:"-"`
	AccountID  int64 `json:"-"`

	// Blob is the client-encrypted vault. The server never interprets it.
	Blob []byte `json:"blob"`

	// Version is the client data-model version of Blob.
	Version  string `json:"version"`
	Revision int64  `json:"revision"`

	// Salt and Verifier are the SRP credentials valid as of this snapshot.
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"-"`

	EncryptionAlgo   string    `json:"encryptionAlgo"`
	EncryptionParams KDFParams `json:"encryptionParams"`

	Size            int64  `json:"size"`
	CredentialCount int    `json:"credentialCount"`
	EmailCount      int    `json:"emailCount"`
	ClientID        string `json:"clientId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Meta returns the blob-less projection of s.
func (s VaultSnapshot) Meta() SnapshotMeta {
	return SnapshotMeta{
		SnapshotID:      s.SnapshotID,
		Revision:        s.Revision,
		Version:         s.Version,
		Size:            s.Size,
		CredentialCount: s.CredentialCount,
		EmailCount:      s.EmailCount,
		CreatedAt:       s.CreatedAt,
	}
}

// SnapshotMeta is the part of a snapshot the retention engine looks at.
type SnapshotMeta struct {
	SnapshotID      int64
	Revision        int64
	Version         string
	Size            int64
	CredentialCount int
	EmailCount      int
	CreatedAt       time.Time
}

// HasUserData reports whether the snapshot holds any credentials or claimed
// emails, as opposed to an empty or freshly registered vault.
func (m SnapshotMeta) HasUserData() bool {
	return m.CredentialCount > 0 || m.EmailCount > 0
}

// VaultResponse is the read side of the sync protocol.
type VaultResponse struct {
	Status           VaultStatus `json:"status"`
	Blob             []byte      `json:"blob"`
	Version          string      `json:"version"`
	Revision         int64       `json:"revision"`
	Salt             []byte      `json:"salt"`
	EncryptionAlgo   string      `json:"encryptionAlgo"`
	EncryptionParams KDFParams   `json:"encryptionParams"`
	Size             int64       `json:"size"`

	SupportedEmailDomains []string `json:"supportedEmailDomains"`
}

// PushVaultRequest proposes a new snapshot built on top of BaseRevision.
type PushVaultRequest struct {
	Username        string `json:"username"`
	Blob            []byte `json:"blob"`
	Version         string `json:"version"`
	BaseRevision    int64  `json:"baseRevision"`
	CredentialCount int    `json:"credentialCount"`
	EmailCount      int    `json:"emailCount"`
	ClientID        string `json:"clientId"`
}

// PushVaultResponse reports whether the push was accepted. Revision is the
// new revision on Ok and the true latest revision otherwise.
type PushVaultResponse struct {
	Status   VaultStatus `json:"status"`
	Revision int64       `json:"revision"`
}

// ChangePasswordRequest is a vault push that also replaces the SRP
// credentials. ClientEphemeral and ClientProof prove the current password.
type ChangePasswordRequest struct {
	PushVaultRequest

	ClientEphemeral []byte `json:"clientEphemeral"`
	ClientProof     []byte `json:"clientProof"`

	NewSalt          []byte    `json:"newSalt"`
	NewVerifier      []byte    `json:"newVerifier"`
	EncryptionAlgo   string    `json:"encryptionAlgo"`
	EncryptionParams KDFParams `json:"encryptionParams"`
}

// ChangePasswordResponse adds the server proof to the push result.
type ChangePasswordResponse struct {
	PushVaultResponse

	ServerProof []byte `json:"serverProof,omitempty"`
}
