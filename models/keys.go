// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EncryptionKey is the server-visible half of an account key pair: a PKIX
// DER encoded RSA public key. At most one key per account is primary.
type EncryptionKey struct {
	KeyID     int64     `json:"keyId"`
	AccountID int64     `json:"-"`
	PublicKey []byte    `json:"publicKey"`
	Primary   bool      `json:"primary"`
	CreatedAt time.Time `json:"createdAt"`
}

// AddKeyRequest registers a new public key.
type AddKeyRequest struct {
	PublicKey []byte `json:"publicKey"`
	Primary   bool   `json:"primary"`
}

// SealedRecord is a record whose fields are encrypted with a random
// symmetric key that is in turn wrapped with a recipient public key.
type SealedRecord struct {
	WrappedKey []byte            `json:"wrappedKey"`
	Fields     map[string][]byte `json:"fields"`
}

// MailboxMessage is an ingested message sealed to the recipient's primary key.
type MailboxMessage struct {
	MessageID int64 `json:"messageId"`
	AccountID int64 `json:"-"`
	KeyID     int64 `json:"keyId"`

	SealedRecord

	CreatedAt time.Time `json:"createdAt"`
}

// DeliverMessageRequest is sent by the mail ingestion path with plaintext
// fields that the server seals before storing.
type DeliverMessageRequest struct {
	Username string            `json:"username"`
	Fields   map[string]string `json:"fields"`
}
