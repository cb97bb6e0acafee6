package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/models"
)

// SealRecord encrypts every field with a fresh random record key, using the
// field name as additional data so fields cannot be swapped, and wraps the
// record key for pub.
func SealRecord(pub *rsa.PublicKey, fields map[string][]byte) (models.SealedRecord, error) {
	recordKey := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, recordKey); err != nil {
		return models.SealedRecord{}, fmt.Errorf("generate record key: %w", err)
	}

	sealed := make(map[string][]byte, len(fields))
	for name, value := range fields {
		ct, err := Seal(recordKey, value, []byte(name))
		if err != nil {
			return models.SealedRecord{}, fmt.Errorf("seal field %q: %w", name, err)
		}
		sealed[name] = ct
	}

	wrapped, err := WrapKey(pub, recordKey)
	if err != nil {
		return models.SealedRecord{}, err
	}

	return models.SealedRecord{WrappedKey: wrapped, Fields: sealed}, nil
}

// OpenRecord unwraps the record key with priv and decrypts every field.
func OpenRecord(priv *rsa.PrivateKey, record models.SealedRecord) (map[string][]byte, error) {
	recordKey, err := UnwrapKey(priv, record.WrappedKey)
	if err != nil {
		return nil, err
	}

	fields := make(map[string][]byte, len(record.Fields))
	for name, ct := range record.Fields {
		pt, err := Open(recordKey, ct, []byte(name))
		if err != nil {
			return nil, fmt.Errorf("open field %q: %w", name, err)
		}
		fields[name] = pt
	}

	return fields, nil
}
