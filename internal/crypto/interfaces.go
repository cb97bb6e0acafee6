package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain is the client-side composition of key derivation and vault
// encryption. It knows nothing about the network or storage.
//
//	Salt, Verifier, Keys = NewCredentials(password, params)   registration / password change
//	Keys                 = DeriveKeys(password, salt, params) login
//	Blob                 = EncryptVault(document, Keys.EncryptionKey)
//	Document             = DecryptVault(blob, Keys.EncryptionKey)
type KeyChain interface {
	// NewCredentials generates a fresh salt and derives the keys and the SRP
	// verifier to register for password.
	NewCredentials(password string, params models.KDFParams) (Credentials, error)

	// DeriveKeys re-derives the keys of an existing registration.
	DeriveKeys(password string, salt []byte, params models.KDFParams) (VaultKeys, error)

	// EncryptVault serializes doc to JSON and seals it under key.
	EncryptVault(doc models.VaultDocument, key []byte) ([]byte, error)

	// DecryptVault opens blob under key. An empty blob is the empty vault
	// every account starts with.
	DecryptVault(blob, key []byte) (models.VaultDocument, error)
}

// Credentials is what a client sends when it sets a master password, plus
// the keys it keeps.
type Credentials struct {
	Salt     []byte
	Verifier []byte
	Keys     VaultKeys
}
