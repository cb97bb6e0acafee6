package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

type clientKeyService struct {
	adapter adapter.ServerAdapter
	vault   ClientVaultService
}

func NewClientKeyService(serverAdapter adapter.ServerAdapter, vault ClientVaultService) ClientKeyService {
	return &clientKeyService{adapter: serverAdapter, vault: vault}
}

// GenerateKey registers the public key first so that the server assigned key
// id can be stored next to the private key inside the vault.
func (k *clientKeyService) GenerateKey(ctx context.Context, username string, keys crypto.VaultKeys) (models.EncryptionKey, error) {
	private, err := crypto.GenerateKeyPair()
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error generating key pair: %w", err)
	}

	publicDER, err := crypto.MarshalPublicKey(&private.PublicKey)
	if err != nil {
		return models.EncryptionKey{}, err
	}
	privateDER, err := crypto.MarshalPrivateKey(private)
	if err != nil {
		return models.EncryptionKey{}, err
	}

	registered, err := k.adapter.AddKey(ctx, models.AddKeyRequest{PublicKey: publicDER, Primary: true})
	if err != nil {
		return models.EncryptionKey{}, mapAdapterError(err)
	}

	_, err = k.vault.Update(ctx, username, keys, func(doc *models.VaultDocument) {
		doc.PrivateKeys = append(doc.PrivateKeys, models.PrivateKey{KeyID: registered.KeyID, PKCS8: privateDER})
	})
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error storing private key in vault: %w", err)
	}

	return registered, nil
}

func (k *clientKeyService) ReadMailbox(ctx context.Context, username string, keys crypto.VaultKeys) ([]map[string]string, error) {
	doc, err := k.vault.Pull(ctx, username, keys)
	if err != nil {
		return nil, err
	}

	messages, err := k.adapter.ListMailbox(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	privateKeys := make(map[int64][]byte, len(doc.PrivateKeys))
	for _, pk := range doc.PrivateKeys {
		privateKeys[pk.KeyID] = pk.PKCS8
	}

	opened := make([]map[string]string, 0, len(messages))
	for _, message := range messages {
		der, ok := privateKeys[message.KeyID]
		if !ok {
			return nil, fmt.Errorf("%w: message %d, key %d", ErrNoPrivateKey, message.MessageID, message.KeyID)
		}

		private, err := crypto.ParsePrivateKey(der)
		if err != nil {
			return nil, err
		}

		fields, err := crypto.OpenRecord(private, message.SealedRecord)
		if err != nil {
			return nil, fmt.Errorf("error opening message %d: %w", message.MessageID, err)
		}

		plain := make(map[string]string, len(fields))
		for name, value := range fields {
			plain[name] = string(value)
		}
		opened = append(opened, plain)
	}

	return opened, nil
}
