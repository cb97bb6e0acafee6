package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
	KeyService   ClientKeyService
	SyncJob      ClientSyncJob
}

// NewClientServices wires the client services around one key chain and one
// server adapter. onSyncError receives background pull failures and may be nil.
func NewClientServices(localVaults store.LocalVaultRepository, serverAdapter adapter.ServerAdapter, params models.KDFParams, clientID string, onSyncError func(error)) *ClientServices {
	keyChain := crypto.NewKeyChain()
	vaultSvc := NewClientVaultService(serverAdapter, localVaults, keyChain, params, clientID)

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, keyChain, params, clientID),
		VaultService: vaultSvc,
		KeyService:   NewClientKeyService(serverAdapter, vaultSvc),
		SyncJob:      NewClientSyncJob(vaultSvc, onSyncError),
	}
}
