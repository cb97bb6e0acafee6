package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestClientKeyService_GenerateKey_StoresPrivateKeyInVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newVaultHarness(t, ctrl)
	svc := NewClientKeyService(h.adapter, h.svc)
	ctx := context.Background()

	var registered []byte
	h.adapter.EXPECT().AddKey(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.AddKeyRequest) (models.EncryptionKey, error) {
			_, err := crypto.ParsePublicKey(req.PublicKey)
			require.NoError(t, err)
			assert.True(t, req.Primary)
			registered = req.PublicKey
			return models.EncryptionKey{KeyID: 9, PublicKey: req.PublicKey, Primary: true}, nil
		})

	key, err := svc.GenerateKey(ctx, "alice", h.keys())
	require.NoError(t, err)
	assert.Equal(t, int64(9), key.KeyID)

	doc := h.serverDocument()
	require.Len(t, doc.PrivateKeys, 1)
	assert.Equal(t, int64(9), doc.PrivateKeys[0].KeyID)

	private, err := crypto.ParsePrivateKey(doc.PrivateKeys[0].PKCS8)
	require.NoError(t, err)
	publicDER, err := crypto.MarshalPublicKey(&private.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, registered, publicDER, "the vault holds the private half of the registered key")
}

func TestClientKeyService_GenerateKey_ServerRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newVaultHarness(t, ctrl)
	svc := NewClientKeyService(h.adapter, h.svc)

	h.adapter.EXPECT().AddKey(gomock.Any(), gomock.Any()).Return(models.EncryptionKey{}, errors.New("connection reset"))

	_, err := svc.GenerateKey(context.Background(), "alice", h.keys())

	require.Error(t, err)
	assert.Zero(t, h.pushes, "no private key is stored for an unregistered public key")
}

func TestClientKeyService_ReadMailbox(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newVaultHarness(t, ctrl)
	svc := NewClientKeyService(h.adapter, h.svc)
	ctx := context.Background()

	private, err := crypto.GenerateKeyPair()
	require.NoError(t, err)
	privateDER, err := crypto.MarshalPrivateKey(private)
	require.NoError(t, err)
	h.writeAsOtherDevice(models.VaultDocument{PrivateKeys: []models.PrivateKey{{KeyID: 3, PKCS8: privateDER}}})

	sealed, err := crypto.SealRecord(&private.PublicKey, map[string][]byte{"subject": []byte("welcome")})
	require.NoError(t, err)

	h.adapter.EXPECT().ListMailbox(ctx).Return([]models.MailboxMessage{{MessageID: 1, KeyID: 3, SealedRecord: sealed}}, nil)

	messages, err := svc.ReadMailbox(ctx, "alice", h.keys())

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "welcome", messages[0]["subject"])
}

func TestClientKeyService_ReadMailbox_UnknownKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := newVaultHarness(t, ctrl)
	svc := NewClientKeyService(h.adapter, h.svc)
	ctx := context.Background()

	h.adapter.EXPECT().ListMailbox(ctx).Return([]models.MailboxMessage{{MessageID: 1, KeyID: 42}}, nil)

	_, err := svc.ReadMailbox(ctx, "alice", h.keys())

	assert.ErrorIs(t, err, ErrNoPrivateKey)
}
