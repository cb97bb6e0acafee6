package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

type keyService struct {
	keyRepository store.EncryptionKeyRepository
	validator     validators.Validator
	now           func() time.Time
	logger        *logger.Logger
}

func NewKeyService(keyRepository store.EncryptionKeyRepository, logger *logger.Logger) KeyService {
	return &keyService{
		keyRepository: keyRepository,
		validator:     validators.NewRequestValidator(0),
		now:           time.Now,
		logger:        logger,
	}
}

// AddKey stores a PKIX encoded RSA public key. The private half stays with
// the client inside the encrypted vault.
func (s *keyService) AddKey(ctx context.Context, accountID int64, req models.AddKeyRequest) (models.EncryptionKey, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("account_id", accountID).Msg("rejected public key")
		return models.EncryptionKey{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	key, err := s.keyRepository.AddKey(ctx, models.EncryptionKey{
		AccountID: accountID,
		PublicKey: req.PublicKey,
		Primary:   req.Primary,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error storing public key: %w", err)
	}

	return key, nil
}

func (s *keyService) GetPrimary(ctx context.Context, accountID int64) (models.EncryptionKey, error) {
	key, err := s.keyRepository.GetPrimary(ctx, accountID)
	if err != nil {
		return models.EncryptionKey{}, fmt.Errorf("error getting primary key: %w", err)
	}
	return key, nil
}

func (s *keyService) ListKeys(ctx context.Context, accountID int64) ([]models.EncryptionKey, error) {
	keys, err := s.keyRepository.ListKeys(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing keys: %w", err)
	}
	return keys, nil
}

func (s *keyService) SetPrimary(ctx context.Context, accountID, keyID int64) error {
	if err := s.keyRepository.SetPrimary(ctx, accountID, keyID); err != nil {
		return fmt.Errorf("error setting primary key: %w", err)
	}
	return nil
}
