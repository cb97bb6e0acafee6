package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/models"
)

// mailboxService seals ingested messages to the recipient's primary key.
// The server can write into a mailbox but never read it back.
type mailboxService struct {
	accountRepository store.AccountRepository
	keyRepository     store.EncryptionKeyRepository
	messageRepository store.MessageRepository
	validator         validators.Validator
	now               func() time.Time
	logger            *logger.Logger
}

func NewMailboxService(storages *store.Storages, logger *logger.Logger) MailboxService {
	return &mailboxService{
		accountRepository: storages.Accounts,
		keyRepository:     storages.Keys,
		messageRepository: storages.Messages,
		validator:         validators.NewRequestValidator(0),
		now:               time.Now,
		logger:            logger,
	}
}

// Deliver fails with store.ErrAccountNotFound for unknown recipients and
// ErrNoPrimaryKey when the recipient never registered a key.
func (s *mailboxService) Deliver(ctx context.Context, req models.DeliverMessageRequest) (models.MailboxMessage, error) {
	log := logger.FromContext(ctx)

	username := models.NormalizeUsername(req.Username)
	req.Username = username
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.MailboxMessage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := s.accountRepository.FindByUsername(ctx, username)
	if err != nil {
		return models.MailboxMessage{}, fmt.Errorf("recipient lookup failed: %w", err)
	}

	key, err := s.keyRepository.GetPrimary(ctx, account.AccountID)
	if errors.Is(err, store.ErrKeyNotFound) {
		return models.MailboxMessage{}, ErrNoPrimaryKey
	}
	if err != nil {
		return models.MailboxMessage{}, fmt.Errorf("primary key lookup failed: %w", err)
	}

	pub, err := crypto.ParsePublicKey(key.PublicKey)
	if err != nil {
		log.Err(err).Int64("key_id", key.KeyID).Msg("stored primary key is unusable")
		return models.MailboxMessage{}, fmt.Errorf("primary key is unusable: %w", err)
	}

	fields := make(map[string][]byte, len(req.Fields))
	for name, value := range req.Fields {
		fields[name] = []byte(value)
	}

	sealed, err := crypto.SealRecord(pub, fields)
	if err != nil {
		return models.MailboxMessage{}, fmt.Errorf("error sealing message: %w", err)
	}

	message, err := s.messageRepository.Create(ctx, models.MailboxMessage{
		AccountID:    account.AccountID,
		KeyID:        key.KeyID,
		SealedRecord: sealed,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return models.MailboxMessage{}, fmt.Errorf("error storing message: %w", err)
	}

	log.Info().Int64("account_id", account.AccountID).Int64("message_id", message.MessageID).Msg("message delivered")

	return message, nil
}

func (s *mailboxService) List(ctx context.Context, accountID int64) ([]models.MailboxMessage, error) {
	messages, err := s.messageRepository.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("error listing messages: %w", err)
	}
	return messages, nil
}
