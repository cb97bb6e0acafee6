package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type messageRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("MessageRepository created")
	return &messageRepository{
		db:     db,
		logger: logger,
	}
}

// Create stores the sealed fields as a JSONB object of base64 strings.
func (r *messageRepository) Create(ctx context.Context, message models.MailboxMessage) (models.MailboxMessage, error) {
	log := logger.FromContext(ctx)

	fields, err := json.Marshal(message.Fields)
	if err != nil {
		return models.MailboxMessage{}, fmt.Errorf("error encoding message fields: %w", err)
	}

	query, args, err := psql.Insert("mailbox_messages").
		Columns("account_id", "key_id", "wrapped_key", "fields", "created_at").
		Values(message.AccountID, message.KeyID, message.WrappedKey, fields, message.CreatedAt).
		Suffix("RETURNING message_id").
		ToSql()
	if err != nil {
		return models.MailboxMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&message.MessageID); err != nil {
		log.Err(err).
			Str("func", "messageRepository.Create").
			Int64("account_id", message.AccountID).
			Msg("failed to store mailbox message")
		return models.MailboxMessage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return message, nil
}

func (r *messageRepository) ListByAccount(ctx context.Context, accountID int64) ([]models.MailboxMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("message_id", "account_id", "key_id", "wrapped_key", "fields", "created_at").
		From("mailbox_messages").
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("message_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "messageRepository.ListByAccount").
			Int64("account_id", accountID).
			Msg("failed to list mailbox messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.MailboxMessage, 0, 8)
	for rows.Next() {
		var (
			m      models.MailboxMessage
			fields []byte
		)
		if err = rows.Scan(&m.MessageID, &m.AccountID, &m.KeyID, &m.WrappedKey, &fields, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = json.Unmarshal(fields, &m.Fields); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
