package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type auditRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAuditRepository(db *DB, logger *logger.Logger) AuditRepository {
	logger.Debug().Msg("AuditRepository created")
	return &auditRepository{
		db:     db,
		logger: logger,
	}
}

func (r *auditRepository) Record(ctx context.Context, event models.AuthEvent) error {
	query, args, err := psql.Insert("auth_events").
		Columns("username", "event_type", "reason", "ip_address", "created_at").
		Values(event.Username, string(event.EventType), event.Reason, event.IPAddress, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditRepository.Record").
			Str("event_type", string(event.EventType)).
			Msg("failed to record auth event")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListByUsername returns the newest events first.
func (r *auditRepository) ListByUsername(ctx context.Context, username string, limit uint64) ([]models.AuthEvent, error) {
	log := logger.FromContext(ctx)

	query, args, err := psql.Select("event_id", "username", "event_type", "reason", "ip_address", "created_at").
		From("auth_events").
		Where(sq.Eq{"username": username}).
		OrderBy("created_at DESC", "event_id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "auditRepository.ListByUsername").Msg("failed to list auth events")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	events := make([]models.AuthEvent, 0, limit)
	for rows.Next() {
		var (
			e         models.AuthEvent
			eventType string
		)
		if err = rows.Scan(&e.EventID, &e.Username, &eventType, &e.Reason, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		e.EventType = models.AuthEventType(eventType)
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return events, nil
}
