package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// maxHistoryLimit caps a single audit history page.
const maxHistoryLimit = 200

type auditService struct {
	auditRepository store.AuditRepository
	now             func() time.Time
	logger          *logger.Logger
}

func NewAuditService(auditRepository store.AuditRepository, logger *logger.Logger) AuditService {
	return &auditService{
		auditRepository: auditRepository,
		now:             time.Now,
		logger:          logger,
	}
}

// Record stamps event with the current time when it has none and stores it.
// The audit log is advisory, so failures are only logged.
func (s *auditService) Record(ctx context.Context, event models.AuthEvent) {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.now().UTC()
	}

	if err := s.auditRepository.Record(ctx, event); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditService.Record").
			Str("event_type", string(event.EventType)).
			Str("username", event.Username).
			Msg("failed to record auth event")
	}
}

// History returns the newest events of username first.
func (s *auditService) History(ctx context.Context, username string, limit uint64) ([]models.AuthEvent, error) {
	if limit == 0 || limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	events, err := s.auditRepository.ListByUsername(ctx, models.NormalizeUsername(username), limit)
	if err != nil {
		return nil, fmt.Errorf("error listing auth events: %w", err)
	}

	return events, nil
}
