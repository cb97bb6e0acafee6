// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// Storages groups every server repository so that the service layer receives
// a single value.
type Storages struct {
	Accounts      AccountRepository
	Snapshots     SnapshotRepository
	RefreshTokens RefreshTokenRepository
	Keys          EncryptionKeyRepository
	RecoveryCodes RecoveryCodeRepository
	Audit         AuditRepository
	Messages      MessageRepository

	close func() error
}

// NewStorages initialises the server storage layer:
//  1. an empty cfg.DB.DSN selects [MemoryStore];
//  2. otherwise a Postgres connection is opened, pending migrations are
//     applied and the Postgres repositories are wired to it.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		logger.Warn().Msg("no database DSN configured, using in-memory storage")
		return NewMemoryStorages(NewMemoryStore()), nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewPostgresStorages(db, logger), nil
}

// NewPostgresStorages wires the Postgres repositories to db.
func NewPostgresStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		Accounts:      NewAccountRepository(db, logger),
		Snapshots:     NewSnapshotRepository(db, logger),
		RefreshTokens: NewRefreshTokenRepository(db, logger),
		Keys:          NewEncryptionKeyRepository(db, logger),
		RecoveryCodes: NewRecoveryCodeRepository(db, logger),
		Audit:         NewAuditRepository(db, logger),
		Messages:      NewMessageRepository(db, logger),
		close:         db.Close,
	}
}

// NewMemoryStorages exposes one [MemoryStore] through every repository field.
func NewMemoryStorages(m *MemoryStore) *Storages {
	return &Storages{
		Accounts:      m,
		Snapshots:     m,
		RefreshTokens: m,
		Keys:          m,
		RecoveryCodes: m,
		Audit:         m,
		Messages:      m,
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
