package service

import (
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/retention"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	VaultService   VaultService
	AccountService AccountService
	AuditService   AuditService
	KeyService     KeyService
	MailboxService MailboxService
	AppInfoService AppInfoService
}

// NewServices wires every server service to storages. The token and vault
// services share one account locker.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	policy, err := retention.ParsePolicy(cfg.Vault.RetentionPolicy)
	if err != nil {
		return nil, fmt.Errorf("invalid retention policy: %w", err)
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	locker := newAccountLocker()
	auditService := NewAuditService(storages.Audit, logger)
	tokenService := NewTokenService(storages.RefreshTokens, storages.Accounts, locker, cfg.Auth, logger)
	authService := NewAuthService(storages, tokenService, auditService, cfg.App.HashKey, cfg.Auth, logger)

	return &Services{
		AuthService:    authService,
		TokenService:   tokenService,
		VaultService:   NewVaultService(storages, authService, tokenService, auditService, locker, policy, cfg.Vault, cfg.App.SupportedEmailDomains, logger),
		AccountService: NewAccountService(storages, auditService, cfg.Auth.TokenIssuer, logger),
		AuditService:   auditService,
		KeyService:     NewKeyService(storages.Keys, logger),
		MailboxService: NewMailboxService(storages, logger),
		AppInfoService: appInfoService,
	}, nil
}
