package service

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	recoveryCodeCount = 10
	recoveryCodeBytes = 10
)

var recoveryEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

type accountService struct {
	accountRepository      store.AccountRepository
	recoveryCodeRepository store.RecoveryCodeRepository
	auditService           AuditService

	validator validators.Validator

	// issuer labels the account in authenticator apps.
	issuer string

	now    func() time.Time
	logger *logger.Logger
}

func NewAccountService(storages *store.Storages, auditService AuditService, issuer string, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository:      storages.Accounts,
		recoveryCodeRepository: storages.RecoveryCodes,
		auditService:           auditService,
		validator:              validators.NewRequestValidator(srp.RFC5054Group2048.Size()),
		issuer:                 issuer,
		now:                    time.Now,
		logger:                 logger,
	}
}

// Register creates the account and its revision 0 snapshot: an empty blob
// carrying the initial salt, verifier and KDF parameters.
//
// Returns ErrInvalidDataProvided for malformed requests and ErrUsernameTaken
// when the normalized username is registered already.
func (s *accountService) Register(ctx context.Context, req models.RegisterRequest, client models.ClientInfo) (models.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	username := models.NormalizeUsername(req.Username)
	req.Username = username
	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("username", username).Msg("invalid registration request")
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	algo := req.EncryptionAlgo
	if algo == "" {
		algo = models.DefaultEncryptionAlgo
	}

	now := s.now().UTC()
	account, err := s.accountRepository.CreateAccount(ctx,
		models.Account{
			Username:          username,
			PasswordChangedAt: now,
			CreatedAt:         now,
		},
		models.VaultSnapshot{
			Blob:             []byte{},
			Version:          req.Version,
			Revision:         0,
			Salt:             req.Salt,
			Verifier:         req.Verifier,
			EncryptionAlgo:   algo,
			EncryptionParams: req.EncryptionParams,
			ClientID:         req.ClientID,
			CreatedAt:        now,
			UpdatedAt:        now,
		},
	)
	if errors.Is(err, store.ErrUsernameTaken) {
		return models.RegisterResponse{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("account creation ended with error")
		return models.RegisterResponse{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	s.auditService.Record(ctx, models.AuthEvent{
		Username:  username,
		EventType: models.AuthEventRegistered,
		IPAddress: client.IPAddress,
	})

	return models.RegisterResponse{AccountID: account.AccountID, Revision: 0}, nil
}

// SetupTwoFactor generates and stores a TOTP secret. The secret is not
// enforced until ConfirmTwoFactor succeeds; calling SetupTwoFactor again
// replaces it.
func (s *accountService) SetupTwoFactor(ctx context.Context, accountID int64) (models.TwoFactorSetupResponse, error) {
	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.TwoFactorSetupResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if account.TOTPEnabled {
		return models.TwoFactorSetupResponse{}, ErrTwoFactorAlreadyEnabled
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: account.Username,
	})
	if err != nil {
		return models.TwoFactorSetupResponse{}, fmt.Errorf("error generating totp secret: %w", err)
	}

	if err = s.accountRepository.SetTwoFactor(ctx, accountID, key.Secret(), false); err != nil {
		return models.TwoFactorSetupResponse{}, fmt.Errorf("error storing totp secret: %w", err)
	}

	return models.TwoFactorSetupResponse{Secret: key.Secret(), URL: key.URL()}, nil
}

// ConfirmTwoFactor enables the pending TOTP secret once code verifies and
// returns a fresh set of recovery codes. Only their hashes are stored.
func (s *accountService) ConfirmTwoFactor(ctx context.Context, accountID int64, code string) (models.TwoFactorConfirmResponse, error) {
	account, err := s.accountRepository.FindByID(ctx, accountID)
	if err != nil {
		return models.TwoFactorConfirmResponse{}, fmt.Errorf("account lookup failed: %w", err)
	}
	if account.TOTPEnabled {
		return models.TwoFactorConfirmResponse{}, ErrTwoFactorAlreadyEnabled
	}
	if account.TOTPSecret == "" {
		return models.TwoFactorConfirmResponse{}, ErrTwoFactorNotPending
	}

	valid, err := totp.ValidateCustom(strings.TrimSpace(code), account.TOTPSecret, s.now().UTC(), totpValidateOpts)
	if err != nil || !valid {
		return models.TwoFactorConfirmResponse{}, ErrInvalidTwoFactorCode
	}

	codes, hashes, err := generateRecoveryCodes(recoveryCodeCount)
	if err != nil {
		return models.TwoFactorConfirmResponse{}, fmt.Errorf("error generating recovery codes: %w", err)
	}

	if err = s.recoveryCodeRepository.ReplaceCodes(ctx, accountID, hashes); err != nil {
		return models.TwoFactorConfirmResponse{}, fmt.Errorf("error storing recovery codes: %w", err)
	}
	if err = s.accountRepository.SetTwoFactor(ctx, accountID, account.TOTPSecret, true); err != nil {
		return models.TwoFactorConfirmResponse{}, fmt.Errorf("error enabling two-factor authentication: %w", err)
	}

	return models.TwoFactorConfirmResponse{RecoveryCodes: codes}, nil
}

// generateRecoveryCodes returns n codes formatted as XXXX-XXXX-XXXX-XXXX and
// their hashes.
func generateRecoveryCodes(n int) ([]string, []string, error) {
	codes := make([]string, 0, n)
	hashes := make([]string, 0, n)

	for range n {
		raw := make([]byte, recoveryCodeBytes)
		if _, err := rand.Read(raw); err != nil {
			return nil, nil, err
		}

		encoded := recoveryEncoding.EncodeToString(raw)
		groups := make([]string, 0, len(encoded)/4)
		for i := 0; i < len(encoded); i += 4 {
			groups = append(groups, encoded[i:i+4])
		}

		code := strings.Join(groups, "-")
		codes = append(codes, code)
		hashes = append(hashes, hashRecoveryCode(code))
	}

	return codes, hashes, nil
}

// hashRecoveryCode ignores separators and case so that users may type codes
// loosely.
func hashRecoveryCode(code string) string {
	normalized := strings.Map(func(r rune) rune {
		if r == '-' || r == ' ' {
			return -1
		}
		return r
	}, strings.ToUpper(strings.TrimSpace(code)))

	return utils.SHA256Hex(normalized)
}
