package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

// ─────────────────────────────────────────────
// Function-field fakes of the service layer. A nil field means the test does
// not expect that call; it fails loudly instead of returning zero values.
// ─────────────────────────────────────────────

type fakeAuthService struct {
	initiateLogin          func(ctx context.Context, username string, client models.ClientInfo) (models.InitiateLoginResponse, error)
	validateLogin          func(ctx context.Context, req models.ValidateLoginRequest, client models.ClientInfo) (models.ValidateLoginResponse, error)
	validateTwoFactor      func(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error)
	validateRecoveryCode   func(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error)
	initiateChangePassword func(ctx context.Context, session models.Session) (models.InitiateLoginResponse, error)
	verifyChangePassword   func(ctx context.Context, session models.Session, a, m1 []byte) ([]byte, error)
}

func (f *fakeAuthService) InitiateLogin(ctx context.Context, username string, client models.ClientInfo) (models.InitiateLoginResponse, error) {
	return f.initiateLogin(ctx, username, client)
}

func (f *fakeAuthService) ValidateLogin(ctx context.Context, req models.ValidateLoginRequest, client models.ClientInfo) (models.ValidateLoginResponse, error) {
	return f.validateLogin(ctx, req, client)
}

func (f *fakeAuthService) ValidateTwoFactor(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error) {
	return f.validateTwoFactor(ctx, req, client)
}

func (f *fakeAuthService) ValidateRecoveryCode(ctx context.Context, req models.ValidateTwoFactorRequest, client models.ClientInfo) (models.ValidateLoginResponse, error) {
	return f.validateRecoveryCode(ctx, req, client)
}

func (f *fakeAuthService) InitiateChangePassword(ctx context.Context, session models.Session) (models.InitiateLoginResponse, error) {
	return f.initiateChangePassword(ctx, session)
}

func (f *fakeAuthService) VerifyChangePassword(ctx context.Context, session models.Session, a, m1 []byte) ([]byte, error) {
	return f.verifyChangePassword(ctx, session, a, m1)
}

type fakeTokenService struct {
	rotate           func(ctx context.Context, access, refresh string) (models.TokenPair, error)
	revoke           func(ctx context.Context, refresh string) error
	parseAccessToken func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeTokenService) IssueNew(context.Context, models.Account, models.ClientInfo, bool) (models.TokenPair, error) {
	panic("unexpected IssueNew")
}

func (f *fakeTokenService) Rotate(ctx context.Context, access, refresh string) (models.TokenPair, error) {
	return f.rotate(ctx, access, refresh)
}

func (f *fakeTokenService) Revoke(ctx context.Context, refresh string) error {
	return f.revoke(ctx, refresh)
}

func (f *fakeTokenService) RevokeOtherDevices(context.Context, int64, string) (int64, error) {
	panic("unexpected RevokeOtherDevices")
}

func (f *fakeTokenService) ParseAccessToken(ctx context.Context, token string) (models.Token, error) {
	return f.parseAccessToken(ctx, token)
}

func (f *fakeTokenService) SweepExpired(context.Context) (int64, error) {
	panic("unexpected SweepExpired")
}

type fakeVaultService struct {
	getVault       func(ctx context.Context, accountID int64) (models.VaultResponse, error)
	pushVault      func(ctx context.Context, session models.Session, req models.PushVaultRequest) (models.PushVaultResponse, error)
	changePassword func(ctx context.Context, session models.Session, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error)
}

func (f *fakeVaultService) GetVault(ctx context.Context, accountID int64) (models.VaultResponse, error) {
	return f.getVault(ctx, accountID)
}

func (f *fakeVaultService) PushVault(ctx context.Context, session models.Session, req models.PushVaultRequest) (models.PushVaultResponse, error) {
	return f.pushVault(ctx, session, req)
}

func (f *fakeVaultService) ChangePassword(ctx context.Context, session models.Session, req models.ChangePasswordRequest) (models.ChangePasswordResponse, error) {
	return f.changePassword(ctx, session, req)
}

type fakeAccountService struct {
	register         func(ctx context.Context, req models.RegisterRequest, client models.ClientInfo) (models.RegisterResponse, error)
	setupTwoFactor   func(ctx context.Context, accountID int64) (models.TwoFactorSetupResponse, error)
	confirmTwoFactor func(ctx context.Context, accountID int64, code string) (models.TwoFactorConfirmResponse, error)
}

func (f *fakeAccountService) Register(ctx context.Context, req models.RegisterRequest, client models.ClientInfo) (models.RegisterResponse, error) {
	return f.register(ctx, req, client)
}

func (f *fakeAccountService) SetupTwoFactor(ctx context.Context, accountID int64) (models.TwoFactorSetupResponse, error) {
	return f.setupTwoFactor(ctx, accountID)
}

func (f *fakeAccountService) ConfirmTwoFactor(ctx context.Context, accountID int64, code string) (models.TwoFactorConfirmResponse, error) {
	return f.confirmTwoFactor(ctx, accountID, code)
}

type fakeAuditService struct {
	history func(ctx context.Context, username string, limit uint64) ([]models.AuthEvent, error)
}

func (f *fakeAuditService) Record(context.Context, models.AuthEvent) {}

func (f *fakeAuditService) History(ctx context.Context, username string, limit uint64) ([]models.AuthEvent, error) {
	return f.history(ctx, username, limit)
}

type fakeKeyService struct {
	addKey     func(ctx context.Context, accountID int64, req models.AddKeyRequest) (models.EncryptionKey, error)
	getPrimary func(ctx context.Context, accountID int64) (models.EncryptionKey, error)
}

func (f *fakeKeyService) AddKey(ctx context.Context, accountID int64, req models.AddKeyRequest) (models.EncryptionKey, error) {
	return f.addKey(ctx, accountID, req)
}

func (f *fakeKeyService) GetPrimary(ctx context.Context, accountID int64) (models.EncryptionKey, error) {
	return f.getPrimary(ctx, accountID)
}

func (f *fakeKeyService) ListKeys(context.Context, int64) ([]models.EncryptionKey, error) {
	panic("unexpected ListKeys")
}

func (f *fakeKeyService) SetPrimary(context.Context, int64, int64) error {
	panic("unexpected SetPrimary")
}

type fakeMailboxService struct {
	deliver func(ctx context.Context, req models.DeliverMessageRequest) (models.MailboxMessage, error)
	list    func(ctx context.Context, accountID int64) ([]models.MailboxMessage, error)
}

func (f *fakeMailboxService) Deliver(ctx context.Context, req models.DeliverMessageRequest) (models.MailboxMessage, error) {
	return f.deliver(ctx, req)
}

func (f *fakeMailboxService) List(ctx context.Context, accountID int64) ([]models.MailboxMessage, error) {
	return f.list(ctx, accountID)
}

type fakeAppInfoService struct {
	version string
	status  func(ctx context.Context, clientVersion string) models.StatusResponse
}

func (f *fakeAppInfoService) GetAppVersion(context.Context) string {
	return f.version
}

func (f *fakeAppInfoService) Status(ctx context.Context, clientVersion string) models.StatusResponse {
	return f.status(ctx, clientVersion)
}

// ─────────────────────────────────────────────
// Test harness
// ─────────────────────────────────────────────

const (
	testHashKey   = "handler-test-hash-key"
	testIngestKey = "handler-test-ingest-key"
	validToken    = "valid-access-token"
)

var testSession = models.Session{AccountID: 42, Username: "alice@example.com", DeviceID: "device-1"}

type fakes struct {
	auth    *fakeAuthService
	token   *fakeTokenService
	vault   *fakeVaultService
	account *fakeAccountService
	audit   *fakeAuditService
	keys    *fakeKeyService
	mailbox *fakeMailboxService
	appInfo *fakeAppInfoService
}

// newFakes returns fakes whose token service accepts validToken as
// testSession and rejects everything else.
func newFakes() *fakes {
	return &fakes{
		auth: &fakeAuthService{},
		token: &fakeTokenService{
			parseAccessToken: func(_ context.Context, token string) (models.Token, error) {
				if token != validToken {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				t := models.Token{AccountID: testSession.AccountID}
				t.Username = testSession.Username
				t.DeviceID = testSession.DeviceID
				return t, nil
			},
		},
		vault:   &fakeVaultService{},
		account: &fakeAccountService{},
		audit:   &fakeAuditService{},
		keys:    &fakeKeyService{},
		mailbox: &fakeMailboxService{},
		appInfo: &fakeAppInfoService{version: "1.4.0"},
	}
}

func (f *fakes) services() *service.Services {
	return &service.Services{
		AuthService:    f.auth,
		TokenService:   f.token,
		VaultService:   f.vault,
		AccountService: f.account,
		AuditService:   f.audit,
		KeyService:     f.keys,
		MailboxService: f.mailbox,
		AppInfoService: f.appInfo,
	}
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App:   config.App{HashKey: testHashKey, IngestKey: testIngestKey},
		Vault: config.Vault{MaxBlobSize: 1 << 20},
	}
}

func newTestRouter(t *testing.T, f *fakes, cfg *config.StructuredConfig) http.Handler {
	t.Helper()
	return NewHandler(f.services(), cfg, logger.Nop()).Init()
}

type requestOption func(r *http.Request)

func withBearer(token string) requestOption {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

func doRequest(t *testing.T, router http.Handler, method, path string, body any, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "vault-cli/1.4.0")
	req.RemoteAddr = "198.51.100.10:54321"
	for _, opt := range opts {
		opt(req)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}
