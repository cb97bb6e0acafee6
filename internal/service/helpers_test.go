package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/retention"
	"github.com/MKhiriev/go-pass-vault/internal/srp"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

// cheap Argon2id parameters keep the handshake tests fast.
var testKDF = models.KDFParams{Iterations: 1, MemoryKiB: 1024, Parallelism: 1}

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:            "test-sign-key",
		TokenIssuer:             "go-pass-vault-test",
		AccessTokenDuration:     15 * time.Minute,
		RefreshTokenDuration:    24 * time.Hour,
		RememberMeDuration:      30 * 24 * time.Hour,
		RefreshReuseWindow:      30 * time.Second,
		EphemeralTTL:            time.Minute,
		EphemeralCacheSize:      128,
		FakeCredentialTTL:       time.Hour,
		FakeCredentialCacheSize: 128,
		LockoutThreshold:        3,
		LockoutDuration:         15 * time.Minute,
		KDF:                     config.KDF{Iterations: testKDF.Iterations, MemoryKiB: testKDF.MemoryKiB, Parallelism: testKDF.Parallelism},
	}
}

// testEnv wires the real server services to a MemoryStore and a shared,
// manually advanced clock.
type testEnv struct {
	t *testing.T

	memory   *store.MemoryStore
	storages *store.Storages

	audit    AuditService
	tokens   *tokenService
	auth     *authService
	accounts *accountService
	vault    *vaultService
	keys     KeyService
	mailbox  MailboxService

	keyChain crypto.KeyChain
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithPolicy(t, "latest:100")
}

func newTestEnvWithPolicy(t *testing.T, rawPolicy string) *testEnv {
	t.Helper()

	policy, err := retention.ParsePolicy(rawPolicy)
	require.NoError(t, err)

	env := &testEnv{
		t:        t,
		memory:   store.NewMemoryStore(),
		keyChain: crypto.NewKeyChain(),
		now:      time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	env.storages = store.NewMemoryStorages(env.memory)

	cfg := testAuthConfig()
	log := logger.Nop()
	locker := newAccountLocker()

	audit := NewAuditService(env.storages.Audit, log).(*auditService)
	audit.now = env.clock
	env.audit = audit

	env.tokens = NewTokenService(env.storages.RefreshTokens, env.storages.Accounts, locker, cfg, log).(*tokenService)
	env.tokens.now = env.clock

	env.auth = NewAuthService(env.storages, env.tokens, env.audit, "test-hash-key", cfg, log).(*authService)
	env.auth.now = env.clock

	env.accounts = NewAccountService(env.storages, env.audit, cfg.TokenIssuer, log).(*accountService)
	env.accounts.now = env.clock

	env.vault = NewVaultService(env.storages, env.auth, env.tokens, env.audit, locker, policy,
		config.Vault{MaxBlobSize: 1 << 16}, []string{"vault.example"}, log).(*vaultService)
	env.vault.now = env.clock

	env.keys = NewKeyService(env.storages.Keys, log)
	env.mailbox = NewMailboxService(env.storages, log)

	return env
}

func (e *testEnv) clock() time.Time { return e.now }

func (e *testEnv) advance(d time.Duration) { e.now = e.now.Add(d) }

// device returns the client info of a named device.
func device(name string) models.ClientInfo {
	return models.ClientInfo{IPAddress: "203.0.113.7", UserAgent: "test/" + name, DeviceID: "device-" + name}
}

// register creates username with password and returns its account id and
// keys.
func (e *testEnv) register(username, password string) (int64, crypto.VaultKeys) {
	e.t.Helper()

	credentials, err := e.keyChain.NewCredentials(password, testKDF)
	require.NoError(e.t, err)

	resp, err := e.accounts.Register(context.Background(), models.RegisterRequest{
		Username:         username,
		Salt:             credentials.Salt,
		Verifier:         credentials.Verifier,
		EncryptionAlgo:   models.DefaultEncryptionAlgo,
		EncryptionParams: testKDF,
		Version:          "1.0.0",
		ClientID:         "test-client",
	}, device("setup"))
	require.NoError(e.t, err)

	return resp.AccountID, credentials.Keys
}

// handshake runs an SRP login for username from client. tamper may change
// the proof before it is sent.
func (e *testEnv) handshake(username, password string, client models.ClientInfo, tamper func(proof []byte)) (models.ValidateLoginResponse, *srp.Client, error) {
	e.t.Helper()
	ctx := context.Background()

	initiated, err := e.auth.InitiateLogin(ctx, username, client)
	require.NoError(e.t, err)

	keys, err := e.keyChain.DeriveKeys(password, initiated.Salt, initiated.EncryptionParams)
	require.NoError(e.t, err)

	A, M1, session, err := proveKeys(keys, initiated)
	require.NoError(e.t, err)
	if tamper != nil {
		tamper(M1)
	}

	resp, err := e.auth.ValidateLogin(ctx, models.ValidateLoginRequest{
		Username:        username,
		ClientEphemeral: A,
		ClientProof:     M1,
	}, client)
	return resp, session, err
}

// login runs a successful handshake and returns the issued tokens.
func (e *testEnv) login(username, password string, client models.ClientInfo) models.TokenPair {
	e.t.Helper()

	resp, session, err := e.handshake(username, password, client, nil)
	require.NoError(e.t, err)
	require.NoError(e.t, session.VerifyServer(resp.ServerProof))
	require.NotNil(e.t, resp.Tokens)

	return *resp.Tokens
}

func (e *testEnv) session(accountID int64, username string, client models.ClientInfo) models.Session {
	return models.Session{AccountID: accountID, Username: username, DeviceID: client.DeviceID}
}

func (e *testEnv) events(username string) []models.AuthEventType {
	e.t.Helper()

	history, err := e.audit.History(context.Background(), username, 0)
	require.NoError(e.t, err)

	types := make([]models.AuthEventType, len(history))
	for i, ev := range history {
		types[i] = ev.EventType
	}
	return types
}
