package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// MemoryStore keeps every server table in process memory. It implements all
// server repository interfaces with the same observable semantics as the
// Postgres repositories and is selected when no DSN is configured.
type MemoryStore struct {
	mu sync.RWMutex

	accounts      map[int64]models.Account
	usernames     map[string]int64
	snapshots     map[int64][]models.VaultSnapshot // ascending by revision
	refreshTokens map[string]models.RefreshToken   // by token value
	keys          map[int64][]models.EncryptionKey
	recoveryCodes map[int64]map[string]*time.Time
	events        []models.AuthEvent
	messages      map[int64][]models.MailboxMessage

	nextAccountID  int64
	nextSnapshotID int64
	nextTokenID    int64
	nextKeyID      int64
	nextEventID    int64
	nextMessageID  int64
}

var (
	_ AccountRepository       = (*MemoryStore)(nil)
	_ SnapshotRepository      = (*MemoryStore)(nil)
	_ RefreshTokenRepository  = (*MemoryStore)(nil)
	_ EncryptionKeyRepository = (*MemoryStore)(nil)
	_ RecoveryCodeRepository  = (*MemoryStore)(nil)
	_ AuditRepository         = (*MemoryStore)(nil)
	_ MessageRepository       = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts:      make(map[int64]models.Account),
		usernames:     make(map[string]int64),
		snapshots:     make(map[int64][]models.VaultSnapshot),
		refreshTokens: make(map[string]models.RefreshToken),
		keys:          make(map[int64][]models.EncryptionKey),
		recoveryCodes: make(map[int64]map[string]*time.Time),
		messages:      make(map[int64][]models.MailboxMessage),
	}
}

// ---- accounts ----

func (m *MemoryStore) CreateAccount(_ context.Context, account models.Account, initial models.VaultSnapshot) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.usernames[account.Username]; ok {
		return models.Account{}, ErrUsernameTaken
	}

	m.nextAccountID++
	account.AccountID = m.nextAccountID
	m.accounts[account.AccountID] = account
	m.usernames[account.Username] = account.AccountID

	initial.AccountID = account.AccountID
	m.nextSnapshotID++
	initial.SnapshotID = m.nextSnapshotID
	m.snapshots[account.AccountID] = []models.VaultSnapshot{initial}

	return account, nil
}

func (m *MemoryStore) FindByUsername(_ context.Context, username string) (models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.usernames[username]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return m.accounts[id], nil
}

func (m *MemoryStore) FindByID(_ context.Context, accountID int64) (models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}
	return account, nil
}

func (m *MemoryStore) RegisterFailedAttempt(_ context.Context, accountID int64, threshold int, lockUntil time.Time) (models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return models.Account{}, ErrAccountNotFound
	}

	if account.FailedAttempts+1 >= threshold {
		account.FailedAttempts = 0
		account.LockedUntil = &lockUntil
	} else {
		account.FailedAttempts++
	}
	m.accounts[accountID] = account

	return account, nil
}

func (m *MemoryStore) ResetFailedAttempts(_ context.Context, accountID int64) error {
	return m.updateAccount(accountID, func(a *models.Account) {
		a.FailedAttempts = 0
		a.LockedUntil = nil
	})
}

func (m *MemoryStore) SetTwoFactor(_ context.Context, accountID int64, secret string, enabled bool) error {
	return m.updateAccount(accountID, func(a *models.Account) {
		a.TOTPSecret = secret
		a.TOTPEnabled = enabled
	})
}

// SetBlocked toggles the administrative block flag. There is no HTTP route
// for it; it exists for operators embedding the store and for tests.
func (m *MemoryStore) SetBlocked(accountID int64, blocked bool) error {
	return m.updateAccount(accountID, func(a *models.Account) {
		a.Blocked = blocked
	})
}

func (m *MemoryStore) updateAccount(accountID int64, update func(a *models.Account)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[accountID]
	if !ok {
		return ErrAccountNotFound
	}
	update(&account)
	m.accounts[accountID] = account

	return nil
}

// ---- snapshots ----

func (m *MemoryStore) AppendSnapshot(_ context.Context, snapshot models.VaultSnapshot) (models.VaultSnapshot, error) {
	return m.appendSnapshot(snapshot, false)
}

func (m *MemoryStore) AppendPasswordChange(_ context.Context, snapshot models.VaultSnapshot) (models.VaultSnapshot, error) {
	return m.appendSnapshot(snapshot, true)
}

func (m *MemoryStore) appendSnapshot(snapshot models.VaultSnapshot, passwordChanged bool) (models.VaultSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	account, ok := m.accounts[snapshot.AccountID]
	if !ok {
		return models.VaultSnapshot{}, ErrAccountNotFound
	}

	history := m.snapshots[snapshot.AccountID]
	if n := len(history); n > 0 && history[n-1].Revision >= snapshot.Revision {
		return models.VaultSnapshot{}, ErrRevisionConflict
	}

	m.nextSnapshotID++
	snapshot.SnapshotID = m.nextSnapshotID
	m.snapshots[snapshot.AccountID] = append(history, snapshot)

	if passwordChanged {
		account.PasswordChangedAt = snapshot.CreatedAt
		m.accounts[account.AccountID] = account
	}

	return snapshot, nil
}

func (m *MemoryStore) GetLatest(_ context.Context, accountID int64) (models.VaultSnapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.snapshots[accountID]
	if len(history) == 0 {
		return models.VaultSnapshot{}, ErrSnapshotNotFound
	}
	return history[len(history)-1], nil
}

func (m *MemoryStore) ListHistory(_ context.Context, accountID int64) ([]models.SnapshotMeta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	history := m.snapshots[accountID]
	metas := make([]models.SnapshotMeta, 0, len(history))
	for _, s := range history {
		metas = append(metas, s.Meta())
	}
	return metas, nil
}

func (m *MemoryStore) DeleteSnapshots(_ context.Context, accountID int64, revisions []int64) (int64, error) {
	if len(revisions) == 0 {
		return 0, nil
	}

	drop := make(map[int64]struct{}, len(revisions))
	for _, r := range revisions {
		drop[r] = struct{}{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	history := m.snapshots[accountID]
	kept := history[:0:0]
	for _, s := range history {
		if _, ok := drop[s.Revision]; !ok {
			kept = append(kept, s)
		}
	}
	m.snapshots[accountID] = kept

	return int64(len(history) - len(kept)), nil
}

// ---- refresh tokens ----

func (m *MemoryStore) ReplaceForDevice(_ context.Context, token models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.deleteTokensLocked(func(t models.RefreshToken) bool {
		return t.AccountID == token.AccountID && t.DeviceID == token.DeviceID
	})
	m.insertTokenLocked(token)

	return nil
}

func (m *MemoryStore) FindByToken(_ context.Context, token string) (models.RefreshToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.refreshTokens[token]
	if !ok {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}
	return t, nil
}

func (m *MemoryStore) FindByPreviousToken(_ context.Context, previous string) (models.RefreshToken, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var (
		found models.RefreshToken
		ok    bool
	)
	for _, t := range m.refreshTokens {
		if t.PreviousToken != nil && *t.PreviousToken == previous && (!ok || t.CreatedAt.After(found.CreatedAt)) {
			found, ok = t, true
		}
	}
	if !ok {
		return models.RefreshToken{}, ErrRefreshTokenNotFound
	}
	return found, nil
}

func (m *MemoryStore) Rotate(_ context.Context, oldToken string, next models.RefreshToken) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.refreshTokens[oldToken]; !ok {
		return ErrRefreshTokenNotFound
	}
	delete(m.refreshTokens, oldToken)
	m.insertTokenLocked(next)

	return nil
}

func (m *MemoryStore) DeleteByDevice(_ context.Context, accountID int64, deviceID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deleteTokensLocked(func(t models.RefreshToken) bool {
		return t.AccountID == accountID && t.DeviceID == deviceID
	}), nil
}

func (m *MemoryStore) DeleteOtherDevices(_ context.Context, accountID int64, keepDeviceID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deleteTokensLocked(func(t models.RefreshToken) bool {
		return t.AccountID == accountID && t.DeviceID != keepDeviceID
	}), nil
}

func (m *MemoryStore) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.deleteTokensLocked(func(t models.RefreshToken) bool {
		return t.IsExpired(now)
	}), nil
}

func (m *MemoryStore) insertTokenLocked(token models.RefreshToken) {
	m.nextTokenID++
	token.TokenID = m.nextTokenID
	m.refreshTokens[token.Token] = token
}

func (m *MemoryStore) deleteTokensLocked(match func(t models.RefreshToken) bool) int64 {
	var deleted int64
	for value, t := range m.refreshTokens {
		if match(t) {
			delete(m.refreshTokens, value)
			deleted++
		}
	}
	return deleted
}

// ---- encryption keys ----

func (m *MemoryStore) AddKey(_ context.Context, key models.EncryptionKey) (models.EncryptionKey, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := m.keys[key.AccountID]
	key.Primary = key.Primary || len(keys) == 0
	if key.Primary {
		for i := range keys {
			keys[i].Primary = false
		}
	}

	m.nextKeyID++
	key.KeyID = m.nextKeyID
	m.keys[key.AccountID] = append(keys, key)

	return key, nil
}

func (m *MemoryStore) GetPrimary(_ context.Context, accountID int64) (models.EncryptionKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, k := range m.keys[accountID] {
		if k.Primary {
			return k, nil
		}
	}
	return models.EncryptionKey{}, ErrKeyNotFound
}

func (m *MemoryStore) ListKeys(_ context.Context, accountID int64) ([]models.EncryptionKey, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]models.EncryptionKey, len(m.keys[accountID]))
	copy(keys, m.keys[accountID])
	return keys, nil
}

func (m *MemoryStore) SetPrimary(_ context.Context, accountID, keyID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	keys := m.keys[accountID]
	found := false
	for _, k := range keys {
		if k.KeyID == keyID {
			found = true
			break
		}
	}
	if !found {
		return ErrKeyNotFound
	}

	for i := range keys {
		keys[i].Primary = keys[i].KeyID == keyID
	}
	return nil
}

// ---- recovery codes ----

func (m *MemoryStore) ReplaceCodes(_ context.Context, accountID int64, codeHashes []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	codes := make(map[string]*time.Time, len(codeHashes))
	for _, h := range codeHashes {
		codes[h] = nil
	}
	m.recoveryCodes[accountID] = codes

	return nil
}

func (m *MemoryStore) ConsumeCode(_ context.Context, accountID int64, codeHash string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	usedAt, ok := m.recoveryCodes[accountID][codeHash]
	if !ok || usedAt != nil {
		return ErrRecoveryCodeNotFound
	}
	m.recoveryCodes[accountID][codeHash] = &at

	return nil
}

// ---- audit ----

func (m *MemoryStore) Record(_ context.Context, event models.AuthEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextEventID++
	event.EventID = m.nextEventID
	m.events = append(m.events, event)

	return nil
}

func (m *MemoryStore) ListByUsername(_ context.Context, username string, limit uint64) ([]models.AuthEvent, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]models.AuthEvent, 0)
	for i := len(m.events) - 1; i >= 0 && uint64(len(events)) < limit; i-- {
		if m.events[i].Username == username {
			events = append(events, m.events[i])
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt.After(events[j].CreatedAt)
	})

	return events, nil
}

// ---- mailbox ----

func (m *MemoryStore) Create(_ context.Context, message models.MailboxMessage) (models.MailboxMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextMessageID++
	message.MessageID = m.nextMessageID
	m.messages[message.AccountID] = append(m.messages[message.AccountID], message)

	return message, nil
}

func (m *MemoryStore) ListByAccount(_ context.Context, accountID int64) ([]models.MailboxMessage, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	messages := make([]models.MailboxMessage, len(m.messages[accountID]))
	copy(messages, m.messages[accountID])
	return messages, nil
}
