package service

import "sync"

// accountLocker serializes mutating operations per account within the
// process. Unique constraints in the store catch what slips past it when
// several server instances share one database.
type accountLocker struct {
	mu    sync.Mutex
	locks map[int64]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func newAccountLocker() *accountLocker {
	return &accountLocker{locks: make(map[int64]*accountLock)}
}

// lock blocks until the caller owns accountID and returns the release
// function. Locks are not reentrant.
func (l *accountLocker) lock(accountID int64) func() {
	l.mu.Lock()
	entry, ok := l.locks[accountID]
	if !ok {
		entry = &accountLock{}
		l.locks[accountID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, accountID)
		}
		l.mu.Unlock()
	}
}
