package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	vaultService ClientVaultService

	// onError receives every failed pull. Nil means errors are dropped.
	onError func(error)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls vaultService.Pull on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(vaultService ClientVaultService, onError func(error)) ClientSyncJob {
	return &clientSyncJob{vaultService: vaultService, onError: onError}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that pulls the vault every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, username string, keys crypto.VaultKeys, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, err := j.vaultService.Pull(jobCtx, username, keys); err != nil && j.onError != nil {
					j.onError(err)
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context
// and blocks until the goroutine has exited. Safe to call when the job is not
// running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
