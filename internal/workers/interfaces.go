// Package workers runs the server's background jobs next to the transport
// servers. Every worker stops when its context is cancelled.
package workers

import "context"

// Worker is a long-running background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// ExpiredTokenSweeper deletes refresh tokens whose lifetime has passed and
// reports how many were removed.
type ExpiredTokenSweeper interface {
	SweepExpired(ctx context.Context) (int64, error)
}
