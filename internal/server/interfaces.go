package server

import "context"

// Server is the lifecycle of all transport servers and background workers.
type Server interface {
	// RunServer serves until a termination signal arrives.
	RunServer() error

	// Run serves until ctx is done and returns after a graceful shutdown.
	Run(ctx context.Context) error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
