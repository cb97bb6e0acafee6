// Package server runs the vault's REST and gRPC health listeners together
// with the background workers, and stops all of them on SIGTERM, SIGINT or
// SIGQUIT.
package server
