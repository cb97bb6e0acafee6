package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/client"
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log := logger.NewClientLogger("go-pass-vault-client")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := client.NewRootCommand(fmt.Sprintf("%s (built %s, commit %s)", buildInfo.BuildVersion(), buildInfo.BuildDate(), buildInfo.BuildCommit()), newAppFactory(buildInfo.BuildVersion(), log))
	if err := root.ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newAppFactory wires the client stack for a single command.
func newAppFactory(clientVersion string, log *logger.Logger) client.AppFactory {
	return func(ctx context.Context, configPath string, out io.Writer) (*client.App, func(), error) {
		cfg, err := config.GetClientConfig(configPath)
		if err != nil {
			return nil, nil, fmt.Errorf("error getting configs: %w", err)
		}

		serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
		if err != nil {
			return nil, nil, fmt.Errorf("create server adapter: %w", err)
		}

		db, err := store.NewConnectSQLite(ctx, cfg.Storage, log)
		if err != nil {
			return nil, nil, fmt.Errorf("create local storage: %w", err)
		}

		params := models.KDFParams{
			Iterations:  cfg.KDF.Iterations,
			MemoryKiB:   cfg.KDF.MemoryKiB,
			Parallelism: cfg.KDF.Parallelism,
		}
		onSyncError := func(err error) {
			log.Warn().Err(err).Msg("background sync failed")
		}
		services := service.NewClientServices(store.NewLocalVaultRepository(db, log), serverAdapter, params, client.ClientID, onSyncError)

		app := client.NewApp(services, client.NewTerminalPrompter(os.Stdin, out), out, clientVersion, log)
		release := func() {
			if err := db.Close(); err != nil {
				log.Err(err).Msg("close local storage")
			}
		}
		return app, release, nil
	}
}
