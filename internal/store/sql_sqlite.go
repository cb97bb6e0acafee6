package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// inMemorySQLite keeps the client cache in memory, mostly for tests.
const inMemorySQLite = ":memory:"

const createCachedVaultsTable = `CREATE TABLE IF NOT EXISTS cached_vaults (
	username          TEXT PRIMARY KEY,
	revision          INTEGER NOT NULL,
	version           TEXT NOT NULL,
	blob              BLOB NOT NULL,
	salt              BLOB NOT NULL,
	encryption_algo   TEXT NOT NULL,
	encryption_params TEXT NOT NULL,
	synced_at         TIMESTAMP NOT NULL
);`

// NewConnectSQLite opens (and if needed creates) the client cache database
// and makes sure its schema exists.
func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*sql.DB, error) {
	path := cfg.Path
	if path == "" {
		path = inMemorySQLite
	}

	// db will be in file
	if path != inMemorySQLite {
		if err := createLocalDBFileIfNotExists(path); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// every new connection to ":memory:" would see an empty database
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}

	if _, err = conn.ExecContext(ctx, createCachedVaultsTable); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating schema")
		_ = conn.Close()
		return nil, fmt.Errorf("error creating local schema: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return conn, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("error checking DB file: %w", err)
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating DB dir: %w", err)
		}
	}

	// if not found - create
	f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}

	return f.Close()
}
