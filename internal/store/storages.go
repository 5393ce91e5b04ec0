package store

import (
	"context"
	"fmt"

	"github.com/staffly/offline-sync/internal/config"
	"github.com/staffly/offline-sync/internal/logger"
)

// SessionTokenKey is the offline-cache key under which the bearer token of
// the current session is persisted.
const SessionTokenKey = "session/token"

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Operations is the SQLite-backed pending-operation queue.
	Operations OperationRepository

	// Cache is the generic offline cache for read data and the session
	// token, plus storage usage reporting.
	Cache CacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails. Initialisation is idempotent: re-running against an
// existing database applies only outstanding migrations.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Operations: NewOperationRepository(db, logger),
		Cache:      NewCacheRepository(db, logger),
	}, nil
}
