package store

import (
	"database/sql"

	"github.com/staffly/offline-sync/internal/logger"
	"github.com/staffly/offline-sync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
