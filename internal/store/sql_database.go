package store

import (
	"database/sql"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names understood by [migrations.Migrate] and the query builders.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB with the dialect-specific pieces the settings store
// needs: placeholder format, migration dialect and error classification.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies every embedded migration for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

func (db *DB) placeholder() sq.PlaceholderFormat {
	if db.dialect == DialectPostgres {
		return sq.Dollar
	}
	return sq.Question
}
