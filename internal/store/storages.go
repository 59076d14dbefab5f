package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
)

// NewSettingsStore picks a [SettingsStore] implementation from cfg.DSN:
//
//	""/"memory"                   in-memory
//	*.json                        JSON file
//	sqlite://path, *.db, *.sqlite SQLite (migrated on open)
//	postgres://, postgresql://    PostgreSQL (migrated on open)
func NewSettingsStore(ctx context.Context, cfg config.DB, log *logger.Logger) (SettingsStore, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	lower := strings.ToLower(dsn)

	switch {
	case dsn == "" || lower == "memory":
		log.Warn().Msg("using in-memory settings store, credentials are lost on restart")
		return NewMemorySettingsStore(), nil

	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		db, err := NewConnectPostgres(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return migrated(db, log)

	case strings.HasPrefix(lower, "sqlite://"):
		db, err := NewConnectSQLite(ctx, dsn[len("sqlite://"):], log)
		if err != nil {
			return nil, err
		}
		return migrated(db, log)

	case strings.HasSuffix(lower, ".db"), strings.HasSuffix(lower, ".sqlite"), strings.HasSuffix(lower, ".sqlite3"):
		db, err := NewConnectSQLite(ctx, dsn, log)
		if err != nil {
			return nil, err
		}
		return migrated(db, log)

	case strings.HasSuffix(lower, ".json"):
		return NewFileSettingsStore(dsn)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}

func migrated(db *DB, log *logger.Logger) (SettingsStore, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.migrated").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}
	return NewSQLSettingsStore(db, log), nil
}
