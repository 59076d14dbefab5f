package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const settingsTable = "bridge_settings"

// buildGetSettingQuery selects the value stored under key.
func buildGetSettingQuery(ph sq.PlaceholderFormat, key string) (string, []any, error) {
	query, args, err := sq.Select("value").
		From(settingsTable).
		Where(sq.Eq{"name": key}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertSettingQuery inserts key or overwrites its value. ON CONFLICT
// ... DO UPDATE is understood by both PostgreSQL and SQLite 3.24+.
func buildUpsertSettingQuery(ph sq.PlaceholderFormat, key, value string, at time.Time) (string, []any, error) {
	query, args, err := sq.Insert(settingsTable).
		Columns("name", "value", "updated_at").
		Values(key, value, at).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
