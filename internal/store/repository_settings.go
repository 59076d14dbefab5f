// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// sqlSettingsStore is the database/sql implementation of [SettingsStore]
// shared by the SQLite and PostgreSQL backends.
type sqlSettingsStore struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLSettingsStore wraps an open, migrated [DB].
func NewSQLSettingsStore(db *DB, logger *logger.Logger) SettingsStore {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql settings store")
	return &sqlSettingsStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Get implements [SettingsStore].
//
// Error handling:
//   - no row → [ErrSettingNotFound];
//   - query failure → wrapped [ErrExecutingQuery] (retried while the
//     classifier says the error is transient).
func (s *sqlSettingsStore) Get(ctx context.Context, key string) (string, error) {
	query, args, err := buildGetSettingQuery(s.db.placeholder(), key)
	if err != nil {
		return "", err
	}

	var value string
	err = s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrSettingNotFound
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("func", "*sqlSettingsStore.Get").Msg("error reading setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set implements [SettingsStore].
func (s *sqlSettingsStore) Set(ctx context.Context, key, value string) error {
	query, args, err := buildUpsertSettingQuery(s.db.placeholder(), key, value, s.now().UTC())
	if err != nil {
		return err
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlSettingsStore.Set").Msg("error writing setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Close implements [SettingsStore].
func (s *sqlSettingsStore) Close() error {
	return s.db.Close()
}

func (s *sqlSettingsStore) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if s.db.errorClassificator == nil || s.db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		s.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying transient database error")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
