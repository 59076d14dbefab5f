package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells sqlSettingsStore.withRetry whether a failed
// statement is worth another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for anything not known to be transient.
	NonRetryable ErrorClassification = iota
	// Retryable marks lost connections, lock contention and rolled back
	// transactions.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that are not
// *pgconn.PgError are [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a SQLSTATE to a classification. Connection
// exceptions (class 08), transaction rollbacks (class 40, which covers
// serialization failures and deadlocks) and a server that is starting or
// shutting down are retryable. Constraint violations on the settings upsert
// and everything else are not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.CannotConnectNow,
		code == pgerrcode.AdminShutdown,
		code == pgerrcode.CrashShutdown:
		return Retryable
	}
	return NonRetryable
}
