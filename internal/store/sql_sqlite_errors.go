package store

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for the modernc
// SQLite driver. Lock contention is retryable; everything else is not.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sErr *sqlite.Error
	if err == nil || !errors.As(err, &sErr) {
		return NonRetryable
	}

	// extended result codes carry the primary code in the low byte
	switch sErr.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return Retryable
	}
	return NonRetryable
}
