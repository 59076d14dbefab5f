package store

import "errors"

// Sentinel errors returned by settings stores. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrSettingNotFound is returned by Get when nothing is stored under the key.
	ErrSettingNotFound = errors.New("setting not found")

	// ErrUnsupportedDSN is returned when no store matches the configured DSN.
	ErrUnsupportedDSN = errors.New("unsupported settings store dsn")

	// ErrStoreClosed is returned by operations on a closed store.
	ErrStoreClosed = errors.New("settings store is closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL store when a statement fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan setting row")
)
