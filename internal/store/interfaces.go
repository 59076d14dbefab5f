package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_store_mock.go -package=mock

// SettingsStore is a small string key-value store. The bridge keeps exactly
// one value in it: the encrypted credential blob.
type SettingsStore interface {
	// Get returns the value stored under key, or [ErrSettingNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Close releases the underlying resources.
	Close() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
