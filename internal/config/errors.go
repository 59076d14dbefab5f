package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing installation secret or too few KDF iterations).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty listen address or non-positive rate limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidRegexConfigs indicates invalid regex limits.
	ErrInvalidRegexConfigs = errors.New("invalid regex configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero broadcast interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address or token).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
