// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-issue-bridge service and its CLI. It aggregates all sub-configurations
// and is populated by merging values from environment variables,
// command-line flags, and an optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the installation secret, key derivation parameters and the
	// application version.
	App App `envPrefix:"APP_" yaml:"app"`

	// Storage holds the settings store connection, where the encrypted
	// credential blob lives.
	Storage Storage `envPrefix:"STORAGE_" yaml:"storage"`

	// Server holds network, CORS and rate limiting settings of the bridge API.
	Server Server `envPrefix:"SERVER_" yaml:"server"`

	// Regex bounds the cost of client supplied name filters.
	Regex Regex `envPrefix:"REGEX_" yaml:"regex"`

	// Filters tunes the issue filter engine.
	Filters Filters `envPrefix:"FILTERS_" yaml:"filters"`

	// Workers holds intervals of the background workers.
	Workers Workers `envPrefix:"WORKERS_" yaml:"workers"`

	// Source describes where findings and scope come from when the bridge
	// runs standalone.
	Source Source `envPrefix:"SOURCE_" yaml:"source"`

	// Adapter holds the remote bridge address used by bridgectl.
	Adapter Adapter `envPrefix:"ADAPTER_" yaml:"adapter"`

	// ConfigFilePath is the optional path to a JSON or YAML configuration
	// file. When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG" yaml:"-"`
}

// App holds installation-scoped security settings.
type App struct {
	// InstallationSecret is the secret mixed with a per-write salt to derive
	// the credential vault key. It is never persisted by the bridge.
	// Env: APP_INSTALLATION_SECRET
	InstallationSecret string `env:"INSTALLATION_SECRET" yaml:"installation_secret"`

	// KDFIterations is the PBKDF2 iteration count. Values below 100000 are
	// rejected by validation.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS" yaml:"kdf_iterations"`

	// KeyCacheTTL is how long the decrypted credential cache is trusted
	// before it is lazily rebuilt on read.
	// Env: APP_KEY_CACHE_TTL
	KeyCacheTTL time.Duration `env:"KEY_CACHE_TTL" yaml:"key_cache_ttl"`

	// Version is the version string reported by /health.
	// Env: APP_VERSION
	Version string `env:"VERSION" yaml:"version"`
}

// Storage groups the configuration of the settings store.
type Storage struct {
	// DB holds the settings store connection settings.
	DB DB `envPrefix:"DB_" yaml:"db"`
}

// DB holds the settings store DSN.
type DB struct {
	// DSN selects the settings store backend:
	//   - "memory" or empty: process memory (lost on restart);
	//   - a path ending in .json: a JSON key-value file;
	//   - "sqlite://path" or a path ending in .db/.sqlite: SQLite;
	//   - "postgres://...": PostgreSQL.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN" yaml:"dsn"`
}

// Server holds network and abuse-protection settings for the bridge API.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "127.0.0.1:8090").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" yaml:"http_address"`

	// RequestTimeout bounds reading a request and writing a response.
	// The push channel is exempt once upgraded.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" yaml:"shutdown_timeout"`

	// AllowedOrigins is the CORS allow-list. "*" allows every origin.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," yaml:"allowed_origins"`

	// TrustProxyHeaders makes X-Forwarded-For / X-Real-IP the client
	// identity used by rate limiting. Enable only behind a trusted proxy.
	// Env: SERVER_TRUST_PROXY_HEADERS
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" yaml:"trust_proxy_headers"`

	// RateLimit configures the per-client fixed window.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_" yaml:"rate_limit"`
}

// RateLimit configures the fixed-window request budget per client address.
type RateLimit struct {
	// Capacity is the number of requests allowed per window.
	// Env: SERVER_RATE_LIMIT_CAPACITY
	Capacity int `env:"CAPACITY" yaml:"capacity"`

	// Window is the window length.
	// Env: SERVER_RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW" yaml:"window"`

	// IdleTTL is how long an untouched window is kept before it is swept.
	// Env: SERVER_RATE_LIMIT_IDLE_TTL
	IdleTTL time.Duration `env:"IDLE_TTL" yaml:"idle_ttl"`
}

// Regex bounds compile-time and match-time cost of name filters.
type Regex struct {
	// MaxLength is the longest accepted pattern.
	// Env: REGEX_MAX_LENGTH
	MaxLength int `env:"MAX_LENGTH" yaml:"max_length"`

	// MaxQuantifiers caps the total number of '*' and '+' tokens.
	// Env: REGEX_MAX_QUANTIFIERS
	MaxQuantifiers int `env:"MAX_QUANTIFIERS" yaml:"max_quantifiers"`

	// MaxRepetition caps the upper bound of {m,n} repetitions.
	// Env: REGEX_MAX_REPETITION
	MaxRepetition int `env:"MAX_REPETITION" yaml:"max_repetition"`

	// CompileTimeout is the wall-clock budget of a compilation.
	// Env: REGEX_COMPILE_TIMEOUT
	CompileTimeout time.Duration `env:"COMPILE_TIMEOUT" yaml:"compile_timeout"`

	// MatchTimeout is the wall-clock budget of a single match.
	// Env: REGEX_MATCH_TIMEOUT
	MatchTimeout time.Duration `env:"MATCH_TIMEOUT" yaml:"match_timeout"`

	// Workers is the size of the regex worker pool.
	// Env: REGEX_WORKERS
	Workers int `env:"WORKERS" yaml:"workers"`
}

// Filters tunes the issue filter engine.
type Filters struct {
	// StrictThresholds rejects unknown minSeverity/minConfidence values with
	// 400 instead of letting every finding through.
	// Env: FILTERS_STRICT_THRESHOLDS
	StrictThresholds bool `env:"STRICT_THRESHOLDS" yaml:"strict_thresholds"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BroadcastInterval is how often the finding count is polled.
	// Env: WORKERS_BROADCAST_INTERVAL
	BroadcastInterval time.Duration `env:"BROADCAST_INTERVAL" yaml:"broadcast_interval"`

	// RateLimitSweepInterval is how often idle rate-limit windows are evicted.
	// Env: WORKERS_RATE_LIMIT_SWEEP_INTERVAL
	RateLimitSweepInterval time.Duration `env:"RATE_LIMIT_SWEEP_INTERVAL" yaml:"rate_limit_sweep_interval"`
}

// Source describes the standalone finding source and scope oracle.
type Source struct {
	// FindingsFile is a JSON or YAML file holding the live finding list.
	// It is re-read whenever its modification time changes.
	// Env: SOURCE_FINDINGS_FILE
	FindingsFile string `env:"FINDINGS_FILE" yaml:"findings_file"`

	// ScopePrefixes are URL prefixes considered in scope.
	// Env: SOURCE_SCOPE_PREFIXES (comma separated)
	ScopePrefixes []string `env:"SCOPE_PREFIXES" envSeparator:"," yaml:"scope_prefixes"`
}

// Adapter holds the remote bridge connection used by bridgectl.
type Adapter struct {
	// HTTPAddress is the bridge base address (e.g. "http://127.0.0.1:8090").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS" yaml:"http_address"`

	// Token is the bearer token presented to the bridge.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN" yaml:"token"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" yaml:"request_timeout"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//
// Unset fields are then filled from [Defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withFile("").
		build()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

// LoadConfig loads environment variables and the optional config file at
// path (overriding CONFIG) and fills defaults. It does not parse flags and
// does not validate; callers validate the parts they use with
// [StructuredConfig.ValidateVault] and [StructuredConfig.ValidateAdapter].
func LoadConfig(path string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFile(path).
		build()
}
