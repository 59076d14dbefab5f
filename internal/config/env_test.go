// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.yaml",

		"APP_INSTALLATION_SECRET": "install-secret",
		"APP_KDF_ITERATIONS":      "150000",
		"APP_KEY_CACHE_TTL":       "10s",
		"APP_VERSION":             "1.2.3",

		"STORAGE_DB_DSN": "sqlite:///var/lib/bridge/settings.db",

		"SERVER_ADDRESS":             "127.0.0.1:9000",
		"SERVER_REQUEST_TIMEOUT":     "30s",
		"SERVER_ALLOWED_ORIGINS":     "http://localhost:3000,https://app.example.com",
		"SERVER_TRUST_PROXY_HEADERS": "true",
		"SERVER_RATE_LIMIT_CAPACITY": "50",
		"SERVER_RATE_LIMIT_WINDOW":   "2m",

		"REGEX_MAX_LENGTH":    "128",
		"REGEX_MATCH_TIMEOUT": "250ms",

		"FILTERS_STRICT_THRESHOLDS": "true",

		"WORKERS_BROADCAST_INTERVAL": "3s",

		"SOURCE_FINDINGS_FILE":  "/tmp/findings.json",
		"SOURCE_SCOPE_PREFIXES": "https://a.example.com/,https://b.example.com/",

		"ADAPTER_ADDRESS": "http://127.0.0.1:9000",
		"ADAPTER_TOKEN":   "tok",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.yaml", cfg.ConfigFilePath)

	assert.Equal(t, "install-secret", cfg.App.InstallationSecret)
	assert.Equal(t, 150000, cfg.App.KDFIterations)
	assert.Equal(t, 10*time.Second, cfg.App.KeyCacheTTL)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "sqlite:///var/lib/bridge/settings.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.Server.AllowedOrigins)
	assert.True(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, 50, cfg.Server.RateLimit.Capacity)
	assert.Equal(t, 2*time.Minute, cfg.Server.RateLimit.Window)

	assert.Equal(t, 128, cfg.Regex.MaxLength)
	assert.Equal(t, 250*time.Millisecond, cfg.Regex.MatchTimeout)

	assert.True(t, cfg.Filters.StrictThresholds)
	assert.Equal(t, 3*time.Second, cfg.Workers.BroadcastInterval)

	assert.Equal(t, "/tmp/findings.json", cfg.Source.FindingsFile)
	assert.Len(t, cfg.Source.ScopePrefixes, 2)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "tok", cfg.Adapter.Token)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "", cfg.ConfigFilePath)
	assert.Equal(t, App{}, cfg.App)
	assert.Equal(t, Storage{}, cfg.Storage)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SERVER_REQUEST_TIMEOUT": "invalid_duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "env")
}

func TestParseEnv_DurationFormats(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{"hours", "2h", 2 * time.Hour},
		{"minutes", "45m", 45 * time.Minute},
		{"seconds", "30s", 30 * time.Second},
		{"combined", "1h30m", 90 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, map[string]string{
				"SERVER_REQUEST_TIMEOUT": tt.envValue,
			})

			cfg := &StructuredConfig{}
			err := parseEnv(cfg)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Server.RequestTimeout)
		})
	}
}

// Helpers

var knownEnvKeys = []string{
	"CONFIG",
	"APP_INSTALLATION_SECRET", "APP_KDF_ITERATIONS", "APP_KEY_CACHE_TTL", "APP_VERSION",
	"STORAGE_DB_DSN",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_ALLOWED_ORIGINS",
	"SERVER_TRUST_PROXY_HEADERS", "SERVER_RATE_LIMIT_CAPACITY", "SERVER_RATE_LIMIT_WINDOW",
	"SERVER_RATE_LIMIT_IDLE_TTL",
	"REGEX_MAX_LENGTH", "REGEX_MAX_QUANTIFIERS", "REGEX_MAX_REPETITION", "REGEX_COMPILE_TIMEOUT",
	"REGEX_MATCH_TIMEOUT", "REGEX_WORKERS",
	"FILTERS_STRICT_THRESHOLDS",
	"WORKERS_BROADCAST_INTERVAL", "WORKERS_RATE_LIMIT_SWEEP_INTERVAL",
	"SOURCE_FINDINGS_FILE", "SOURCE_SCOPE_PREFIXES",
	"ADAPTER_ADDRESS", "ADAPTER_TOKEN", "ADAPTER_REQUEST_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every known key for the duration of the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range knownEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
