// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// MinKDFIterations is the lowest accepted PBKDF2 iteration count.
const MinKDFIterations = 100_000

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if err := cfg.ValidateVault(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit.Capacity <= 0 || cfg.Server.RateLimit.Window <= 0 {
		return fmt.Errorf("%w: rate limit capacity and window must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Regex.MaxLength <= 0 || cfg.Regex.Workers <= 0 ||
		cfg.Regex.CompileTimeout <= 0 || cfg.Regex.MatchTimeout <= 0 {
		return ErrInvalidRegexConfigs
	}

	if cfg.Workers.BroadcastInterval <= 0 || cfg.Workers.RateLimitSweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateVault checks the settings needed to open the credential vault.
func (cfg *StructuredConfig) ValidateVault() error {
	if strings.TrimSpace(cfg.App.InstallationSecret) == "" {
		return fmt.Errorf("%w: installation secret is required", ErrInvalidAppConfigs)
	}
	if cfg.App.KDFIterations < MinKDFIterations {
		return fmt.Errorf("%w: kdf iterations must be at least %d", ErrInvalidAppConfigs, MinKDFIterations)
	}
	return nil
}

// ValidateAdapter checks the settings needed to talk to a remote bridge.
func (cfg *StructuredConfig) ValidateAdapter() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and request timeout are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidAdapterConfigs)
	}
	return nil
}
