// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment through the env and
// envPrefix tags (SERVER_ADDRESS, REGEX_MAX_LENGTH and so on). Unset
// variables leave fields at their zero value so the merge in
// configBuilder.build keeps lower-priority values.
func parseEnv(cfg any) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("env configs: %w", err)
	}
	return nil
}
