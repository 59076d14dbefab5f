package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *StructuredConfig {
	cfg := Defaults()
	cfg.App.InstallationSecret = "secret"
	return cfg
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing secret",
			mutate:  func(c *StructuredConfig) { c.App.InstallationSecret = "  " },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "weak kdf",
			mutate:  func(c *StructuredConfig) { c.App.KDFIterations = 1000 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "no address",
			mutate:  func(c *StructuredConfig) { c.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero rate limit",
			mutate:  func(c *StructuredConfig) { c.Server.RateLimit.Capacity = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero regex workers",
			mutate:  func(c *StructuredConfig) { c.Regex.Workers = 0 },
			wantErr: ErrInvalidRegexConfigs,
		},
		{
			name:    "zero broadcast interval",
			mutate:  func(c *StructuredConfig) { c.Workers.BroadcastInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidateAdapter(t *testing.T) {
	cfg := Defaults()
	assert.ErrorIs(t, cfg.ValidateAdapter(), ErrInvalidAdapterConfigs)

	cfg.Adapter.Token = "token"
	assert.NoError(t, cfg.ValidateAdapter())
}
