package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/adapter"
	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/crypto"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/store"
	"github.com/stretchr/testify/require"
)

// testEnv wires commands to an in-memory registry and a caller-supplied
// adapter.
type testEnv struct {
	cfg      *config.StructuredConfig
	registry service.KeyRegistry
	client   adapter.ServerAdapter

	adapterCfg config.Adapter
	opened     int
	closed     int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	vault, err := crypto.NewVault("test-installation-secret", crypto.MinIterations)
	require.NoError(t, err)

	return &testEnv{
		cfg: &config.StructuredConfig{
			Adapter: config.Adapter{
				HTTPAddress:    "http://127.0.0.1:8090",
				Token:          "cfg-token",
				RequestTimeout: 5 * time.Second,
			},
		},
		registry: service.NewKeyRegistry(store.NewMemorySettingsStore(), vault, 0, logger.Nop()),
	}
}

func (e *testEnv) cliEnv() *cliEnv {
	return &cliEnv{
		loadConfig: func(string) (*config.StructuredConfig, error) {
			cp := *e.cfg
			return &cp, nil
		},
		newAdapter: func(cfg config.Adapter, _ *logger.Logger) (adapter.ServerAdapter, error) {
			e.adapterCfg = cfg
			return e.client, nil
		},
		openRegistry: func(context.Context, *config.StructuredConfig, *logger.Logger) (service.KeyRegistry, func() error, error) {
			e.opened++
			return e.registry, func() error { e.closed++; return nil }, nil
		},
	}
}

// run executes bridgectl with args and returns stdout.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(e.cliEnv())
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}
