package main

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-issue-bridge/internal/adapter"
	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/crypto"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/store"
	"github.com/spf13/cobra"
)

// cliEnv holds the constructors commands use, swapped out in tests.
type cliEnv struct {
	loadConfig   func(path string) (*config.StructuredConfig, error)
	newAdapter   func(cfg config.Adapter, log *logger.Logger) (adapter.ServerAdapter, error)
	openRegistry func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.KeyRegistry, func() error, error)
}

func defaultEnv() *cliEnv {
	return &cliEnv{
		loadConfig:   config.LoadConfig,
		newAdapter:   adapter.NewHTTPServerAdapter,
		openRegistry: openLocalRegistry,
	}
}

// openLocalRegistry opens the settings store and the vault the server uses,
// so keys added here are accepted by the bridge on its next cache rebuild.
func openLocalRegistry(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (service.KeyRegistry, func() error, error) {
	if err := cfg.ValidateVault(); err != nil {
		return nil, nil, err
	}

	settings, err := store.NewSettingsStore(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, err
	}

	vault, err := crypto.NewVault(cfg.App.InstallationSecret, cfg.App.KDFIterations)
	if err != nil {
		_ = settings.Close()
		return nil, nil, err
	}

	closeAll := func() error {
		return errors.Join(vault.Close(), settings.Close())
	}
	return service.NewKeyRegistry(settings, vault, cfg.App.KeyCacheTTL, log), closeAll, nil
}

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configPath string
	address    string
	token      string
	verbose    bool

	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func newRootCmd(env *cliEnv) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "bridgectl",
		Short: "Manage and query a go-issue-bridge installation",
		Long: `bridgectl manages the bearer credentials of a go-issue-bridge installation
and queries a running bridge: health, differential sync, single issues and
the push channel.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := env.loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			if opts.address != "" {
				cfg.Adapter.HTTPAddress = opts.address
			}
			if opts.token != "" {
				cfg.Adapter.Token = opts.token
			}

			opts.cfg = cfg
			opts.logger = logger.NewConsoleLogger("bridgectl", cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "JSON or YAML config file")
	flags.StringVar(&opts.address, "address", "", "bridge address (overrides ADAPTER_ADDRESS)")
	flags.StringVar(&opts.token, "token", "", "bearer token (overrides ADAPTER_TOKEN)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newKeysCmd(env, opts),
		newHealthCmd(env, opts),
		newSyncCmd(env, opts),
		newGetCmd(env, opts),
		newWatchCmd(env, opts),
	)

	return root
}
