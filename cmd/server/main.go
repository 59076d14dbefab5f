package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/crypto"
	"github.com/MKhiriev/go-issue-bridge/internal/handler"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/server"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/source"
	"github.com/MKhiriev/go-issue-bridge/internal/store"
	"github.com/MKhiriev/go-issue-bridge/internal/workers"
	"github.com/MKhiriev/go-issue-bridge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-issue-bridge")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	settings, err := store.NewSettingsStore(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating settings store")
	}

	vault, err := crypto.NewVault(cfg.App.InstallationSecret, cfg.App.KDFIterations)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating credential vault")
	}

	services, err := service.NewServices(service.Collaborators{
		Settings: settings,
		Vault:    vault,
		Source:   findingSource(cfg.Source, log),
		Scope:    source.NewPrefixScopeOracle(cfg.Source.ScopePrefixes),
		Build:    models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	if len(services.KeyRegistry.List(context.Background())) == 0 {
		log.Warn().Msg("no credentials registered, every request will be rejected; add one with bridgectl keys add")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, server.Dependencies{
		PushChannels: services.BroadcastHub,
		Workers:      workers.NewWorkers(services, cfg.Workers, log),
		Closers:      []io.Closer{vault, settings},
	}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Err(err).Msg("server stopped with error")
		os.Exit(1)
	}
}

// findingSource reads the configured findings file. Without one the bridge
// serves an empty list.
func findingSource(cfg config.Source, log *logger.Logger) service.FindingSource {
	if cfg.FindingsFile == "" {
		log.Warn().Msg("no findings file configured, serving an empty finding list")
		return source.NewStaticFindingSource()
	}
	return source.NewFileFindingSource(cfg.FindingsFile, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
