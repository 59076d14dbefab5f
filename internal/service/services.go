package service

import (
	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/crypto"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/store"
	"github.com/MKhiriev/go-issue-bridge/models"
)

// Services bundles everything the transport and the workers depend on.
type Services struct {
	KeyRegistry    KeyRegistry
	RateLimiter    RateLimiter
	AuthGate       AuthGate
	IssueService   IssueService
	BroadcastHub   BroadcastHub
	BroadcastJob   BroadcastJob
	AppInfoService AppInfoService
}

// Collaborators are the external inputs of the bridge.
type Collaborators struct {
	Settings store.SettingsStore
	Vault    crypto.Vault
	Source   FindingSource
	Scope    ScopeOracle
	Build    models.AppBuildInfo
}

func NewServices(c Collaborators, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, c.Build)
	if err != nil {
		return nil, err
	}

	registry := NewKeyRegistry(c.Settings, c.Vault, cfg.App.KeyCacheTTL, logger)
	limiter := NewRateLimiter(cfg.Server.RateLimit)
	filter := NewIssueFilter(NewSafeRegexCompiler(cfg.Regex, logger), c.Scope, cfg.Filters, logger)
	hub := NewBroadcastHub(logger)

	return &Services{
		KeyRegistry:    registry,
		RateLimiter:    limiter,
		AuthGate:       NewAuthGate(registry, limiter, logger),
		IssueService:   NewIssueService(c.Source, filter, NewSyncService(), logger),
		BroadcastHub:   hub,
		BroadcastJob:   NewBroadcastJob(c.Source, hub, logger),
		AppInfoService: appInfo,
	}, nil
}
