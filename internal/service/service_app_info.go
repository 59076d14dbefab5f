package service

import (
	"context"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/models"
)

type appInfoService struct {
	version string
	build   models.AppBuildInfo
}

// NewAppInfoService reports cfg.Version, falling back to the linker-injected
// build version when the config leaves it empty.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo) (AppInfoService, error) {
	version := cfg.Version
	if version == "" || version == "N/A" {
		version = build.BuildVersion()
	}
	if version == "" || version == "N/A" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, build: build}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
