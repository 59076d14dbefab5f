package service

import (
	"context"

	"github.com/MKhiriev/go-issue-bridge/models"
)

//go:generate mockgen -source=collaborators.go -destination=../mock/collaborators_mock.go -package=mock

// FindingSource is the scanning engine's live finding list.
type FindingSource interface {
	List(ctx context.Context) ([]models.Finding, error)
	Count(ctx context.Context) (int, error)
}

// ScopeOracle answers whether a URL is inside the configured testing scope.
type ScopeOracle interface {
	IsInScope(ctx context.Context, url string) (bool, error)
}
