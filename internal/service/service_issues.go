package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/models"
)

type issueService struct {
	source FindingSource
	filter IssueFilter
	sync   SyncService
	logger *logger.Logger
}

// NewIssueService builds the [IssueService] answering the issue routes from
// source.
func NewIssueService(source FindingSource, filter IssueFilter, sync SyncService, logger *logger.Logger) IssueService {
	return &issueService{source: source, filter: filter, sync: sync, logger: logger}
}

// Sync filters the live findings by q and diffs them against known.
func (s *issueService) Sync(ctx context.Context, q models.IssueQuery, known []string) (models.SyncResponse, error) {
	findings, err := s.list(ctx)
	if err != nil {
		return models.SyncResponse{}, err
	}

	issues, err := s.filter.Filter(ctx, findings, q)
	if err != nil {
		return models.SyncResponse{}, err
	}

	return s.sync.BuildSyncDiff(ctx, issues, known)
}

// Get returns the first live finding whose fingerprint is id. Filters do not
// apply.
func (s *issueService) Get(ctx context.Context, id string) (models.Issue, error) {
	if !IsFingerprint(id) {
		return models.Issue{}, ErrIssueNotFound
	}

	findings, err := s.list(ctx)
	if err != nil {
		return models.Issue{}, err
	}

	for _, f := range findings {
		if Fingerprint(f) == id {
			return models.Issue{ID: id, Finding: f}, nil
		}
	}
	return models.Issue{}, ErrIssueNotFound
}

// Count reports the number of live findings, unfiltered.
func (s *issueService) Count(ctx context.Context) (int, error) {
	n, err := s.source.Count(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*issueService.Count").Msg("error counting findings")
		return 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return n, nil
}

func (s *issueService) list(ctx context.Context) ([]models.Finding, error) {
	findings, err := s.source.List(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*issueService.list").Msg("error listing findings")
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return findings, nil
}
