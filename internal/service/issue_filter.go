package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/models"
)

type issueFilter struct {
	regex  RegexCompiler
	scope  ScopeOracle
	strict bool
	logger *logger.Logger
}

// NewIssueFilter builds the [IssueFilter]. With cfg.StrictThresholds an
// unknown severity or confidence threshold is rejected; otherwise it lets
// everything through.
func NewIssueFilter(regex RegexCompiler, scope ScopeOracle, cfg config.Filters, logger *logger.Logger) IssueFilter {
	return &issueFilter{regex: regex, scope: scope, strict: cfg.StrictThresholds, logger: logger}
}

// Filter returns the findings passing every filter in q, paired with their
// fingerprints, in source order. Findings sharing a fingerprint collapse to
// the first occurrence.
func (f *issueFilter) Filter(ctx context.Context, findings []models.Finding, q models.IssueQuery) ([]models.Issue, error) {
	log := logger.FromContext(ctx)

	minSeverity, checkSeverity, err := f.severityThreshold(ctx, q.MinSeverity)
	if err != nil {
		return nil, err
	}
	minConfidence, checkConfidence, err := f.confidenceThreshold(ctx, q.MinConfidence)
	if err != nil {
		return nil, err
	}

	matcher, err := f.regex.Compile(ctx, q.NameRegex)
	if err != nil {
		log.Info().Err(err).Msg("name filter rejected")
		return nil, err
	}

	issues := make([]models.Issue, 0, len(findings))
	seen := make(map[string]struct{}, len(findings))

	for _, finding := range findings {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		if checkSeverity {
			if rank, ok := finding.Severity.Rank(); !ok || rank < minSeverity {
				continue
			}
		}
		if checkConfidence {
			if rank, ok := finding.Confidence.Rank(); !ok || rank < minConfidence {
				continue
			}
		}

		if q.InScopeOnly {
			inScope, scopeErr := f.scope.IsInScope(ctx, finding.BaseURL)
			if scopeErr != nil {
				log.Warn().Err(scopeErr).Str("url", finding.BaseURL).Msg("scope check failed, excluding finding")
				continue
			}
			if !inScope {
				continue
			}
		}

		if !matcher.Match(ctx, finding.Name) {
			continue
		}

		id := Fingerprint(finding)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		issues = append(issues, models.Issue{ID: id, Finding: finding})
	}

	return issues, nil
}

// severityThreshold resolves the minimum severity rank. check is false when
// every finding passes.
func (f *issueFilter) severityThreshold(ctx context.Context, raw string) (rank int, check bool, err error) {
	if raw == "" {
		return 0, false, nil
	}
	rank, ok := models.ParseSeverity(raw).Rank()
	if !ok {
		return 0, false, f.unknownThreshold(ctx, "minSeverity", raw)
	}
	return rank, true, nil
}

func (f *issueFilter) confidenceThreshold(ctx context.Context, raw string) (rank int, check bool, err error) {
	if raw == "" {
		return 0, false, nil
	}
	rank, ok := models.ParseConfidence(raw).Rank()
	if !ok {
		return 0, false, f.unknownThreshold(ctx, "minConfidence", raw)
	}
	return rank, true, nil
}

func (f *issueFilter) unknownThreshold(ctx context.Context, param, value string) error {
	if f.strict {
		return fmt.Errorf("%w: %s=%q", ErrInvalidThreshold, param, value)
	}
	logger.FromContext(ctx).Debug().Str(param, value).Msg("unknown threshold, not filtering")
	return nil
}
