package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/source"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenSource fails every call, standing in for an unreachable engine.
type brokenSource struct{ err error }

func (s brokenSource) List(context.Context) ([]models.Finding, error) { return nil, s.err }
func (s brokenSource) Count(context.Context) (int, error)             { return 0, s.err }

func newTestIssueService(src FindingSource) IssueService {
	return NewIssueService(src, newTestFilter(source.NewPrefixScopeOracle(nil), false), NewSyncService(), logger.Nop())
}

func TestIssueService_Sync(t *testing.T) {
	src := source.NewStaticFindingSource(sampleFindings...)
	svc := newTestIssueService(src)

	stale := Fingerprint(finding("Gone", "https://in.example/old", "host"))
	known := []string{Fingerprint(sampleFindings[0]), stale}

	diff, err := svc.Sync(context.Background(), models.IssueQuery{MinSeverity: "MEDIUM"}, known)
	require.NoError(t, err)

	require.Len(t, diff.NewIssues, 1)
	assert.Equal(t, "Reflected XSS", diff.NewIssues[0].Name)
	assert.Equal(t, []string{stale}, diff.RemovedIDs)
}

func TestIssueService_Sync_FilterNarrowingRemovesKnown(t *testing.T) {
	src := source.NewStaticFindingSource(sampleFindings...)
	svc := newTestIssueService(src)

	low := Fingerprint(sampleFindings[2])
	diff, err := svc.Sync(context.Background(), models.IssueQuery{MinSeverity: "HIGH"}, []string{low})
	require.NoError(t, err)
	assert.Equal(t, []string{low}, diff.RemovedIDs)
}

func TestIssueService_Sync_Errors(t *testing.T) {
	svc := newTestIssueService(brokenSource{err: errors.New("engine gone")})
	_, err := svc.Sync(context.Background(), models.IssueQuery{}, nil)
	assert.ErrorIs(t, err, ErrSourceUnavailable)

	svc = newTestIssueService(source.NewStaticFindingSource(sampleFindings...))
	_, err = svc.Sync(context.Background(), models.IssueQuery{NameRegex: "(x*)*"}, nil)
	assert.ErrorIs(t, err, ErrInvalidFilterPattern)
}

func TestIssueService_Get(t *testing.T) {
	src := source.NewStaticFindingSource(sampleFindings...)
	svc := newTestIssueService(src)

	want := sampleFindings[3]
	issue, err := svc.Get(context.Background(), Fingerprint(want))
	require.NoError(t, err)
	assert.Equal(t, want, issue.Finding)
	assert.Equal(t, Fingerprint(want), issue.ID)

	_, err = svc.Get(context.Background(), "0000000000000000")
	assert.ErrorIs(t, err, ErrIssueNotFound)

	_, err = svc.Get(context.Background(), "not-a-fingerprint")
	assert.ErrorIs(t, err, ErrIssueNotFound)
}

func TestIssueService_Get_SourceFailure(t *testing.T) {
	svc := newTestIssueService(brokenSource{err: errors.New("engine gone")})

	_, err := svc.Get(context.Background(), Fingerprint(sampleFindings[0]))
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestIssueService_Count(t *testing.T) {
	svc := newTestIssueService(source.NewStaticFindingSource(sampleFindings...))
	n, err := svc.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(sampleFindings), n)

	svc = newTestIssueService(brokenSource{err: errors.New("engine gone")})
	_, err = svc.Count(context.Background())
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}
