package service

import (
	"context"

	"github.com/MKhiriev/go-issue-bridge/models"
)

// syncService is the concrete implementation of SyncService.
// It is a pure in-memory comparison of the server's filtered issues and the
// ids a client already holds; nothing is stored between calls.
type syncService struct{}

// NewSyncService constructs a SyncService ready for use.
func NewSyncService() SyncService {
	return &syncService{}
}

// BuildSyncDiff implements SyncService.
//
// It makes two linear passes over O(1) lookup indexes:
//
//   - Pass 1 (over server): every issue whose id the client does not know
//     goes to NewIssues, in server order.
//   - Pass 2 (over known): every known id absent from server goes to
//     RemovedIDs, in the client's order, reported once.
//
// ctx cancellation is checked at the start of each iteration.
func (s *syncService) BuildSyncDiff(ctx context.Context, server []models.Issue, known []string) (models.SyncResponse, error) {
	diff := models.NewSyncResponse()

	knownIndex := make(map[string]struct{}, len(known))
	for _, id := range known {
		knownIndex[id] = struct{}{}
	}

	serverIndex := make(map[string]struct{}, len(server))
	for _, issue := range server {
		serverIndex[issue.ID] = struct{}{}
	}

	// ── Pass 1: issues the client has never seen ─────────────────────────────
	for _, issue := range server {
		if err := ctx.Err(); err != nil {
			return models.SyncResponse{}, err
		}
		if _, ok := knownIndex[issue.ID]; !ok {
			diff.NewIssues = append(diff.NewIssues, issue)
		}
	}

	// ── Pass 2: ids the client holds that are gone ───────────────────────────
	reported := make(map[string]struct{})
	for _, id := range known {
		if err := ctx.Err(); err != nil {
			return models.SyncResponse{}, err
		}
		if _, ok := serverIndex[id]; ok {
			continue
		}
		if _, dup := reported[id]; dup {
			continue
		}
		reported[id] = struct{}{}
		diff.RemovedIDs = append(diff.RemovedIDs, id)
	}

	return diff, nil
}
