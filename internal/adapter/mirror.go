package adapter

import (
	"sync"

	"github.com/MKhiriev/go-issue-bridge/models"
)

// Mirror is a client-side copy of the issues a bridge has served. It keeps
// the known-id set that later differential syncs send back.
type Mirror struct {
	mu     sync.RWMutex
	issues map[string]models.Issue
	order  []string
}

func NewMirror() *Mirror {
	return &Mirror{issues: make(map[string]models.Issue)}
}

// Apply folds a sync answer into the mirror and reports how many issues
// were added and removed. New issues are appended in server order.
func (m *Mirror) Apply(diff models.SyncResponse) (added, removed int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(diff.RemovedIDs) > 0 {
		gone := make(map[string]struct{}, len(diff.RemovedIDs))
		for _, id := range diff.RemovedIDs {
			if _, ok := m.issues[id]; ok {
				delete(m.issues, id)
				gone[id] = struct{}{}
				removed++
			}
		}

		kept := m.order[:0]
		for _, id := range m.order {
			if _, ok := gone[id]; !ok {
				kept = append(kept, id)
			}
		}
		m.order = kept
	}

	for _, issue := range diff.NewIssues {
		if _, ok := m.issues[issue.ID]; !ok {
			m.order = append(m.order, issue.ID)
			added++
		}
		m.issues[issue.ID] = issue
	}
	return added, removed
}

// KnownIDs returns the ids held, in arrival order. Never nil.
func (m *Mirror) KnownIDs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := make([]string, len(m.order))
	copy(ids, m.order)
	return ids
}

// Issues returns the issues held, in arrival order.
func (m *Mirror) Issues() []models.Issue {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]models.Issue, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.issues[id])
	}
	return out
}

func (m *Mirror) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.order)
}
