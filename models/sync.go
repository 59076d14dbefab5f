package models

// SyncRequest carries the fingerprints the client currently believes are
// live. It is never persisted server-side.
type SyncRequest struct {
	KnownIDs []string `json:"knownIds"`
}

// SyncResponse is the one-directional difference between the server's
// filtered issue set and the client's known set.
type SyncResponse struct {
	// NewIssues holds the full payload of every issue the client does not know.
	NewIssues []Issue `json:"newIssues"`

	// RemovedIDs lists known fingerprints that are no longer present or no
	// longer match the filters.
	RemovedIDs []string `json:"removedIds"`
}

// NewSyncResponse returns a SyncResponse whose slices encode as [] rather
// than null.
func NewSyncResponse() SyncResponse {
	return SyncResponse{
		NewIssues:  make([]Issue, 0),
		RemovedIDs: make([]string, 0),
	}
}
