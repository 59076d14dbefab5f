package models

// IssueQuery holds the filters a client applies to the live finding set.
// Zero values are permissive: every finding passes.
type IssueQuery struct {
	// MinSeverity is the lowest severity to include (query param minSeverity).
	MinSeverity string `json:"minSeverity,omitempty"`

	// MinConfidence is the lowest confidence to include (query param minConfidence).
	MinConfidence string `json:"minConfidence,omitempty"`

	// InScopeOnly drops findings whose base URL is outside the scanner's
	// configured testing scope (query param inScope).
	InScopeOnly bool `json:"inScope,omitempty"`

	// NameRegex is matched case-insensitively against the finding name
	// (query param nameRegex).
	NameRegex string `json:"nameRegex,omitempty"`
}
