package models

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	Issues      int    `json:"issues"`
	Subscribers int    `json:"subscribers"`
}

// ErrorResponse is the JSON error body returned for 4xx responses that carry
// detail (e.g. a rejected name filter).
type ErrorResponse struct {
	Error string `json:"error"`
}

// PushRefresh is the only payload ever sent over the push channel.
const PushRefresh = "refresh"
