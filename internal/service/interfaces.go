package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-issue-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// KeyRegistry manages the credentials accepted by the bridge. Lookups are
// served from an in-memory cache that is swapped atomically after every
// mutation.
type KeyRegistry interface {
	Add(ctx context.Context, cred models.Credential) error
	Generate(ctx context.Context, name string) (models.Credential, error)
	RemoveAt(ctx context.Context, index int) error
	FindByToken(ctx context.Context, token string) (models.Credential, bool)
	TouchLastUsed(ctx context.Context, token string) error
	List(ctx context.Context) []models.Credential
}

// RateLimiter is a fixed-window request budget per client identifier.
type RateLimiter interface {
	TryConsume(id string) bool
	Remaining(id string) int
	SecondsUntilReset(id string) int
	Capacity() int
	// Sweep evicts windows untouched since the idle TTL and reports how many
	// were removed.
	Sweep(now time.Time) int
}

// AuthGate authenticates a request after charging it to the caller's budget.
type AuthGate interface {
	Authenticate(ctx context.Context, clientID, authorization string) (AuthResult, error)
}

// RegexCompiler compiles user supplied name patterns under cost limits.
type RegexCompiler interface {
	Compile(ctx context.Context, pattern string) (Matcher, error)
}

// Matcher reports whether s matches. A match that runs out of time is a
// non-match.
type Matcher interface {
	Match(ctx context.Context, s string) bool
}

// IssueFilter narrows a finding list by an [models.IssueQuery].
type IssueFilter interface {
	Filter(ctx context.Context, findings []models.Finding, q models.IssueQuery) ([]models.Issue, error)
}

// SyncService computes the differential answer for a client's known ids.
type SyncService interface {
	BuildSyncDiff(ctx context.Context, server []models.Issue, known []string) (models.SyncResponse, error)
}

// IssueService answers the issue routes.
type IssueService interface {
	Sync(ctx context.Context, q models.IssueQuery, known []string) (models.SyncResponse, error)
	Get(ctx context.Context, id string) (models.Issue, error)
	Count(ctx context.Context) (int, error)
}

// Subscriber is one push-channel connection.
type Subscriber interface {
	ID() string
	Closed() bool
	Send(ctx context.Context, msg string) error
	Close() error
}

// BroadcastHub tracks push-channel subscribers and fans messages out to them.
type BroadcastHub interface {
	Register(sub Subscriber)
	Unregister(id string)
	Len() int
	Broadcast(ctx context.Context, msg string) BroadcastReport
	CloseAll()
}

// BroadcastJob polls the finding count and triggers a refresh broadcast on
// change.
type BroadcastJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
