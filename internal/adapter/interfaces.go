// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the bridge protocol.
//
// [ServerAdapter] wraps the HTTP routes (health, issue list, differential
// sync, single issue) and the websocket push channel. The HTTP
// implementation ([NewHTTPServerAdapter]) is built on resty and
// gorilla/websocket.
//
// Non-2xx answers are mapped by mapHTTPError onto the sentinel errors in
// errors.go so callers can branch with [errors.Is] (for example
// [ErrRateLimited] for 429 or [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-issue-bridge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter talks to a running bridge.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every later request.
	SetToken(token string)

	// Token returns the bearer token currently held.
	Token() string

	// Health calls GET /health.
	Health(ctx context.Context) (models.HealthResponse, error)

	// Issues calls GET /issues: every issue passing q.
	Issues(ctx context.Context, q models.IssueQuery) (models.SyncResponse, error)

	// Sync calls POST /issues with the ids the caller already holds.
	Sync(ctx context.Context, q models.IssueQuery, known []string) (models.SyncResponse, error)

	// Get calls GET /issues/{id}.
	Get(ctx context.Context, id string) (models.Issue, error)

	// Watch opens the push channel and calls onRefresh for every refresh
	// message. It blocks until ctx is done or the channel closes.
	Watch(ctx context.Context, onRefresh func()) error
}
