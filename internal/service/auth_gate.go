package service

import (
	"context"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/models"
)

// AuthResult carries the authenticated credential and the caller's rate
// limit state. The limit fields are filled on every outcome so a denied
// request can still report Retry-After.
type AuthResult struct {
	Credential   models.Credential
	Limit        int
	Remaining    int
	ResetSeconds int
}

type authGate struct {
	registry KeyRegistry
	limiter  RateLimiter
	logger   *logger.Logger
}

// NewAuthGate wires a [KeyRegistry] and a [RateLimiter] into an [AuthGate].
func NewAuthGate(registry KeyRegistry, limiter RateLimiter, logger *logger.Logger) AuthGate {
	return &authGate{registry: registry, limiter: limiter, logger: logger}
}

// Authenticate charges the request to clientID first, so failed attempts
// count against the budget, then checks the bearer token.
func (g *authGate) Authenticate(ctx context.Context, clientID, authorization string) (AuthResult, error) {
	allowed := g.limiter.TryConsume(clientID)
	result := AuthResult{
		Limit:        g.limiter.Capacity(),
		Remaining:    g.limiter.Remaining(clientID),
		ResetSeconds: g.limiter.SecondsUntilReset(clientID),
	}
	if !allowed {
		return result, ErrRateLimitExceeded
	}

	token, ok := utils.BearerToken(authorization)
	if !ok {
		return result, ErrUnauthorized
	}

	cred, ok := g.registry.FindByToken(ctx, token)
	if !ok {
		logger.FromContext(ctx).Debug().Str("client", clientID).Msg("unknown bearer token")
		return result, ErrUnauthorized
	}

	if err := g.registry.TouchLastUsed(ctx, token); err != nil {
		// a failed bookkeeping write must not fail an authenticated request
		logger.FromContext(ctx).Warn().Err(err).Str("credential", cred.Name).Msg("error recording credential use")
	}

	result.Credential = cred
	return result, nil
}
