package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/config"
	"github.com/MKhiriev/go-issue-bridge/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGate(t *testing.T, capacity int) (AuthGate, *keyRegistry, *fakeClock) {
	t.Helper()
	r, _, _, clock := newTestRegistry(t)
	limiter := newFixedWindowLimiter(config.RateLimit{Capacity: capacity, Window: time.Minute}, clock.Now)
	require.NoError(t, r.Add(context.Background(), cred("laptop", "good-token")))
	return NewAuthGate(r, limiter, logger.Nop()), r, clock
}

func TestAuthGate_Authenticate(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   error
	}{
		{name: "valid bearer", header: "Bearer good-token"},
		{name: "scheme is case-insensitive", header: "bearer good-token"},
		{name: "missing header", header: "", want: ErrUnauthorized},
		{name: "wrong scheme", header: "Basic good-token", want: ErrUnauthorized},
		{name: "empty token", header: "Bearer ", want: ErrUnauthorized},
		{name: "unknown token", header: "Bearer bad-token", want: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, _, _ := newTestGate(t, 10)

			res, err := gate.Authenticate(context.Background(), "10.0.0.1", tt.header)
			assert.Equal(t, 10, res.Limit)
			assert.Equal(t, 9, res.Remaining)
			assert.Equal(t, 60, res.ResetSeconds)

			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
				assert.Empty(t, res.Credential.Name)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "laptop", res.Credential.Name)
		})
	}
}

func TestAuthGate_FailedAttemptsConsumeBudget(t *testing.T) {
	gate, _, clock := newTestGate(t, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := gate.Authenticate(ctx, "10.0.0.1", "Bearer nope")
		require.ErrorIs(t, err, ErrUnauthorized)
	}

	res, err := gate.Authenticate(ctx, "10.0.0.1", "Bearer good-token")
	assert.ErrorIs(t, err, ErrRateLimitExceeded)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 60, res.ResetSeconds)

	// a different client is unaffected
	_, err = gate.Authenticate(ctx, "10.0.0.2", "Bearer good-token")
	assert.NoError(t, err)

	clock.Advance(time.Minute)
	_, err = gate.Authenticate(ctx, "10.0.0.1", "Bearer good-token")
	assert.NoError(t, err)
}

func TestAuthGate_TouchesCredential(t *testing.T) {
	gate, r, clock := newTestGate(t, 10)
	ctx := context.Background()

	_, err := gate.Authenticate(ctx, "10.0.0.1", "Bearer good-token")
	require.NoError(t, err)

	c, ok := r.FindByToken(ctx, "good-token")
	require.True(t, ok)
	require.NotNil(t, c.LastUsedAt)
	assert.Equal(t, clock.Now(), *c.LastUsedAt)
}
