package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-issue-bridge/internal/adapter"
	"github.com/MKhiriev/go-issue-bridge/internal/app"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unauthorized", fmt.Errorf("health: %w", adapter.ErrUnauthorized), app.MsgUnauthorized},
		{"rate limited", fmt.Errorf("%w: retry after 30s", adapter.ErrRateLimited), app.MsgRateLimited},
		{"not found", adapter.ErrNotFound, app.MsgIssueNotFound},
		{"unavailable", adapter.ErrServiceUnavailable, app.MsgBridgeUnavailable},
		{"push closed", adapter.ErrPushChannelClosed, app.MsgPushChannelClosed},
		{"blank name", service.ErrCredentialNameRequired, app.MsgCredentialNameRequired},
		{"unreadable store", fmt.Errorf("%w: database is locked", service.ErrCredentialStoreUnreadable), app.MsgCredentialStoreUnreadable},
		{"bad index", fmt.Errorf("%w: 9", errCredentialIndex), app.MsgCredentialIndexInvalid},
		{"unknown", errors.New("dial tcp: refused"), "dial tcp: refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}

func TestDescribeError_BadRequestKeepsReason(t *testing.T) {
	err := fmt.Errorf("%w: name filter too long", adapter.ErrBadRequest)

	got := describeError(err)
	assert.Equal(t, app.MsgInvalidFilter+": "+err.Error(), got)
}
