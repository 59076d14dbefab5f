package main

import (
	"errors"

	"github.com/MKhiriev/go-issue-bridge/internal/adapter"
	"github.com/MKhiriev/go-issue-bridge/internal/app"
	"github.com/MKhiriev/go-issue-bridge/internal/service"
)

var errorMessages = []struct {
	target error
	msg    string
}{
	{adapter.ErrInvalidAddress, app.MsgInvalidAddress},
	{adapter.ErrUnauthorized, app.MsgUnauthorized},
	{adapter.ErrForbidden, app.MsgForbidden},
	{adapter.ErrRateLimited, app.MsgRateLimited},
	{adapter.ErrNotFound, app.MsgIssueNotFound},
	{adapter.ErrServiceUnavailable, app.MsgBridgeUnavailable},
	{adapter.ErrInternalServerError, app.MsgInternalServerError},
	{adapter.ErrPushChannelClosed, app.MsgPushChannelClosed},
	{service.ErrCredentialNameRequired, app.MsgCredentialNameRequired},
	{service.ErrCredentialTokenInvalid, app.MsgCredentialTokenInvalid},
	{service.ErrCredentialStoreUnreadable, app.MsgCredentialStoreUnreadable},
	{errCredentialIndex, app.MsgCredentialIndexInvalid},
}

// describeError turns err into an operator-facing line. A rejected filter
// keeps the bridge's reason.
func describeError(err error) string {
	if errors.Is(err, adapter.ErrBadRequest) {
		return app.MsgInvalidFilter + ": " + err.Error()
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.msg
		}
	}
	return err.Error()
}
