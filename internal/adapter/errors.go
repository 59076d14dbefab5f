package adapter

import "errors"

var (
	ErrInvalidAddress = errors.New("invalid bridge address")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrRateLimited         = errors.New("rate limited")
	ErrServiceUnavailable  = errors.New("bridge unavailable")
	ErrInternalServerError = errors.New("internal server error")

	ErrPushChannelClosed = errors.New("push channel closed by server")
)
