package service

import "errors"

var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")

	ErrInvalidFilterPattern = errors.New("invalid filter pattern")
	ErrInvalidThreshold     = errors.New("invalid severity or confidence threshold")

	ErrIssueNotFound     = errors.New("issue not found")
	ErrSourceUnavailable = errors.New("finding source unavailable")

	ErrCredentialNameRequired = errors.New("credential name is required")
	ErrCredentialTokenInvalid = errors.New("credential token is invalid")

	// ErrCredentialStoreUnreadable refuses a credential change while the
	// stored list cannot be read or opened.
	ErrCredentialStoreUnreadable = errors.New("stored credentials cannot be read")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
