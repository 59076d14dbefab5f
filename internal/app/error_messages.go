// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared operator-facing message constants used by the
// bridgectl CLI.
//
// All Msg* constants are human-readable strings printed when a bridge
// request or a local credential operation fails. Keeping them in one place
// keeps the wording consistent across commands.
package app

const (
	// MsgInvalidAddress is printed when the configured bridge address
	// cannot be parsed.
	MsgInvalidAddress = "invalid bridge address, check ADAPTER_ADDRESS or --address"

	// MsgUnauthorized is printed when the bridge rejects the bearer token.
	MsgUnauthorized = "the bridge rejected the token, check ADAPTER_TOKEN or --token"

	// MsgForbidden is printed when the request origin is not allowed.
	MsgForbidden = "request refused by the bridge origin policy"

	// MsgRateLimited is printed when the client spent its request budget.
	MsgRateLimited = "too many requests, wait for the rate limit window to reset"

	// MsgIssueNotFound is printed when GET /issues/{id} finds nothing.
	MsgIssueNotFound = "issue not found"

	// MsgInvalidFilter is printed when the bridge rejects the filters.
	MsgInvalidFilter = "invalid filter"

	// MsgBridgeUnavailable is printed when the bridge or its finding source
	// cannot be reached.
	MsgBridgeUnavailable = "bridge unavailable, is the scanner running?"

	// MsgInternalServerError is printed when the bridge failed unexpectedly.
	MsgInternalServerError = "internal server error"

	// MsgPushChannelClosed is printed when the bridge ends a watch session.
	MsgPushChannelClosed = "push channel closed by the bridge"

	// MsgCredentialNameRequired is printed when keys add gets a blank name.
	MsgCredentialNameRequired = "credential name is required"

	// MsgCredentialTokenInvalid is printed when a supplied token is not a
	// 43-character URL-safe string.
	MsgCredentialTokenInvalid = "token must be 43 URL-safe characters"

	// MsgCredentialIndexInvalid is printed when keys remove gets an index
	// outside the list.
	MsgCredentialIndexInvalid = "no credential at that index, see keys list"

	// MsgCredentialStoreUnreadable is printed when a keys change is refused
	// because the stored list could not be read or opened.
	MsgCredentialStoreUnreadable = "stored credentials could not be read, check APP_INSTALLATION_SECRET and the storage DSN"
)
