// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrOriginNotAllowed is returned by the CORS middleware for a non-empty
	// Origin outside the allow-list.
	ErrOriginNotAllowed = errors.New("origin not allowed")

	// ErrSubscriberClosed is returned by a push-channel subscriber once its
	// connection is gone.
	ErrSubscriberClosed = errors.New("subscriber closed")
)
