// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the issue
// service: filter query parameters and the known-id list of a differential
// sync. Transport code calls Validate; the service layer assumes its input
// has passed.
package validators

import "context"

// Validator checks obj. When fields are given only those fields are
// checked.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
