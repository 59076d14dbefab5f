// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-issue-bridge/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldMinSeverity targets IssueQuery.MinSeverity.
	FieldMinSeverity = "min_severity"

	// FieldMinConfidence targets IssueQuery.MinConfidence.
	FieldMinConfidence = "min_confidence"

	// FieldNameRegex targets IssueQuery.NameRegex.
	FieldNameRegex = "name_regex"

	// FieldKnownIDs targets SyncRequest.KnownIDs.
	FieldKnownIDs = "known_ids"
)

const (
	// MaxThresholdLength bounds minSeverity and minConfidence. The longest
	// known value is INFORMATION.
	MaxThresholdLength = 32

	// MaxNameRegexLength is a transport cap well above the regex compiler's
	// own limit, so oversized input is refused before it is copied around.
	MaxNameRegexLength = 4096

	// MaxKnownIDs bounds the size of a sync request.
	MaxKnownIDs = 100_000
)

// IssueValidator checks issue queries and sync requests.
type IssueValidator struct{}

func NewIssueValidator() Validator {
	return &IssueValidator{}
}

// Validate checks obj, which must be a [models.IssueQuery] or a
// [models.SyncRequest] (value or pointer). With no fields every field of obj
// is checked.
func (v *IssueValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IssueQuery:
		return v.validateIssueQuery(ctx, value, fields...)
	case *models.IssueQuery:
		return v.validateIssueQuery(ctx, *value, fields...)

	case models.SyncRequest:
		return v.validateSyncRequest(ctx, value, fields...)
	case *models.SyncRequest:
		return v.validateSyncRequest(ctx, *value, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *IssueValidator) validateIssueQuery(_ context.Context, q models.IssueQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMinSeverity, FieldMinConfidence, FieldNameRegex}
	}

	for _, field := range fields {
		switch field {
		case FieldMinSeverity:
			if len(q.MinSeverity) > MaxThresholdLength {
				return fmt.Errorf("%w: minSeverity", ErrThresholdTooLong)
			}
		case FieldMinConfidence:
			if len(q.MinConfidence) > MaxThresholdLength {
				return fmt.Errorf("%w: minConfidence", ErrThresholdTooLong)
			}
		case FieldNameRegex:
			if len(q.NameRegex) > MaxNameRegexLength {
				return ErrNameRegexTooLong
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *IssueValidator) validateSyncRequest(_ context.Context, req models.SyncRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKnownIDs}
	}

	for _, field := range fields {
		switch field {
		case FieldKnownIDs:
			// ids of any shape are accepted; one that matches no issue comes
			// back in removedIds
			if len(req.KnownIDs) > MaxKnownIDs {
				return fmt.Errorf("%w: %d > %d", ErrTooManyKnownIDs, len(req.KnownIDs), MaxKnownIDs)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}
