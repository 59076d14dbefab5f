// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestCredentialName_RoundTrip(t *testing.T) {
	ctx := WithCredentialName(context.Background(), "ci")

	name, ok := GetCredentialNameFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if name != "ci" {
		t.Errorf("expected name=ci, got %s", name)
	}
}

func TestGetCredentialNameFromContext_Missing(t *testing.T) {
	name, ok := GetCredentialNameFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
	if name != "" {
		t.Errorf("expected empty name, got %s", name)
	}
}

func TestGetCredentialNameFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), CredentialNameCtxKey, 42)

	if _, ok := GetCredentialNameFromContext(ctx); ok {
		t.Error("expected ok=false for wrong value type")
	}
}

func TestClientID_RoundTrip(t *testing.T) {
	ctx := WithClientID(context.Background(), "10.0.0.1")

	id, ok := GetClientIDFromContext(ctx)
	if !ok || id != "10.0.0.1" {
		t.Errorf("expected 10.0.0.1, got %q (ok=%v)", id, ok)
	}
}
