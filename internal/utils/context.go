// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, bearer token handling, HTTP client initialization
// and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CredentialNameCtxKey is the key under which the auth middleware stores
// the name of the credential that authenticated the request.
var CredentialNameCtxKey = contextKey("credentialName")

// ClientIDCtxKey is the key under which the client identity used for rate
// limiting is stored.
var ClientIDCtxKey = contextKey("clientID")

// WithCredentialName returns a copy of ctx carrying name.
func WithCredentialName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, CredentialNameCtxKey, name)
}

// GetCredentialNameFromContext retrieves the authenticated credential name.
//
// Returns ok == false when the value is missing or has an unexpected type.
func GetCredentialNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(CredentialNameCtxKey).(string)
	return name, ok
}

// WithClientID returns a copy of ctx carrying the client identity.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ClientIDCtxKey, id)
}

// GetClientIDFromContext retrieves the client identity.
func GetClientIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ClientIDCtxKey).(string)
	return id, ok
}
