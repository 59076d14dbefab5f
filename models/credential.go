package models

import "time"

// Credential is a named bearer token accepted by the bridge API.
//
// Credential is a value type: an update produces a new Credential that
// replaces the old one by Token equality.
type Credential struct {
	// Name is the operator-facing label of the credential (e.g. "laptop").
	Name string `json:"name" cbor:"1,keyasint"`

	// Token is the 43-character URL-safe bearer token.
	Token string `json:"token" cbor:"2,keyasint"`

	// CreatedAt is the moment the credential was generated.
	CreatedAt time.Time `json:"created_at" cbor:"3,keyasint"`

	// LastUsedAt is the last time a request authenticated with Token.
	// Nil until the first successful request.
	LastUsedAt *time.Time `json:"last_used_at,omitempty" cbor:"4,keyasint,omitempty"`
}

// WithLastUsed returns a copy of c with LastUsedAt set to at.
func (c Credential) WithLastUsed(at time.Time) Credential {
	at = at.UTC()
	c.LastUsedAt = &at
	return c
}

// Masked returns the token with everything but the first four characters
// hidden. Used by listings and logs.
func (c Credential) Masked() string {
	if len(c.Token) <= 4 {
		return "****"
	}
	return c.Token[:4] + "…"
}
