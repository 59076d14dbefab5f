package utils

import "github.com/google/uuid"

// NewID returns a time-ordered UUIDv7 string, so trace ids and subscriber
// ids sort by creation in logs. Falls back to a random v4.
func NewID() string {
	if v7, err := uuid.NewV7(); err == nil {
		return v7.String()
	}
	return uuid.NewString()
}
