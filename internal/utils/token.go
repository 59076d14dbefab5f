package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
)

const (
	tokenBytes = 32
	// TokenLength is the length of a token produced by GenerateToken.
	TokenLength = 43
)

// GenerateToken returns 32 bytes from the OS CSPRNG encoded as unpadded
// URL-safe base64 (43 characters).
func GenerateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// IsWellFormedToken reports whether s has the shape of a generated token.
func IsWellFormedToken(s string) bool {
	if len(s) != TokenLength {
		return false
	}
	_, err := base64.RawURLEncoding.DecodeString(s)
	return err == nil
}
