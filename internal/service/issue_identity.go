package service

import (
	"encoding/hex"

	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/zeebo/blake3"
)

// FingerprintLength is the number of hex characters in an issue id.
const FingerprintLength = 16

// fieldSeparator (ASCII unit separator) keeps ("ab","c") and ("a","bc")
// from hashing alike.
const fieldSeparator = 0x1f

// Fingerprint returns the stable id of f: the first 16 hex characters of
// BLAKE3-256(name ‖ 0x1f ‖ baseUrl ‖ 0x1f ‖ host). It is unsalted so ids
// survive restarts.
func Fingerprint(f models.Finding) string {
	buf := make([]byte, 0, len(f.Name)+len(f.BaseURL)+len(f.Host)+2)
	buf = append(buf, f.Name...)
	buf = append(buf, fieldSeparator)
	buf = append(buf, f.BaseURL...)
	buf = append(buf, fieldSeparator)
	buf = append(buf, f.Host...)

	sum := blake3.Sum256(buf)
	return hex.EncodeToString(sum[:FingerprintLength/2])
}

// IsFingerprint reports whether s has the shape of a [Fingerprint] result.
func IsFingerprint(s string) bool {
	if len(s) != FingerprintLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
