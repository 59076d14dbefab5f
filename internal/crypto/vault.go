// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltSize = 16
	ivSize   = 12
	tagSize  = 16
	keySize  = 32 // AES-256

	// MinIterations is the lowest PBKDF2 iteration count NewVault accepts.
	MinIterations = 100_000
	// DefaultIterations follows the OWASP 2023 recommendation for PBKDF2-HMAC-SHA256.
	DefaultIterations = 210_000
)

// pbkdf2Vault is the private implementation of [Vault].
type pbkdf2Vault struct {
	mu         sync.RWMutex
	secret     []byte
	iterations int

	enc cbor.EncMode
	dec cbor.DecMode
}

// NewVault constructs a [Vault] keyed by secret. iterations below
// [MinIterations] are rejected; zero selects [DefaultIterations].
func NewVault(secret string, iterations int) (Vault, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if iterations == 0 {
		iterations = DefaultIterations
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrWeakKDFParams, iterations, MinIterations)
	}

	encOpts := cbor.CoreDetEncOptions()
	encOpts.Time = cbor.TimeRFC3339Nano
	enc, err := encOpts.EncMode()
	if err != nil {
		return nil, fmt.Errorf("create cbor encoder: %w", err)
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("create cbor decoder: %w", err)
	}

	return &pbkdf2Vault{
		secret:     []byte(secret),
		iterations: iterations,
		enc:        enc,
		dec:        dec,
	}, nil
}

// Encrypt implements [Vault].
func (v *pbkdf2Vault) Encrypt(creds []models.Credential) (string, error) {
	if creds == nil {
		creds = []models.Credential{}
	}

	plaintext, err := v.enc.Marshal(creds)
	if err != nil {
		return "", fmt.Errorf("marshal credentials: %w", err)
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := v.cipherFor(salt)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	// salt || iv || ciphertext || tag
	blob := make([]byte, 0, saltSize+ivSize+len(plaintext)+tagSize)
	blob = append(blob, salt...)
	blob = append(blob, iv...)
	blob = gcm.Seal(blob, iv, plaintext, nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [Vault].
func (v *pbkdf2Vault) Decrypt(encoded string) ([]models.Credential, error) {
	if encoded == "" {
		return []models.Credential{}, nil
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrDecryption, err)
	}
	if len(blob) < saltSize+ivSize+tagSize {
		return nil, fmt.Errorf("%w: blob too short", ErrDecryption)
	}

	salt := blob[:saltSize]
	iv := blob[saltSize : saltSize+ivSize]
	sealed := blob[saltSize+ivSize:]

	gcm, err := v.cipherFor(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	var creds []models.Credential
	if err := v.dec.Unmarshal(plaintext, &creds); err != nil {
		return nil, fmt.Errorf("%w: cbor: %v", ErrDecryption, err)
	}
	if creds == nil {
		creds = []models.Credential{}
	}

	return creds, nil
}

// Close implements [Vault].
func (v *pbkdf2Vault) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.secret {
		v.secret[i] = 0
	}
	v.secret = nil
	return nil
}

// cipherFor derives the AES-256 key for salt and returns the GCM AEAD.
func (v *pbkdf2Vault) cipherFor(salt []byte) (cipher.AEAD, error) {
	v.mu.RLock()
	if v.secret == nil {
		v.mu.RUnlock()
		return nil, ErrVaultClosed
	}
	key := pbkdf2.Key(v.secret, salt, v.iterations, keySize, sha256.New)
	v.mu.RUnlock()

	defer func() {
		for i := range key {
			key[i] = 0
		}
	}()

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
