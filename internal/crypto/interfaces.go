package crypto

import "github.com/MKhiriev/go-issue-bridge/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_mock.go -package=mock

// Vault seals the credential list at rest.
//
// Every Encrypt derives a fresh key from the installation secret and a new
// random salt, so two encryptions of the same list never produce the same
// blob. Decrypt either returns the complete list or an error wrapping
// [ErrDecryption]; partial plaintext is never returned.
type Vault interface {
	// Encrypt serializes creds and returns base64(salt ‖ iv ‖ ciphertext ‖ tag).
	Encrypt(creds []models.Credential) (string, error)

	// Decrypt reverses Encrypt. An empty blob yields an empty list.
	Decrypt(blob string) ([]models.Credential, error)

	// Close wipes the installation secret. Encrypt and Decrypt fail with
	// [ErrVaultClosed] afterwards.
	Close() error
}
