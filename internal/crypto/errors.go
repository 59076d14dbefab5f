package crypto

import "errors"

var (
	// ErrDecryption is returned for every failure while opening a blob:
	// malformed base64, short input, authentication tag mismatch or an
	// undecodable plaintext.
	ErrDecryption = errors.New("credential blob could not be decrypted")

	ErrVaultClosed   = errors.New("vault is closed")
	ErrEmptySecret   = errors.New("installation secret is empty")
	ErrWeakKDFParams = errors.New("kdf iteration count is too low")
)
