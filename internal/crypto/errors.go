package crypto

import "errors"

var (
	// ErrInvalidPublicKeySize is returned when a public key has the wrong size.
	ErrInvalidPublicKeySize = errors.New("invalid public key size")

	// ErrInvalidSecretKeySize is returned when a secret key has the wrong size.
	ErrInvalidSecretKeySize = errors.New("invalid secret key size")

	// ErrInvalidCiphertextSize is returned when a KEM ciphertext has the wrong size.
	ErrInvalidCiphertextSize = errors.New("invalid ciphertext size")

	// ErrInvalidSignatureSize classifies a signature of the wrong size. No
	// function in this package returns it: VerifyDSA65 and VerifyDSA87
	// report a wrong-size signature by returning false.
	ErrInvalidSignatureSize = errors.New("invalid signature size")

	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the AES-GCM nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when AEAD decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed")
)
