package encryptink

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKey is returned when a key JSON string fails structural
	// validation: unknown keyType, wrong algorithm literal, wrong raw size,
	// or malformed base64.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidEnvelope is returned when an encrypted payload or signature
	// envelope fails structural validation.
	ErrInvalidEnvelope = errors.New("invalid envelope")

	// ErrInvalidUUID is returned when a session id is not a UUIDv7.
	ErrInvalidUUID = errors.New("invalid UUIDv7")

	// ErrInvalidMessage is returned when a message envelope fails structural
	// validation.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrSignatureVerificationFailed is returned when signature verification fails.
	ErrSignatureVerificationFailed = errors.New("signature verification failed")

	// ErrDecryptionFailed is returned when AEAD decryption or KEM
	// decapsulation fails.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrTimestampOutOfRange is returned when a message timestamp is more
	// than 60 seconds away from the server timestamp.
	ErrTimestampOutOfRange = errors.New("timestamp out of range")

	// ErrRoomIDMismatch is returned when a message envelope names a
	// different room than the caller expects.
	ErrRoomIDMismatch = errors.New("room id mismatch")

	// ErrKeyHashMismatch classifies a signature envelope whose keyHash does
	// not match the expected signer public key. No function in this package
	// returns it: the Verify* functions do not compare keyHash.
	ErrKeyHashMismatch = errors.New("key hash mismatch")

	// ErrMasterSignatureInvalid is returned when the master signature over
	// an issued subkey does not verify.
	ErrMasterSignatureInvalid = errors.New("master signature invalid")
)
