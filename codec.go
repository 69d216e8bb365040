package encryptink

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// KeyHash returns the base64-encoded SHA-256 hash of s. The argument is the
// full JSON string of a public key, not its key field; the resulting 44-char
// string is what signature and encrypted envelopes record as keyHash.
func KeyHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Fingerprint returns a short base58 rendering of SHA-256(keyJSON) for
// human key verification, e.g. reading a master-key fingerprint aloud when
// verifying a new device.
func Fingerprint(keyJSON string) string {
	sum := sha256.Sum256([]byte(keyJSON))
	return base58.Encode(sum[:])
}

// ToBase64 encodes bytes to standard base64 with padding. All binary fields
// on the wire use this alphabet.
func ToBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// FromBase64 decodes standard base64 (with padding) to bytes.
func FromBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// ToHex encodes bytes as lowercase hex, two chars per byte.
func ToHex(data []byte) string {
	return hex.EncodeToString(data)
}

// decodesToLength reports whether s is valid base64 whose decoded form is
// exactly n bytes long.
func decodesToLength(s string, n int) bool {
	b, err := base64.StdEncoding.DecodeString(s)
	return err == nil && len(b) == n
}
