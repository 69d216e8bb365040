package encryptink

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IsValidUUIDv7 reports whether s is a canonically formatted
// (8-4-4-4-12, case-insensitive) version-7 UUID with the RFC 4122 variant.
// Session ids for identity, room, and share keys must pass this gate.
func IsValidUUIDv7(s string) bool {
	// uuid.Parse also accepts urn: prefixes, braces, and unhyphenated
	// forms; the wire format allows only the canonical 36-char layout.
	if len(s) != 36 {
		return false
	}

	u, err := uuid.Parse(s)
	if err != nil {
		return false
	}

	return u.Version() == 7 && u.Variant() == uuid.RFC4122
}

// NewSessionUUID returns a freshly generated, lowercase UUIDv7 suitable as a
// session id.
func NewSessionUUID() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate UUIDv7: %w", err)
	}
	return strings.ToLower(u.String()), nil
}
