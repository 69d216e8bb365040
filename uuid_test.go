package encryptink

import "testing"

func TestIsValidUUIDv7(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid v7", "018fdb31-0798-78a2-b4c9-e145d5b5b88e", true},
		{"valid v7 uppercase", "018FDB31-0798-78A2-B4C9-E145D5B5B88E", true},
		{"invalid", "invalid-uuid", false},
		{"empty", "", false},
		{"v1", "c232ab00-9414-11ec-b3c8-9f68deced846", false},
		{"v4", "9b4ac1f0-4a6c-4d0e-8f0a-3e2b6f1d9c5e", false},
		{"wrong variant", "018fdb31-0798-78a2-c4c9-e145d5b5b88e", false},
		{"unhyphenated", "018fdb31079878a2b4c9e145d5b5b88e", false},
		{"braced", "{018fdb31-0798-78a2-b4c9-e145d5b5b88e}", false},
		{"urn", "urn:uuid:018fdb31-0798-78a2-b4c9-e145d5b5b88e", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidUUIDv7(tt.in); got != tt.want {
				t.Errorf("IsValidUUIDv7(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewSessionUUID(t *testing.T) {
	u, err := NewSessionUUID()
	if err != nil {
		t.Fatalf("NewSessionUUID() error = %v", err)
	}

	if !IsValidUUIDv7(u) {
		t.Errorf("NewSessionUUID() = %q does not pass IsValidUUIDv7", u)
	}

	u2, err := NewSessionUUID()
	if err != nil {
		t.Fatalf("NewSessionUUID() error = %v", err)
	}
	if u == u2 {
		t.Error("NewSessionUUID returned duplicate values")
	}
}
