package encryptink

import (
	"encoding/json"
	"strings"
	"testing"
)

const testSessionUUID = "018fdb31-0798-78a2-b4c9-e145d5b5b88e"

func mustGenerateMaster(t *testing.T) *KeyPair {
	t.Helper()
	master, err := GenerateMasterKey()
	if err != nil {
		t.Fatalf("GenerateMasterKey() error = %v", err)
	}
	return master
}

func TestGenerateMasterKey(t *testing.T) {
	master := mustGenerateMaster(t)

	if !IsValidMasterKeyPublic(master.PublicKey) {
		t.Error("generated public key fails IsValidMasterKeyPublic")
	}
	if !IsValidMasterKeyPrivate(master.PrivateKey) {
		t.Error("generated private key fails IsValidMasterKeyPrivate")
	}
	if master.Sign != "" {
		t.Error("master key unexpectedly carries a signature")
	}

	var pub MasterKey
	if err := json.Unmarshal([]byte(master.PublicKey), &pub); err != nil {
		t.Fatalf("unmarshal public key: %v", err)
	}
	raw, err := FromBase64(pub.Key)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if len(raw) != 2592 {
		t.Errorf("raw public key size = %d, want 2592", len(raw))
	}

	var priv MasterKey
	if err := json.Unmarshal([]byte(master.PrivateKey), &priv); err != nil {
		t.Fatalf("unmarshal private key: %v", err)
	}
	raw, err = FromBase64(priv.Key)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if len(raw) != 4896 {
		t.Errorf("raw private key size = %d, want 4896", len(raw))
	}
}

func TestSignVerifyMasterKey(t *testing.T) {
	master := mustGenerateMaster(t)

	sign, err := SignMasterKey(master.PrivateKey, "Hello, World!", KeyHash(master.PublicKey))
	if err != nil {
		t.Fatalf("SignMasterKey() error = %v", err)
	}

	if !IsValidSignMasterKey(sign) {
		t.Error("signature envelope fails IsValidSignMasterKey")
	}

	if !VerifyMasterKey(master.PublicKey, sign, "Hello, World!") {
		t.Error("VerifyMasterKey() = false for a valid signature")
	}

	if VerifyMasterKey(master.PublicKey, sign, "Hello, World?") {
		t.Error("VerifyMasterKey() = true for different data")
	}
}

func TestSignMasterKey_EnvelopeShape(t *testing.T) {
	master := mustGenerateMaster(t)

	sign, err := SignMasterKey(master.PrivateKey, "data", KeyHash(master.PublicKey))
	if err != nil {
		t.Fatalf("SignMasterKey() error = %v", err)
	}

	var envelope Sign
	if err := json.Unmarshal([]byte(sign), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}

	if envelope.KeyType != "masterKey" {
		t.Errorf("envelope keyType = %q, want %q", envelope.KeyType, "masterKey")
	}
	if envelope.Algorithm != AlgorithmMLDSA87 {
		t.Errorf("envelope algorithm = %q, want %q", envelope.Algorithm, AlgorithmMLDSA87)
	}
	if envelope.KeyHash != KeyHash(master.PublicKey) {
		t.Error("envelope keyHash does not match KeyHash of the signer public key")
	}

	sig, err := FromBase64(envelope.Signature)
	if err != nil {
		t.Fatalf("FromBase64() error = %v", err)
	}
	if len(sig) != 4627 {
		t.Errorf("raw signature size = %d, want 4627", len(sig))
	}
	if len(envelope.Signature) != 6172 {
		t.Errorf("base64 signature length = %d, want 6172", len(envelope.Signature))
	}
}

func TestSignMasterKey_RejectsPublicKey(t *testing.T) {
	master := mustGenerateMaster(t)

	if _, err := SignMasterKey(master.PublicKey, "data", KeyHash(master.PublicKey)); err == nil {
		t.Error("SignMasterKey accepted a public key as signer")
	}
}

func TestVerifyMasterKey_WrongEnvelopeRole(t *testing.T) {
	master := mustGenerateMaster(t)

	sign, err := SignMasterKey(master.PrivateKey, "data", KeyHash(master.PublicKey))
	if err != nil {
		t.Fatalf("SignMasterKey() error = %v", err)
	}

	tampered := strings.Replace(sign, `"masterKey"`, `"identityKey"`, 1)
	if VerifyMasterKey(master.PublicKey, tampered, "data") {
		t.Error("VerifyMasterKey() = true for an envelope naming another signer role")
	}
}

func TestIsValidMasterKey_Rejections(t *testing.T) {
	master := mustGenerateMaster(t)

	tests := []struct {
		name string
		in   string
	}{
		{"not json", "nope"},
		{"empty object", "{}"},
		{"private as public", master.PrivateKey},
		{"unknown field", strings.Replace(master.PublicKey, `"keyType"`, `"extra":1,"keyType"`, 1)},
		{"wrong keyType", strings.Replace(master.PublicKey, "masterKeyPublic", "masterKey", 1)},
		{"bad base64", `{"keyType":"masterKeyPublic","key":"!!!"}`},
		{"wrong size", `{"keyType":"masterKeyPublic","key":"` + ToBase64(make([]byte, 2591)) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if IsValidMasterKeyPublic(tt.in) {
				t.Errorf("IsValidMasterKeyPublic(%q) = true", tt.in)
			}
		})
	}
}
