package encryptink

import (
	"encoding/json"
	"testing"
)

func validSignEnvelope(t *testing.T, algorithm string) Sign {
	t.Helper()
	size := dsa65SigSize
	if algorithm == AlgorithmMLDSA87 {
		size = dsa87SigSize
	}
	signer := signerIdentity
	if algorithm == AlgorithmMLDSA87 {
		signer = signerMaster
	}
	return Sign{
		KeyType:   signer,
		KeyHash:   KeyHash("some public key json"),
		Signature: ToBase64(make([]byte, size)),
		Algorithm: algorithm,
	}
}

func TestIsValidSignJSON(t *testing.T) {
	env := validSignEnvelope(t, AlgorithmMLDSA87)
	b, err := json.Marshal(&env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !isValidSignJSON(string(b), signerMaster, AlgorithmMLDSA87) {
		t.Error("structurally valid envelope rejected")
	}

	tests := []struct {
		name   string
		mutate func(*Sign)
	}{
		{"wrong signer role", func(s *Sign) { s.KeyType = signerServer }},
		{"short keyHash", func(s *Sign) { s.KeyHash = ToBase64(make([]byte, 31)) }},
		{"bad keyHash base64", func(s *Sign) { s.KeyHash = "!!!" }},
		{"wrong signature size", func(s *Sign) { s.Signature = ToBase64(make([]byte, dsa65SigSize)) }},
		{"wrong algorithm", func(s *Sign) { s.Algorithm = AlgorithmMLDSA65 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validSignEnvelope(t, AlgorithmMLDSA87)
			tt.mutate(&env)
			b, err := json.Marshal(&env)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if isValidSignJSON(string(b), signerMaster, AlgorithmMLDSA87) {
				t.Error("mutated envelope accepted")
			}
		})
	}
}

func TestIsValidSignJSON_LegacyAlgorithmOmitted(t *testing.T) {
	env := validSignEnvelope(t, AlgorithmMLDSA65)
	env.Algorithm = ""
	b, err := json.Marshal(&env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// Legacy ML-DSA-65 envelopes may omit the algorithm field.
	if !isValidSignJSON(string(b), signerIdentity, AlgorithmMLDSA65) {
		t.Error("legacy envelope without algorithm rejected")
	}

	// ML-DSA-87 envelopes may not.
	env87 := validSignEnvelope(t, AlgorithmMLDSA87)
	env87.Algorithm = ""
	b, err = json.Marshal(&env87)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if isValidSignJSON(string(b), signerMaster, AlgorithmMLDSA87) {
		t.Error("ML-DSA-87 envelope without algorithm accepted")
	}
}

func TestIsValidSignJSON_UnknownField(t *testing.T) {
	env := validSignEnvelope(t, AlgorithmMLDSA65)
	b, err := json.Marshal(&env)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	withExtra := `{"extra":1,` + string(b[1:])
	if isValidSignJSON(withExtra, signerIdentity, AlgorithmMLDSA65) {
		t.Error("envelope with unknown field accepted")
	}
}

func validEncryptedEnvelope(asymmetric bool) EncryptedData {
	ed := EncryptedData{
		KeyType:       encrypterRoom,
		KeyHash:       KeyHash("a key json"),
		EncryptedData: ToBase64(make([]byte, 48)),
		IV:            ToBase64(make([]byte, 12)),
		Algorithm:     AlgorithmAESGCM,
	}
	if asymmetric {
		ed.KeyType = encrypterAccount
		ed.CipherText = ToBase64(make([]byte, kemCiphertextSize))
	}
	return ed
}

func TestIsValidEncryptedJSON(t *testing.T) {
	asym := validEncryptedEnvelope(true)
	b, err := json.Marshal(&asym)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !isValidEncryptedJSON(string(b), encrypterAccount, true) {
		t.Error("valid asymmetric envelope rejected")
	}

	sym := validEncryptedEnvelope(false)
	b, err = json.Marshal(&sym)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !isValidEncryptedJSON(string(b), encrypterRoom, false) {
		t.Error("valid symmetric envelope rejected")
	}

	tests := []struct {
		name       string
		asymmetric bool
		mutate     func(*EncryptedData)
	}{
		{"wrong keyType", true, func(ed *EncryptedData) { ed.KeyType = encrypterShare }},
		{"bad keyHash", true, func(ed *EncryptedData) { ed.KeyHash = ToBase64(make([]byte, 16)) }},
		{"wrong iv size", true, func(ed *EncryptedData) { ed.IV = ToBase64(make([]byte, 16)) }},
		{"wrong algorithm", true, func(ed *EncryptedData) { ed.Algorithm = "AES-CBC" }},
		{"encryptedData shorter than tag", true, func(ed *EncryptedData) { ed.EncryptedData = ToBase64(make([]byte, 8)) }},
		{"missing cipherText", true, func(ed *EncryptedData) { ed.CipherText = "" }},
		{"symmetric with cipherText", false, func(ed *EncryptedData) { ed.CipherText = ToBase64(make([]byte, kemCiphertextSize)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := validEncryptedEnvelope(tt.asymmetric)
			tt.mutate(&ed)
			b, err := json.Marshal(&ed)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			role := encrypterAccount
			if !tt.asymmetric {
				role = encrypterRoom
			}
			if isValidEncryptedJSON(string(b), role, tt.asymmetric) {
				t.Error("mutated envelope accepted")
			}
		})
	}
}
