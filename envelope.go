package encryptink

import (
	"encoding/json"
)

// Structural validation of wire envelopes. Each shape in the protocol has an
// exact field set; parsers reject unknown fields, missing required fields,
// wrong literals, and binary fields whose decoded size is off. Validators
// never panic; any malformed input yields false.

const (
	keyHashRawSize    = 32
	ivRawSize         = 12
	kemCiphertextSize = 1088
	symmetricKeySize  = 32
	kemPublicSize     = 1184
	kemSecretSize     = 2400
	dsa65PublicSize   = 1952
	dsa65SecretSize   = 4032
	dsa65SigSize      = 3309
	dsa87PublicSize   = 2592
	dsa87SecretSize   = 4896
	dsa87SigSize      = 4627
)

// parseFields unmarshals s as a JSON object and checks its field set:
// every name in required must be present, and no name outside
// required+optional may appear.
func parseFields(s string, required, optional []string) (map[string]json.RawMessage, bool) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	return parseFieldsMap(m, required, optional)
}

// parseFieldsMap is parseFields over an already-unmarshalled object.
func parseFieldsMap(m map[string]json.RawMessage, required, optional []string) (map[string]json.RawMessage, bool) {
	for _, f := range required {
		if _, ok := m[f]; !ok {
			return nil, false
		}
	}

	for name := range m {
		known := false
		for _, f := range required {
			if name == f {
				known = true
				break
			}
		}
		for _, f := range optional {
			if name == f {
				known = true
				break
			}
		}
		if !known {
			return nil, false
		}
	}

	return m, true
}

func stringField(m map[string]json.RawMessage, name string) (string, bool) {
	raw, ok := m[name]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func intField(m map[string]json.RawMessage, name string) (int64, bool) {
	raw, ok := m[name]
	if !ok {
		return 0, false
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

func boolField(m map[string]json.RawMessage, name string) (bool, bool) {
	raw, ok := m[name]
	if !ok {
		return false, false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, false
	}
	return b, true
}

// optionalIntField accepts an absent field, an explicit null, or an integer.
func optionalIntField(m map[string]json.RawMessage, name string) bool {
	raw, ok := m[name]
	if !ok || string(raw) == "null" {
		return true
	}
	var n int64
	return json.Unmarshal(raw, &n) == nil
}

// keyShape describes the structural requirements of one key kind.
type keyShape struct {
	keyType     string
	algorithm   string // empty for kinds without an algorithm field
	rawSize     int
	timestamp   bool // required timestamp field
	optionalTS  bool // optional timestamp field (migrate kinds)
	sessionUUID bool
}

// isValidKeyJSON validates a key JSON string against its shape.
func isValidKeyJSON(s string, shape keyShape) bool {
	required := []string{"keyType", "key"}
	var optional []string
	if shape.algorithm != "" {
		required = append(required, "algorithm")
	}
	if shape.timestamp {
		required = append(required, "timestamp")
	} else if shape.optionalTS {
		optional = append(optional, "timestamp")
	}
	if shape.sessionUUID {
		required = append(required, "sessionUuid")
	}

	m, ok := parseFields(s, required, optional)
	if !ok {
		return false
	}

	if kt, ok := stringField(m, "keyType"); !ok || kt != shape.keyType {
		return false
	}

	if key, ok := stringField(m, "key"); !ok || !decodesToLength(key, shape.rawSize) {
		return false
	}

	if shape.algorithm != "" {
		if alg, ok := stringField(m, "algorithm"); !ok || alg != shape.algorithm {
			return false
		}
	}

	if shape.timestamp {
		if _, ok := intField(m, "timestamp"); !ok {
			return false
		}
	} else if shape.optionalTS && !optionalIntField(m, "timestamp") {
		return false
	}

	if shape.sessionUUID {
		if u, ok := stringField(m, "sessionUuid"); !ok || !IsValidUUIDv7(u) {
			return false
		}
	}

	return true
}

// isValidSignJSON validates a signature envelope for the given signer role.
// The algorithm literal is required by the current protocol; legacy ML-DSA-65
// envelopes without it are still accepted on parse.
func isValidSignJSON(s, signer, algorithm string) bool {
	m, ok := parseFields(s, []string{"keyType", "keyHash", "signature"}, []string{"algorithm"})
	if !ok {
		return false
	}

	if kt, ok := stringField(m, "keyType"); !ok || kt != signer {
		return false
	}

	if h, ok := stringField(m, "keyHash"); !ok || len(h) != 44 || !decodesToLength(h, keyHashRawSize) {
		return false
	}

	sigSize := dsa65SigSize
	if algorithm == AlgorithmMLDSA87 {
		sigSize = dsa87SigSize
	}

	if sig, ok := stringField(m, "signature"); !ok || !decodesToLength(sig, sigSize) {
		return false
	}

	if raw, present := m["algorithm"]; present && string(raw) != "null" {
		alg, ok := stringField(m, "algorithm")
		if !ok || alg != algorithm {
			return false
		}
	} else if algorithm != AlgorithmMLDSA65 {
		// Only ML-DSA-65 envelopes may omit the algorithm (legacy form).
		return false
	}

	return true
}

// isValidEncryptedJSON validates an encrypted envelope for the given
// encrypter role. Asymmetric envelopes must carry a 1088-byte KEM
// ciphertext; symmetric envelopes must not carry one.
func isValidEncryptedJSON(s, encrypter string, asymmetric bool) bool {
	required := []string{"keyType", "keyHash", "encryptedData", "iv", "algorithm"}
	var optional []string
	if asymmetric {
		required = append(required, "cipherText")
	} else {
		optional = append(optional, "cipherText")
	}

	m, ok := parseFields(s, required, optional)
	if !ok {
		return false
	}

	if kt, ok := stringField(m, "keyType"); !ok || kt != encrypter {
		return false
	}

	if h, ok := stringField(m, "keyHash"); !ok || !decodesToLength(h, keyHashRawSize) {
		return false
	}

	enc, ok := stringField(m, "encryptedData")
	if !ok {
		return false
	}
	if b, err := FromBase64(enc); err != nil || len(b) < 16 {
		return false
	}

	if iv, ok := stringField(m, "iv"); !ok || !decodesToLength(iv, ivRawSize) {
		return false
	}

	if alg, ok := stringField(m, "algorithm"); !ok || alg != AlgorithmAESGCM {
		return false
	}

	if asymmetric {
		if ct, ok := stringField(m, "cipherText"); !ok || !decodesToLength(ct, kemCiphertextSize) {
			return false
		}
	} else if raw, present := m["cipherText"]; present && string(raw) != "null" {
		return false
	}

	return true
}
