package encryptink

import (
	"crypto/subtle"
	"encoding/json"

	"github.com/takos-chat/encrypt-ink-go/internal/crypto"
)

// Low-level key utilities. The per-kind generators build on these;
// they are also exported for callers that manage raw base64 key material
// directly (key backup, migration tooling).

// GenerateKEMKeyPair creates a raw ML-KEM-768 keypair, base64-encoded.
func GenerateKEMKeyPair() (publicKey, secretKey string, err error) {
	pub, priv, err := crypto.GenerateKEMKeyPair()
	if err != nil {
		return "", "", err
	}
	defer crypto.Wipe(priv)
	return ToBase64(pub), ToBase64(priv), nil
}

// GenerateDSA65KeyPair creates a raw ML-DSA-65 keypair, base64-encoded.
func GenerateDSA65KeyPair() (publicKey, secretKey string, err error) {
	pub, priv, err := crypto.GenerateDSA65KeyPair()
	if err != nil {
		return "", "", err
	}
	defer crypto.Wipe(priv)
	return ToBase64(pub), ToBase64(priv), nil
}

// GenerateDSA87KeyPair creates a raw ML-DSA-87 keypair, base64-encoded.
func GenerateDSA87KeyPair() (publicKey, secretKey string, err error) {
	pub, priv, err := crypto.GenerateDSA87KeyPair()
	if err != nil {
		return "", "", err
	}
	defer crypto.Wipe(priv)
	return ToBase64(pub), ToBase64(priv), nil
}

// GenerateSymmetricKey creates a 32-byte AES key, base64-encoded.
func GenerateSymmetricKey() (string, error) {
	key, err := crypto.RandomBytes(crypto.AESKeySize)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(key)
	return ToBase64(key), nil
}

// IsValidKEMKey reports whether keyB64 decodes to an ML-KEM-768 key of the
// expected half's size.
func IsValidKEMKey(keyB64 string, isPublic bool) bool {
	want := kemSecretSize
	if isPublic {
		want = kemPublicSize
	}
	return decodesToLength(keyB64, want)
}

// IsValidDSA65Key reports whether keyB64 decodes to an ML-DSA-65 key of the
// expected half's size.
func IsValidDSA65Key(keyB64 string, isPublic bool) bool {
	want := dsa65SecretSize
	if isPublic {
		want = dsa65PublicSize
	}
	return decodesToLength(keyB64, want)
}

// IsValidDSA87Key reports whether keyB64 decodes to an ML-DSA-87 key of the
// expected half's size.
func IsValidDSA87Key(keyB64 string, isPublic bool) bool {
	want := dsa87SecretSize
	if isPublic {
		want = dsa87PublicSize
	}
	return decodesToLength(keyB64, want)
}

// IsValidSymmetricKey reports whether keyB64 decodes to a 32-byte AES key.
func IsValidSymmetricKey(keyB64 string) bool {
	return decodesToLength(keyB64, symmetricKeySize)
}

// IsValidKeyPairSign reports whether the public and private key JSONs form a
// working signing pair, by producing and verifying a trial signature. Master
// pairs use ML-DSA-87, every other signing kind ML-DSA-65.
func IsValidKeyPairSign(publicKeyJSON, privateKeyJSON string) bool {
	var pub, priv struct {
		KeyType string `json:"keyType"`
		Key     string `json:"key"`
	}
	if err := json.Unmarshal([]byte(publicKeyJSON), &pub); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(privateKeyJSON), &priv); err != nil {
		return false
	}

	data := []byte("test")

	pubKey, err := FromBase64(pub.Key)
	if err != nil {
		return false
	}
	privKey, err := FromBase64(priv.Key)
	if err != nil {
		return false
	}
	defer crypto.Wipe(privKey)

	if pub.KeyType == keyTypeMasterPublic && priv.KeyType == keyTypeMasterPrivate {
		sig, err := crypto.SignDSA87(privKey, data)
		if err != nil {
			return false
		}
		return crypto.VerifyDSA87(pubKey, data, sig)
	}

	sig, err := crypto.SignDSA65(privKey, data)
	if err != nil {
		return false
	}
	return crypto.VerifyDSA65(pubKey, data, sig)
}

// IsValidKeyPairEncrypt reports whether the public and private key JSONs
// form a working ML-KEM-768 pair, by comparing the shared secrets of an
// encapsulate/decapsulate round-trip.
func IsValidKeyPairEncrypt(publicKeyJSON, privateKeyJSON string) bool {
	var pub, priv struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal([]byte(publicKeyJSON), &pub); err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(privateKeyJSON), &priv); err != nil {
		return false
	}

	pubKey, err := FromBase64(pub.Key)
	if err != nil {
		return false
	}
	privKey, err := FromBase64(priv.Key)
	if err != nil {
		return false
	}
	defer crypto.Wipe(privKey)

	ct, ss1, err := crypto.Encapsulate(pubKey)
	if err != nil {
		return false
	}
	defer crypto.Wipe(ss1)

	ss2, err := crypto.Decapsulate(privKey, ct)
	if err != nil {
		return false
	}
	defer crypto.Wipe(ss2)

	return subtle.ConstantTimeCompare(ss1, ss2) == 1
}

const randomStringAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RandomString returns a random alphanumeric string of length n.
func RandomString(n int) (string, error) {
	raw, err := crypto.RandomBytes(n)
	if err != nil {
		return "", err
	}

	b := make([]byte, n)
	for i, c := range raw {
		b[i] = randomStringAlphabet[int(c)%len(randomStringAlphabet)]
	}
	return string(b), nil
}
