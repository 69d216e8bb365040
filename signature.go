package encryptink

import (
	"encoding/json"
	"fmt"

	"github.com/takos-chat/encrypt-ink-go/internal/crypto"
)

// newSignature signs data with the base64-encoded ML-DSA secret key and
// wraps the result in a signature envelope. keyHash is the hash of the
// signer's public-key JSON, signer is the envelope keyType role, and
// algorithm selects ML-DSA-65 or ML-DSA-87.
func newSignature(secretKeyB64 string, data []byte, keyHash, signer, algorithm string) (string, error) {
	secretKey, err := FromBase64(secretKeyB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode signing key: %v", ErrInvalidKey, err)
	}
	defer crypto.Wipe(secretKey)

	var sig []byte
	switch algorithm {
	case AlgorithmMLDSA65:
		sig, err = crypto.SignDSA65(secretKey, data)
	case AlgorithmMLDSA87:
		sig, err = crypto.SignDSA87(secretKey, data)
	default:
		return "", fmt.Errorf("%w: unknown signature algorithm %q", ErrInvalidKey, algorithm)
	}
	if err != nil {
		return "", err
	}

	envelope := Sign{
		KeyType:   signer,
		KeyHash:   keyHash,
		Signature: ToBase64(sig),
		Algorithm: algorithm,
	}

	b, err := json.Marshal(&envelope)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// verifySignature checks a signature envelope against data using the
// base64-encoded ML-DSA public key. The envelope must name the expected
// signer role; an absent algorithm means ML-DSA-65 (legacy form).
func verifySignature(publicKeyB64, signJSON string, data []byte, signer string) bool {
	var envelope Sign
	if err := json.Unmarshal([]byte(signJSON), &envelope); err != nil {
		return false
	}

	if envelope.KeyType != signer {
		return false
	}

	publicKey, err := FromBase64(publicKeyB64)
	if err != nil {
		return false
	}

	sig, err := FromBase64(envelope.Signature)
	if err != nil {
		return false
	}

	switch envelope.Algorithm {
	case AlgorithmMLDSA87:
		return crypto.VerifyDSA87(publicKey, data, sig)
	case AlgorithmMLDSA65, "":
		return crypto.VerifyDSA65(publicKey, data, sig)
	default:
		return false
	}
}
