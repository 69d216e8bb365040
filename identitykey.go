package encryptink

import (
	"encoding/json"
	"fmt"
	"time"
)

// GenerateIdentityKey creates a new ML-DSA-65 identity keypair bound to the
// given session UUID, together with the master signature over the public-key
// JSON.
func GenerateIdentityKey(sessionUUID, masterPublicJSON, masterPrivateJSON string) (*KeyPair, error) {
	if !IsValidUUIDv7(sessionUUID) {
		return nil, ErrInvalidUUID
	}
	if !IsValidMasterKeyPublic(masterPublicJSON) || !IsValidMasterKeyPrivate(masterPrivateJSON) {
		return nil, fmt.Errorf("%w: master key", ErrInvalidKey)
	}

	pubB64, privB64, err := GenerateDSA65KeyPair()
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UnixMilli()
	pubJSON, err := json.Marshal(&IdentityKey{
		KeyType:     keyTypeIdentityPublic,
		Key:         pubB64,
		Algorithm:   AlgorithmMLDSA65,
		Timestamp:   timestamp,
		SessionUUID: sessionUUID,
	})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&IdentityKey{
		KeyType:     keyTypeIdentityPrivate,
		Key:         privB64,
		Algorithm:   AlgorithmMLDSA65,
		Timestamp:   timestamp,
		SessionUUID: sessionUUID,
	})
	if err != nil {
		return nil, err
	}

	sign, err := SignMasterKey(masterPrivateJSON, string(pubJSON), KeyHash(masterPublicJSON))
	if err != nil {
		return nil, err
	}

	return &KeyPair{PublicKey: string(pubJSON), PrivateKey: string(privJSON), Sign: sign}, nil
}

// SignIdentityKey signs data with the identity private key. keyHash is
// KeyHash of the identity public-key JSON.
func SignIdentityKey(privateKeyJSON, data, keyHash string) (string, error) {
	var ik IdentityKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &ik); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if ik.KeyType != keyTypeIdentityPrivate {
		return "", fmt.Errorf("%w: keyType %q is not an identity private key", ErrInvalidKey, ik.KeyType)
	}

	return newSignature(ik.Key, []byte(data), keyHash, signerIdentity, AlgorithmMLDSA65)
}

// VerifyIdentityKey reports whether signJSON is a valid identity signature
// over data.
func VerifyIdentityKey(publicKeyJSON, signJSON, data string) bool {
	var ik IdentityKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &ik); err != nil {
		return false
	}
	if ik.KeyType != keyTypeIdentityPublic {
		return false
	}

	return verifySignature(ik.Key, signJSON, []byte(data), signerIdentity)
}

// IsValidIdentityKeyPublic reports whether keyJSON is a structurally valid
// identity public key.
func IsValidIdentityKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeIdentityPublic,
		algorithm:   AlgorithmMLDSA65,
		rawSize:     dsa65PublicSize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidIdentityKeyPrivate reports whether keyJSON is a structurally valid
// identity private key.
func IsValidIdentityKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeIdentityPrivate,
		algorithm:   AlgorithmMLDSA65,
		rawSize:     dsa65SecretSize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidSignIdentityKey reports whether signJSON is a structurally valid
// identity signature envelope.
func IsValidSignIdentityKey(signJSON string) bool {
	return isValidSignJSON(signJSON, signerIdentity, AlgorithmMLDSA65)
}
