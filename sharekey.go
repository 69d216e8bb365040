package encryptink

import (
	"encoding/json"
	"fmt"
	"time"
)

// GenerateShareKey creates a session-scoped ML-KEM-768 keypair together
// with the master signature over the public-key JSON. Share keys carry
// encrypted payloads between the sessions of one account.
func GenerateShareKey(masterPublicJSON, masterPrivateJSON, sessionUUID string) (*KeyPair, error) {
	if !IsValidUUIDv7(sessionUUID) {
		return nil, ErrInvalidUUID
	}
	if !IsValidMasterKeyPublic(masterPublicJSON) || !IsValidMasterKeyPrivate(masterPrivateJSON) {
		return nil, fmt.Errorf("%w: master key", ErrInvalidKey)
	}

	pubB64, privB64, err := GenerateKEMKeyPair()
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UnixMilli()
	pubJSON, err := json.Marshal(&ShareKey{
		KeyType:     keyTypeSharePublic,
		Key:         pubB64,
		Algorithm:   AlgorithmMLKEM768,
		Timestamp:   timestamp,
		SessionUUID: sessionUUID,
	})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&ShareKey{
		KeyType:     keyTypeSharePrivate,
		Key:         privB64,
		Algorithm:   AlgorithmMLKEM768,
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

// EncryptDataShareKey wraps data to a share public key using the hybrid
// KEM+AEAD envelope.
func EncryptDataShareKey(publicKeyJSON, data string) (string, error) {
	if !IsValidShareKeyPublic(publicKeyJSON) {
		return "", fmt.Errorf("%w: share public key", ErrInvalidKey)
	}

	var sk ShareKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &sk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return encryptHybrid(encrypterShare, publicKeyJSON, sk.Key, data)
}

// DecryptDataShareKey opens a share-key envelope with the share private key.
func DecryptDataShareKey(privateKeyJSON, envelopeJSON string) (string, error) {
	if !IsValidShareKeyPrivate(privateKeyJSON) {
		return "", fmt.Errorf("%w: share private key", ErrInvalidKey)
	}
	if !IsValidEncryptedDataShareKey(envelopeJSON) {
		return "", ErrInvalidEnvelope
	}

	var sk ShareKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &sk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return decryptHybrid(sk.Key, envelopeJSON)
}

// IsValidShareKeyPublic reports whether keyJSON is a structurally valid
// share public key.
func IsValidShareKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeSharePublic,
		algorithm:   AlgorithmMLKEM768,
		rawSize:     kemPublicSize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidShareKeyPrivate reports whether keyJSON is a structurally valid
// share private key.
func IsValidShareKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeSharePrivate,
		algorithm:   AlgorithmMLKEM768,
		rawSize:     kemSecretSize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidEncryptedDataShareKey reports whether envelopeJSON is a
// structurally valid share-key envelope.
func IsValidEncryptedDataShareKey(envelopeJSON string) bool {
	return isValidEncryptedJSON(envelopeJSON, encrypterShare, true)
}

// GenerateShareSignKey creates a session-scoped ML-DSA-65 keypair together
// with the master signature over the public-key JSON. Share-sign keys
// authenticate data shared between the sessions of one account.
func GenerateShareSignKey(masterPublicJSON, masterPrivateJSON, sessionUUID string) (*KeyPair, error) {
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
	pubJSON, err := json.Marshal(&ShareSignKey{
		KeyType:     keyTypeShareSignPublic,
		Key:         pubB64,
		Algorithm:   AlgorithmMLDSA65,
		Timestamp:   timestamp,
		SessionUUID: sessionUUID,
	})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&ShareSignKey{
		KeyType:     keyTypeShareSignPrivate,
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

// SignDataShareSignKey signs data with the share-sign private key.
func SignDataShareSignKey(privateKeyJSON, data, keyHash string) (string, error) {
	var sk ShareSignKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &sk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if sk.KeyType != keyTypeShareSignPrivate {
		return "", fmt.Errorf("%w: keyType %q is not a share-sign private key", ErrInvalidKey, sk.KeyType)
	}

	return newSignature(sk.Key, []byte(data), keyHash, signerShareSign, AlgorithmMLDSA65)
}

// VerifyDataShareSignKey reports whether signJSON is a valid share-sign
// signature over data.
func VerifyDataShareSignKey(publicKeyJSON, signJSON, data string) bool {
	var sk ShareSignKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &sk); err != nil {
		return false
	}
	if sk.KeyType != keyTypeShareSignPublic {
		return false
	}

	return verifySignature(sk.Key, signJSON, []byte(data), signerShareSign)
}

// IsValidShareSignKeyPublic reports whether keyJSON is a structurally valid
// share-sign public key.
func IsValidShareSignKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeShareSignPublic,
		algorithm:   AlgorithmMLDSA65,
		rawSize:     dsa65PublicSize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidShareSignKeyPrivate reports whether keyJSON is a structurally
// valid share-sign private key.
func IsValidShareSignKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeShareSignPrivate,
		algorithm:   AlgorithmMLDSA65,
		rawSize:     dsa65SecretSize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidSignShareSignKey reports whether signJSON is a structurally valid
// share-sign signature envelope.
func IsValidSignShareSignKey(signJSON string) bool {
	return isValidSignJSON(signJSON, signerShareSign, AlgorithmMLDSA65)
}
