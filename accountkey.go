package encryptink

import (
	"encoding/json"
	"fmt"
	"time"
)

// GenerateAccountKey creates a new ML-KEM-768 account keypair together with
// the master signature over the public-key JSON. Account keys receive
// wrapped room keys from other members.
func GenerateAccountKey(masterPublicJSON, masterPrivateJSON string) (*KeyPair, error) {
	if !IsValidMasterKeyPublic(masterPublicJSON) || !IsValidMasterKeyPrivate(masterPrivateJSON) {
		return nil, fmt.Errorf("%w: master key", ErrInvalidKey)
	}

	pubB64, privB64, err := GenerateKEMKeyPair()
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UnixMilli()
	pubJSON, err := json.Marshal(&AccountKey{
		KeyType:   keyTypeAccountPublic,
		Key:       pubB64,
		Algorithm: AlgorithmMLKEM768,
		Timestamp: timestamp,
	})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&AccountKey{
		KeyType:   keyTypeAccountPrivate,
		Key:       privB64,
		Algorithm: AlgorithmMLKEM768,
		Timestamp: timestamp,
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

// EncryptDataAccountKey wraps data to an account public key using the
// hybrid KEM+AEAD envelope.
func EncryptDataAccountKey(publicKeyJSON, data string) (string, error) {
	if !IsValidAccountKeyPublic(publicKeyJSON) {
		return "", fmt.Errorf("%w: account public key", ErrInvalidKey)
	}

	var ak AccountKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &ak); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return encryptHybrid(encrypterAccount, publicKeyJSON, ak.Key, data)
}

// DecryptDataAccountKey opens an account-key envelope with the account
// private key.
func DecryptDataAccountKey(privateKeyJSON, envelopeJSON string) (string, error) {
	if !IsValidAccountKeyPrivate(privateKeyJSON) {
		return "", fmt.Errorf("%w: account private key", ErrInvalidKey)
	}
	if !IsValidEncryptedDataAccountKey(envelopeJSON) {
		return "", ErrInvalidEnvelope
	}

	var ak AccountKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &ak); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return decryptHybrid(ak.Key, envelopeJSON)
}

// IsValidAccountKeyPublic reports whether keyJSON is a structurally valid
// account public key.
func IsValidAccountKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:   keyTypeAccountPublic,
		algorithm: AlgorithmMLKEM768,
		rawSize:   kemPublicSize,
		timestamp: true,
	})
}

// IsValidAccountKeyPrivate reports whether keyJSON is a structurally valid
// account private key.
func IsValidAccountKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:   keyTypeAccountPrivate,
		algorithm: AlgorithmMLKEM768,
		rawSize:   kemSecretSize,
		timestamp: true,
	})
}

// IsValidEncryptedDataAccountKey reports whether envelopeJSON is a
// structurally valid account-key envelope.
func IsValidEncryptedDataAccountKey(envelopeJSON string) bool {
	return isValidEncryptedJSON(envelopeJSON, encrypterAccount, true)
}

// IsValidEncryptedAccountKey is an alias of [IsValidEncryptedDataAccountKey]
// kept for compatibility with the legacy API surface.
func IsValidEncryptedAccountKey(envelopeJSON string) bool {
	return IsValidEncryptedDataAccountKey(envelopeJSON)
}
