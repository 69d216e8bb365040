package encryptink

import (
	"encoding/json"
	"fmt"
	"time"
)

// GenerateServerKey creates a new ML-DSA-65 server keypair. Server keys
// sign server assertions such as timestamps; they are not part of the
// master cross-signing graph.
func GenerateServerKey() (*KeyPair, error) {
	pubB64, privB64, err := GenerateDSA65KeyPair()
	if err != nil {
		return nil, err
	}

	timestamp := time.Now().UnixMilli()
	pubJSON, err := json.Marshal(&ServerKey{KeyType: keyTypeServerPublic, Key: pubB64, Timestamp: timestamp})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&ServerKey{KeyType: keyTypeServerPrivate, Key: privB64, Timestamp: timestamp})
	if err != nil {
		return nil, err
	}

	return &KeyPair{PublicKey: string(pubJSON), PrivateKey: string(privJSON)}, nil
}

// SignDataServerKey signs data with the server private key. keyHash is
// KeyHash of the server public-key JSON.
func SignDataServerKey(privateKeyJSON, data, keyHash string) (string, error) {
	var sk ServerKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &sk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if sk.KeyType != keyTypeServerPrivate {
		return "", fmt.Errorf("%w: keyType %q is not a server private key", ErrInvalidKey, sk.KeyType)
	}

	return newSignature(sk.Key, []byte(data), keyHash, signerServer, AlgorithmMLDSA65)
}

// VerifyDataServerKey reports whether signJSON is a valid server signature
// over data.
func VerifyDataServerKey(publicKeyJSON, signJSON, data string) bool {
	var sk ServerKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &sk); err != nil {
		return false
	}
	if sk.KeyType != keyTypeServerPublic {
		return false
	}

	return verifySignature(sk.Key, signJSON, []byte(data), signerServer)
}

// IsValidServerKeyPublic reports whether keyJSON is a structurally valid
// server public key.
func IsValidServerKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeServerPublic, rawSize: dsa65PublicSize, timestamp: true})
}

// IsValidServerKeyPrivate reports whether keyJSON is a structurally valid
// server private key.
func IsValidServerKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeServerPrivate, rawSize: dsa65SecretSize, timestamp: true})
}
