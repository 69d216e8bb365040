package encryptink

import (
	"encoding/json"
	"fmt"
)

// Migrate keys move an account to a new device. They are stand-alone by
// design: no master signature and no timestamp or session binding, so a
// migration can be performed before the new device holds any trusted keys.

// GenerateMigrateKey creates a stand-alone ML-KEM-768 migration keypair.
func GenerateMigrateKey() (*KeyPair, error) {
	pubB64, privB64, err := GenerateKEMKeyPair()
	if err != nil {
		return nil, err
	}

	pubJSON, err := json.Marshal(&MigrateKey{KeyType: keyTypeMigratePublic, Key: pubB64})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&MigrateKey{KeyType: keyTypeMigratePrivate, Key: privB64})
	if err != nil {
		return nil, err
	}

	return &KeyPair{PublicKey: string(pubJSON), PrivateKey: string(privJSON)}, nil
}

// EncryptDataMigrateKey wraps data to a migrate public key using the hybrid
// KEM+AEAD envelope.
func EncryptDataMigrateKey(publicKeyJSON, data string) (string, error) {
	if !IsValidMigrateKeyPublic(publicKeyJSON) {
		return "", fmt.Errorf("%w: migrate public key", ErrInvalidKey)
	}

	var mk MigrateKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &mk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return encryptHybrid(encrypterMigrate, publicKeyJSON, mk.Key, data)
}

// DecryptDataMigrateKey opens a migrate-key envelope with the migrate
// private key.
func DecryptDataMigrateKey(privateKeyJSON, envelopeJSON string) (string, error) {
	if !IsValidMigrateKeyPrivate(privateKeyJSON) {
		return "", fmt.Errorf("%w: migrate private key", ErrInvalidKey)
	}
	if !IsValidEncryptedDataMigrateKey(envelopeJSON) {
		return "", ErrInvalidEnvelope
	}

	var mk MigrateKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &mk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return decryptHybrid(mk.Key, envelopeJSON)
}

// IsValidMigrateKeyPublic reports whether keyJSON is a structurally valid
// migrate public key.
func IsValidMigrateKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeMigratePublic, rawSize: kemPublicSize, optionalTS: true})
}

// IsValidMigrateKeyPrivate reports whether keyJSON is a structurally valid
// migrate private key.
func IsValidMigrateKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeMigratePrivate, rawSize: kemSecretSize, optionalTS: true})
}

// IsValidEncryptedDataMigrateKey reports whether envelopeJSON is a
// structurally valid migrate-key envelope.
func IsValidEncryptedDataMigrateKey(envelopeJSON string) bool {
	return isValidEncryptedJSON(envelopeJSON, encrypterMigrate, true)
}

// GenerateMigrateSignKey creates a stand-alone ML-DSA-65 migration signing
// keypair.
func GenerateMigrateSignKey() (*KeyPair, error) {
	pubB64, privB64, err := GenerateDSA65KeyPair()
	if err != nil {
		return nil, err
	}

	pubJSON, err := json.Marshal(&MigrateSignKey{KeyType: keyTypeMigrateSignPublic, Key: pubB64})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&MigrateSignKey{KeyType: keyTypeMigrateSignPriv, Key: privB64})
	if err != nil {
		return nil, err
	}

	return &KeyPair{PublicKey: string(pubJSON), PrivateKey: string(privJSON)}, nil
}

// SignDataMigrateSignKey signs data with the migrate-sign private key.
func SignDataMigrateSignKey(privateKeyJSON, data, keyHash string) (string, error) {
	var mk MigrateSignKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &mk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if mk.KeyType != keyTypeMigrateSignPriv {
		return "", fmt.Errorf("%w: keyType %q is not a migrate-sign private key", ErrInvalidKey, mk.KeyType)
	}

	return newSignature(mk.Key, []byte(data), keyHash, signerMigrateSign, AlgorithmMLDSA65)
}

// VerifyDataMigrateSignKey reports whether signJSON is a valid migrate-sign
// signature over data.
func VerifyDataMigrateSignKey(publicKeyJSON, signJSON, data string) bool {
	var mk MigrateSignKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &mk); err != nil {
		return false
	}
	if mk.KeyType != keyTypeMigrateSignPublic {
		return false
	}

	return verifySignature(mk.Key, signJSON, []byte(data), signerMigrateSign)
}

// IsValidMigrateSignKeyPublic reports whether keyJSON is a structurally
// valid migrate-sign public key.
func IsValidMigrateSignKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeMigrateSignPublic, rawSize: dsa65PublicSize, optionalTS: true})
}

// IsValidMigrateSignKeyPrivate reports whether keyJSON is a structurally
// valid migrate-sign private key.
func IsValidMigrateSignKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeMigrateSignPriv, rawSize: dsa65SecretSize, optionalTS: true})
}

// IsValidSignMigrateSignKey reports whether signJSON is a structurally
// valid migrate-sign signature envelope.
func IsValidSignMigrateSignKey(signJSON string) bool {
	return isValidSignJSON(signJSON, signerMigrateSign, AlgorithmMLDSA65)
}
