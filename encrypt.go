package encryptink

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/takos-chat/encrypt-ink-go/internal/crypto"
)

// Hybrid KEM+AEAD and symmetric AEAD envelopes, factored once and shared by
// every key kind. The KEM shared secret is the AES-256-GCM key; the IV is a
// fresh 12-byte CSPRNG draw per envelope.

// encryptHybrid wraps data to an ML-KEM-768 recipient. recipientJSON is the
// recipient's full public-key JSON (hashed into keyHash) and publicKeyB64
// its raw key field.
func encryptHybrid(encrypter, recipientJSON, publicKeyB64, data string) (string, error) {
	publicKey, err := FromBase64(publicKeyB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode public key: %v", ErrInvalidKey, err)
	}

	ciphertext, sharedSecret, err := crypto.Encapsulate(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	defer crypto.Wipe(sharedSecret)

	iv, err := crypto.RandomBytes(crypto.AESNonceSize)
	if err != nil {
		return "", err
	}

	encrypted, err := crypto.EncryptAESGCM(sharedSecret, iv, []byte(data))
	if err != nil {
		return "", err
	}

	envelope := EncryptedData{
		KeyType:       encrypter,
		KeyHash:       KeyHash(recipientJSON),
		EncryptedData: ToBase64(encrypted),
		IV:            ToBase64(iv),
		CipherText:    ToBase64(ciphertext),
		Algorithm:     AlgorithmAESGCM,
	}

	b, err := json.Marshal(&envelope)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decryptHybrid opens a KEM+AEAD envelope with the recipient's raw secret
// key. Decapsulation and AEAD failures both surface as ErrDecryptionFailed
// with no partial output.
func decryptHybrid(secretKeyB64, envelopeJSON string) (string, error) {
	var envelope EncryptedData
	if err := json.Unmarshal([]byte(envelopeJSON), &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	secretKey, err := FromBase64(secretKeyB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode secret key: %v", ErrInvalidKey, err)
	}
	defer crypto.Wipe(secretKey)

	ciphertext, err := FromBase64(envelope.CipherText)
	if err != nil {
		return "", fmt.Errorf("%w: decode cipherText: %v", ErrInvalidEnvelope, err)
	}

	iv, err := FromBase64(envelope.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %v", ErrInvalidEnvelope, err)
	}

	encrypted, err := FromBase64(envelope.EncryptedData)
	if err != nil {
		return "", fmt.Errorf("%w: decode encryptedData: %v", ErrInvalidEnvelope, err)
	}

	sharedSecret, err := crypto.Decapsulate(secretKey, ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decapsulate: %v", ErrDecryptionFailed, err)
	}
	defer crypto.Wipe(sharedSecret)

	plaintext, err := crypto.DecryptAESGCM(sharedSecret, iv, encrypted)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	if !utf8.Valid(plaintext) {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}

// encryptSymmetric encrypts data under a 32-byte symmetric key. keyJSON is
// the full room/device key JSON (hashed into keyHash) and keyB64 its raw
// key field. Symmetric envelopes carry no KEM ciphertext.
func encryptSymmetric(encrypter, keyJSON, keyB64, data string) (string, error) {
	key, err := FromBase64(keyB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode key: %v", ErrInvalidKey, err)
	}
	defer crypto.Wipe(key)

	iv, err := crypto.RandomBytes(crypto.AESNonceSize)
	if err != nil {
		return "", err
	}

	encrypted, err := crypto.EncryptAESGCM(key, iv, []byte(data))
	if err != nil {
		return "", err
	}

	envelope := EncryptedData{
		KeyType:       encrypter,
		KeyHash:       KeyHash(keyJSON),
		EncryptedData: ToBase64(encrypted),
		IV:            ToBase64(iv),
		Algorithm:     AlgorithmAESGCM,
	}

	b, err := json.Marshal(&envelope)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decryptSymmetric opens a symmetric envelope with the raw key.
func decryptSymmetric(keyB64, envelopeJSON string) (string, error) {
	var envelope EncryptedData
	if err := json.Unmarshal([]byte(envelopeJSON), &envelope); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}

	key, err := FromBase64(keyB64)
	if err != nil {
		return "", fmt.Errorf("%w: decode key: %v", ErrInvalidKey, err)
	}
	defer crypto.Wipe(key)

	iv, err := FromBase64(envelope.IV)
	if err != nil {
		return "", fmt.Errorf("%w: decode iv: %v", ErrInvalidEnvelope, err)
	}

	encrypted, err := FromBase64(envelope.EncryptedData)
	if err != nil {
		return "", fmt.Errorf("%w: decode encryptedData: %v", ErrInvalidEnvelope, err)
	}

	plaintext, err := crypto.DecryptAESGCM(key, iv, encrypted)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	if !utf8.Valid(plaintext) {
		return "", ErrDecryptionFailed
	}
	return string(plaintext), nil
}
