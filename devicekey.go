package encryptink

import (
	"encoding/json"
	"fmt"
)

// GenerateDeviceKey creates a new 32-byte device-local symmetric key.
// Device keys never leave the device; they protect data at rest.
func GenerateDeviceKey() (string, error) {
	keyB64, err := GenerateSymmetricKey()
	if err != nil {
		return "", err
	}

	b, err := json.Marshal(&DeviceKey{KeyType: keyTypeDevice, Key: keyB64})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncryptDataDeviceKey encrypts data under a device key using the symmetric
// AEAD envelope.
func EncryptDataDeviceKey(deviceKeyJSON, data string) (string, error) {
	if !IsValidDeviceKey(deviceKeyJSON) {
		return "", fmt.Errorf("%w: device key", ErrInvalidKey)
	}

	var dk DeviceKey
	if err := json.Unmarshal([]byte(deviceKeyJSON), &dk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return encryptSymmetric(encrypterDevice, deviceKeyJSON, dk.Key, data)
}

// DecryptDataDeviceKey opens a device-key envelope.
func DecryptDataDeviceKey(deviceKeyJSON, envelopeJSON string) (string, error) {
	if !IsValidDeviceKey(deviceKeyJSON) {
		return "", fmt.Errorf("%w: device key", ErrInvalidKey)
	}
	if !IsValidEncryptedDataDeviceKey(envelopeJSON) {
		return "", ErrInvalidEnvelope
	}

	var dk DeviceKey
	if err := json.Unmarshal([]byte(deviceKeyJSON), &dk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return decryptSymmetric(dk.Key, envelopeJSON)
}

// IsValidDeviceKey reports whether keyJSON is a structurally valid device key.
func IsValidDeviceKey(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeDevice, rawSize: symmetricKeySize})
}

// IsValidEncryptedDataDeviceKey reports whether envelopeJSON is a
// structurally valid device-key envelope.
func IsValidEncryptedDataDeviceKey(envelopeJSON string) bool {
	return isValidEncryptedJSON(envelopeJSON, encrypterDevice, false)
}
