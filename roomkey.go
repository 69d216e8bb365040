package encryptink

import (
	"encoding/json"
	"fmt"
	"time"
)

// GenerateRoomKey creates a new 32-byte room key bound to the given session
// UUID. The room key is the symmetric key shared among the members of a
// room; see [EncryptRoomKeyWithAccountKeys] for distribution.
func GenerateRoomKey(sessionUUID string) (string, error) {
	if !IsValidUUIDv7(sessionUUID) {
		return "", ErrInvalidUUID
	}

	keyB64, err := GenerateSymmetricKey()
	if err != nil {
		return "", err
	}

	rk := RoomKey{
		KeyType:     keyTypeRoom,
		Key:         keyB64,
		Algorithm:   AlgorithmAESGCM,
		Timestamp:   time.Now().UnixMilli(),
		SessionUUID: sessionUUID,
	}

	b, err := json.Marshal(&rk)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncryptDataRoomKey encrypts data under a room key using the symmetric
// AEAD envelope.
func EncryptDataRoomKey(roomKeyJSON, data string) (string, error) {
	if !IsValidRoomKey(roomKeyJSON) {
		return "", fmt.Errorf("%w: room key", ErrInvalidKey)
	}

	var rk RoomKey
	if err := json.Unmarshal([]byte(roomKeyJSON), &rk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return encryptSymmetric(encrypterRoom, roomKeyJSON, rk.Key, data)
}

// DecryptDataRoomKey opens a room-key envelope.
func DecryptDataRoomKey(roomKeyJSON, envelopeJSON string) (string, error) {
	if !IsValidRoomKey(roomKeyJSON) {
		return "", fmt.Errorf("%w: room key", ErrInvalidKey)
	}
	if !IsValidEncryptedDataRoomKey(envelopeJSON) {
		return "", ErrInvalidEnvelope
	}

	var rk RoomKey
	if err := json.Unmarshal([]byte(roomKeyJSON), &rk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	return decryptSymmetric(rk.Key, envelopeJSON)
}

// IsValidRoomKey reports whether keyJSON is a structurally valid room key.
func IsValidRoomKey(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{
		keyType:     keyTypeRoom,
		algorithm:   AlgorithmAESGCM,
		rawSize:     symmetricKeySize,
		timestamp:   true,
		sessionUUID: true,
	})
}

// IsValidEncryptedDataRoomKey reports whether envelopeJSON is a
// structurally valid room-key envelope.
func IsValidEncryptedDataRoomKey(envelopeJSON string) bool {
	return isValidEncryptedJSON(envelopeJSON, encrypterRoom, false)
}
