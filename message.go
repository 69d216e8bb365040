package encryptink

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

const (
	// messageFreshnessWindowMillis is how far a message timestamp may drift
	// from the server timestamp, inclusive on both ends.
	messageFreshnessWindowMillis = 60000

	// maxChannelLength is the longest accepted channel name.
	maxChannelLength = 100
)

var messageValueTypes = map[string]bool{
	"text":      true,
	"image":     true,
	"video":     true,
	"audio":     true,
	"file":      true,
	"thumbnail": true,
}

// EncryptMessage encrypts a cleartext message value under the room key,
// assembles the outer message, and signs the serialized outer message with
// the sender's identity key. identityPublicKeyHash is KeyHash of the
// sender's identity public-key JSON, recorded in the signature envelope.
func EncryptMessage(value *NotEncryptMessageValue, metadata MessageMetadata, roomKeyJSON, identityPrivateJSON, identityPublicKeyHash, roomID string) (*SignedMessage, error) {
	if value == nil || !messageValueTypes[value.Type] {
		return nil, fmt.Errorf("%w: unknown value type", ErrInvalidMessage)
	}
	if utf8.RuneCountInString(metadata.Channel) > maxChannelLength {
		return nil, fmt.Errorf("%w: channel longer than %d", ErrInvalidMessage, maxChannelLength)
	}
	if !IsValidRoomKey(roomKeyJSON) {
		return nil, fmt.Errorf("%w: room key", ErrInvalidKey)
	}
	if !IsValidIdentityKeyPrivate(identityPrivateJSON) {
		return nil, fmt.Errorf("%w: identity private key", ErrInvalidKey)
	}

	inner, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	encryptedValue, err := EncryptDataRoomKey(roomKeyJSON, string(inner))
	if err != nil {
		return nil, err
	}

	outer := EncryptedMessage{
		Encrypted: true,
		Value:     encryptedValue,
		Channel:   metadata.Channel,
		Timestamp: metadata.Timestamp,
		IsLarge:   metadata.IsLarge,
		Original:  metadata.Original,
		RoomID:    roomID,
	}

	messageStr, err := json.Marshal(&outer)
	if err != nil {
		return nil, err
	}

	sign, err := SignIdentityKey(identityPrivateJSON, string(messageStr), identityPublicKeyHash)
	if err != nil {
		return nil, err
	}

	return &SignedMessage{Message: string(messageStr), Sign: sign}, nil
}

// ServerData carries the trusted server-side view used to check message
// freshness.
type ServerData struct {
	Timestamp int64 `json:"timestamp"`
}

// DecryptMessage verifies the identity signature over a signed message,
// checks the room id and the freshness window against the server timestamp,
// and decrypts the inner value with the room key. Cleartext messages pass
// the same guards and are returned as-is.
func DecryptMessage(msg *SignedMessage, serverData ServerData, roomKeyJSON, identityPublicJSON, roomID string) (*NotEncryptMessage, error) {
	if msg == nil {
		return nil, ErrInvalidMessage
	}
	if !IsValidIdentityKeyPublic(identityPublicJSON) {
		return nil, fmt.Errorf("%w: identity public key", ErrInvalidKey)
	}

	if !VerifyIdentityKey(identityPublicJSON, msg.Sign, msg.Message) {
		return nil, ErrSignatureVerificationFailed
	}

	var outer struct {
		Encrypted bool            `json:"encrypted"`
		Value     json.RawMessage `json:"value"`
		Channel   string          `json:"channel"`
		Timestamp int64           `json:"timestamp"`
		IsLarge   bool            `json:"isLarge"`
		Original  string          `json:"original"`
		RoomID    string          `json:"roomid"`
	}
	if err := json.Unmarshal([]byte(msg.Message), &outer); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	if outer.RoomID != roomID {
		return nil, ErrRoomIDMismatch
	}

	delta := outer.Timestamp - serverData.Timestamp
	if delta < 0 {
		delta = -delta
	}
	if delta > messageFreshnessWindowMillis {
		return nil, ErrTimestampOutOfRange
	}

	result := NotEncryptMessage{
		Encrypted: false,
		Channel:   outer.Channel,
		Timestamp: outer.Timestamp,
		IsLarge:   outer.IsLarge,
		Original:  outer.Original,
		RoomID:    outer.RoomID,
	}

	if !outer.Encrypted {
		if err := json.Unmarshal(outer.Value, &result.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
		return &result, nil
	}

	if !IsValidRoomKey(roomKeyJSON) {
		return nil, fmt.Errorf("%w: room key", ErrInvalidKey)
	}

	var envelope string
	if err := json.Unmarshal(outer.Value, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if !IsValidEncryptedDataRoomKey(envelope) {
		return nil, ErrInvalidEnvelope
	}

	inner, err := DecryptDataRoomKey(roomKeyJSON, envelope)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(inner), &result.Value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	return &result, nil
}

// IsValidMessage reports whether messageStr is a structurally valid outer
// message, encrypted or cleartext.
func IsValidMessage(messageStr string) bool {
	m, ok := parseFields(messageStr,
		[]string{"encrypted", "value", "channel", "timestamp", "isLarge", "roomid"},
		[]string{"original"})
	if !ok {
		return false
	}

	encrypted, ok := boolField(m, "encrypted")
	if !ok {
		return false
	}

	if channel, ok := stringField(m, "channel"); !ok || utf8.RuneCountInString(channel) > maxChannelLength {
		return false
	}
	if _, ok := intField(m, "timestamp"); !ok {
		return false
	}
	if _, ok := boolField(m, "isLarge"); !ok {
		return false
	}
	if _, ok := stringField(m, "roomid"); !ok {
		return false
	}
	if raw, present := m["original"]; present && string(raw) != "null" {
		if _, ok := stringField(m, "original"); !ok {
			return false
		}
	}

	if encrypted {
		envelope, ok := stringField(m, "value")
		return ok && IsValidEncryptedDataRoomKey(envelope)
	}
	return isValidMessageValue(m["value"])
}

// isValidMessageValue checks the cleartext inner value: known type, content
// that is itself a JSON document, and well-formed reply/mention shapes.
// mention may be absent, null, or an array of strings.
func isValidMessageValue(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}

	var vm map[string]json.RawMessage
	if err := json.Unmarshal(raw, &vm); err != nil {
		return false
	}

	mv, ok := parseFieldsMap(vm, []string{"type", "content"}, []string{"reply", "mention"})
	if !ok {
		return false
	}

	if t, ok := stringField(mv, "type"); !ok || !messageValueTypes[t] {
		return false
	}

	content, ok := stringField(mv, "content")
	if !ok || !json.Valid([]byte(content)) {
		return false
	}

	if rawReply, present := mv["reply"]; present && string(rawReply) != "null" {
		var reply ReplyInfo
		if err := json.Unmarshal(rawReply, &reply); err != nil || reply.ID == "" {
			return false
		}
	}

	if rawMention, present := mv["mention"]; present && string(rawMention) != "null" {
		var mention []string
		if err := json.Unmarshal(rawMention, &mention); err != nil {
			return false
		}
	}

	return true
}
