package encryptink

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type messageFixture struct {
	master   *KeyPair
	identity *KeyPair
	roomKey  string
	now      int64
}

func newMessageFixture(t *testing.T) *messageFixture {
	t.Helper()
	master := mustGenerateMaster(t)
	return &messageFixture{
		master:   master,
		identity: mustGenerateIdentity(t, master),
		roomKey:  mustGenerateRoomKey(t),
		now:      time.Now().UnixMilli(),
	}
}

func (f *messageFixture) encrypt(t *testing.T, value *NotEncryptMessageValue, meta MessageMetadata) *SignedMessage {
	t.Helper()
	msg, err := EncryptMessage(value, meta, f.roomKey, f.identity.PrivateKey, KeyHash(f.identity.PublicKey), testSessionUUID)
	if err != nil {
		t.Fatalf("EncryptMessage() error = %v", err)
	}
	return msg
}

func textValue(t *testing.T, text string) *NotEncryptMessageValue {
	t.Helper()
	content, err := CreateTextContent(TextContent{Text: text})
	if err != nil {
		t.Fatalf("CreateTextContent() error = %v", err)
	}
	return &NotEncryptMessageValue{Type: "text", Content: content}
}

func TestEncryptDecryptMessage(t *testing.T) {
	f := newMessageFixture(t)
	value := textValue(t, "hello room")

	msg := f.encrypt(t, value, MessageMetadata{Channel: "c", Timestamp: f.now, IsLarge: false})

	if !IsValidMessage(msg.Message) {
		t.Error("encrypted message fails IsValidMessage")
	}

	decrypted, err := DecryptMessage(msg, ServerData{Timestamp: f.now}, f.roomKey, f.identity.PublicKey, testSessionUUID)
	if err != nil {
		t.Fatalf("DecryptMessage() error = %v", err)
	}

	if decrypted.Encrypted {
		t.Error("decrypted message still marked encrypted")
	}
	if decrypted.RoomID != testSessionUUID {
		t.Errorf("roomid = %q, want %q", decrypted.RoomID, testSessionUUID)
	}
	if decrypted.Channel != "c" {
		t.Errorf("channel = %q, want %q", decrypted.Channel, "c")
	}
	if decrypted.Timestamp != f.now {
		t.Errorf("timestamp = %d, want %d", decrypted.Timestamp, f.now)
	}
	if diff := cmp.Diff(*value, decrypted.Value); diff != "" {
		t.Errorf("inner value mismatch (-want +got):\n%s", diff)
	}
}

func TestDecryptMessage_FreshnessWindow(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.encrypt(t, textValue(t, "fresh?"), MessageMetadata{Channel: "c", Timestamp: f.now})

	tests := []struct {
		name      string
		serverTS  int64
		wantError bool
	}{
		{"exact", f.now, false},
		{"server ahead 60000", f.now + 60000, false},
		{"server behind 60000", f.now - 60000, false},
		{"server ahead 60001", f.now + 60001, true},
		{"server behind 60001", f.now - 60001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptMessage(msg, ServerData{Timestamp: tt.serverTS}, f.roomKey, f.identity.PublicKey, testSessionUUID)
			if tt.wantError {
				if !errors.Is(err, ErrTimestampOutOfRange) {
					t.Errorf("expected ErrTimestampOutOfRange, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestDecryptMessage_RoomIDMismatch(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.encrypt(t, textValue(t, "x"), MessageMetadata{Channel: "c", Timestamp: f.now})

	otherRoom := "018fdb31-0798-78a2-b4c9-e145d5b5b88f"
	if _, err := DecryptMessage(msg, ServerData{Timestamp: f.now}, f.roomKey, f.identity.PublicKey, otherRoom); !errors.Is(err, ErrRoomIDMismatch) {
		t.Errorf("expected ErrRoomIDMismatch, got %v", err)
	}
}

func TestDecryptMessage_SignatureRequired(t *testing.T) {
	f := newMessageFixture(t)
	msg := f.encrypt(t, textValue(t, "x"), MessageMetadata{Channel: "c", Timestamp: f.now})

	// Tampering with the message string invalidates the signature.
	tampered := &SignedMessage{Message: strings.Replace(msg.Message, `"isLarge":false`, `"isLarge":true`, 1), Sign: msg.Sign}
	if _, err := DecryptMessage(tampered, ServerData{Timestamp: f.now}, f.roomKey, f.identity.PublicKey, testSessionUUID); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("expected ErrSignatureVerificationFailed, got %v", err)
	}

	// A signature from another identity must not verify.
	otherIdentity := mustGenerateIdentity(t, f.master)
	otherSign, err := SignIdentityKey(otherIdentity.PrivateKey, msg.Message, KeyHash(otherIdentity.PublicKey))
	if err != nil {
		t.Fatalf("SignIdentityKey() error = %v", err)
	}
	wrongSigner := &SignedMessage{Message: msg.Message, Sign: otherSign}
	if _, err := DecryptMessage(wrongSigner, ServerData{Timestamp: f.now}, f.roomKey, f.identity.PublicKey, testSessionUUID); !errors.Is(err, ErrSignatureVerificationFailed) {
		t.Errorf("expected ErrSignatureVerificationFailed, got %v", err)
	}
}

func TestDecryptMessage_Cleartext(t *testing.T) {
	f := newMessageFixture(t)

	outer := NotEncryptMessage{
		Encrypted: false,
		Value:     *textValue(t, "public announcement"),
		Channel:   "c",
		Timestamp: f.now,
		IsLarge:   false,
		RoomID:    testSessionUUID,
	}
	messageStr, err := json.Marshal(&outer)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	sign, err := SignIdentityKey(f.identity.PrivateKey, string(messageStr), KeyHash(f.identity.PublicKey))
	if err != nil {
		t.Fatalf("SignIdentityKey() error = %v", err)
	}

	msg := &SignedMessage{Message: string(messageStr), Sign: sign}
	decrypted, err := DecryptMessage(msg, ServerData{Timestamp: f.now}, f.roomKey, f.identity.PublicKey, testSessionUUID)
	if err != nil {
		t.Fatalf("DecryptMessage() error = %v", err)
	}

	if diff := cmp.Diff(outer, *decrypted); diff != "" {
		t.Errorf("cleartext message mismatch (-want +got):\n%s", diff)
	}

	// Cleartext messages still pass the freshness guard.
	if _, err := DecryptMessage(msg, ServerData{Timestamp: f.now + 60001}, f.roomKey, f.identity.PublicKey, testSessionUUID); !errors.Is(err, ErrTimestampOutOfRange) {
		t.Errorf("expected ErrTimestampOutOfRange, got %v", err)
	}
}

func TestEncryptMessage_ChannelLength(t *testing.T) {
	f := newMessageFixture(t)
	value := textValue(t, "x")

	at100 := strings.Repeat("c", 100)
	if _, err := EncryptMessage(value, MessageMetadata{Channel: at100, Timestamp: f.now}, f.roomKey, f.identity.PrivateKey, KeyHash(f.identity.PublicKey), testSessionUUID); err != nil {
		t.Errorf("channel of length 100 rejected: %v", err)
	}

	at101 := strings.Repeat("c", 101)
	if _, err := EncryptMessage(value, MessageMetadata{Channel: at101, Timestamp: f.now}, f.roomKey, f.identity.PrivateKey, KeyHash(f.identity.PublicKey), testSessionUUID); !errors.Is(err, ErrInvalidMessage) {
		t.Errorf("expected ErrInvalidMessage for channel of length 101, got %v", err)
	}
}

func TestEncryptMessage_WithReplyAndMention(t *testing.T) {
	f := newMessageFixture(t)

	value := textValue(t, "reply text")
	value.Reply = &ReplyInfo{ID: "msg-123"}
	value.Mention = []string{"alice@takos.jp"}

	msg := f.encrypt(t, value, MessageMetadata{Channel: "c", Timestamp: f.now})
	decrypted, err := DecryptMessage(msg, ServerData{Timestamp: f.now}, f.roomKey, f.identity.PublicKey, testSessionUUID)
	if err != nil {
		t.Fatalf("DecryptMessage() error = %v", err)
	}

	if diff := cmp.Diff(*value, decrypted.Value); diff != "" {
		t.Errorf("inner value mismatch (-want +got):\n%s", diff)
	}
}

func TestIsValidMessage(t *testing.T) {
	f := newMessageFixture(t)
	encrypted := f.encrypt(t, textValue(t, "x"), MessageMetadata{Channel: "c", Timestamp: f.now})

	clear := NotEncryptMessage{
		Encrypted: false,
		Value:     *textValue(t, "clear"),
		Channel:   "general",
		Timestamp: f.now,
		RoomID:    testSessionUUID,
	}
	clearStr, err := json.Marshal(&clear)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// mention may be absent or an empty array; both are accepted.
	withEmptyMention := strings.Replace(string(clearStr), `"content":`, `"mention":[],"content":`, 1)

	// An encrypted message whose value is a JSON object instead of the
	// envelope string.
	var encryptedFields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(encrypted.Message), &encryptedFields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	encryptedFields["value"] = json.RawMessage(`{"x":"y"}`)
	withObjectValue, err := json.Marshal(encryptedFields)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"encrypted valid", encrypted.Message, true},
		{"cleartext valid", string(clearStr), true},
		{"empty mention", withEmptyMention, true},
		{"not json", "nope", false},
		{"empty object", "{}", false},
		{"channel 101", strings.Replace(string(clearStr), `"channel":"general"`, `"channel":"`+strings.Repeat("c", 101)+`"`, 1), false},
		{"unknown value type", strings.Replace(string(clearStr), `"type":"text"`, `"type":"sticker"`, 1), false},
		{"content not json", strings.Replace(string(clearStr), clearValueContent(t, clear), `"content":"not json"`, 1), false},
		{"encrypted with object value", string(withObjectValue), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidMessage(tt.in); got != tt.want {
				t.Errorf("IsValidMessage() = %v, want %v", got, tt.want)
			}
		})
	}
}

// clearValueContent returns the serialized content field of a cleartext
// message, for substring surgery in table tests.
func clearValueContent(t *testing.T, msg NotEncryptMessage) string {
	t.Helper()
	b, err := json.Marshal(msg.Value.Content)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return `"content":` + string(b)
}
