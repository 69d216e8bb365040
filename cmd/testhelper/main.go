// Command testhelper exposes the library over stdin/stdout JSON for the
// cross-implementation compatibility suite. The peer implementations drive
// it to prove that keys, hashes, and envelopes produced by one stack are
// accepted by the others byte-for-byte.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	encryptink "github.com/takos-chat/encrypt-ink-go"
)

func main() {
	if len(os.Args) < 2 {
		fatal("usage: testhelper <command> [args]")
	}

	switch os.Args[1] {
	case "key-hash":
		keyHash()
	case "is-valid-uuid-v7":
		isValidUUIDv7()
	case "generate-master-key":
		generateMasterKey()
	case "sign-master-key":
		signMasterKey()
	case "verify-master-key":
		verifyMasterKey()
	case "encrypt-account":
		encryptAccount()
	case "decrypt-account":
		decryptAccount()
	case "roundtrip-message":
		roundtripMessage()
	default:
		fatal("unknown command: %s", os.Args[1])
	}
}

func readInput(v any) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatal("read stdin: %v", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		fatal("parse input: %v", err)
	}
}

func writeOutput(v any) {
	if err := json.NewEncoder(os.Stdout).Encode(v); err != nil {
		fatal("encode output: %v", err)
	}
}

func keyHash() {
	var in struct {
		Data string `json:"data"`
	}
	readInput(&in)
	writeOutput(map[string]string{"hash": encryptink.KeyHash(in.Data)})
}

func isValidUUIDv7() {
	var in struct {
		UUID string `json:"uuid"`
	}
	readInput(&in)
	writeOutput(map[string]bool{"valid": encryptink.IsValidUUIDv7(in.UUID)})
}

func generateMasterKey() {
	master, err := encryptink.GenerateMasterKey()
	if err != nil {
		fatal("generate master key: %v", err)
	}
	writeOutput(master)
}

func signMasterKey() {
	var in struct {
		PrivateKey string `json:"privateKey"`
		PublicKey  string `json:"publicKey"`
		Data       string `json:"data"`
	}
	readInput(&in)

	sign, err := encryptink.SignMasterKey(in.PrivateKey, in.Data, encryptink.KeyHash(in.PublicKey))
	if err != nil {
		fatal("sign: %v", err)
	}
	writeOutput(map[string]string{"sign": sign})
}

func verifyMasterKey() {
	var in struct {
		PublicKey string `json:"publicKey"`
		Sign      string `json:"sign"`
		Data      string `json:"data"`
	}
	readInput(&in)
	writeOutput(map[string]bool{"valid": encryptink.VerifyMasterKey(in.PublicKey, in.Sign, in.Data)})
}

func encryptAccount() {
	var in struct {
		PublicKey string `json:"publicKey"`
		Data      string `json:"data"`
	}
	readInput(&in)

	envelope, err := encryptink.EncryptDataAccountKey(in.PublicKey, in.Data)
	if err != nil {
		fatal("encrypt: %v", err)
	}
	writeOutput(map[string]string{"encryptedData": envelope})
}

func decryptAccount() {
	var in struct {
		PrivateKey    string `json:"privateKey"`
		EncryptedData string `json:"encryptedData"`
	}
	readInput(&in)

	plain, err := encryptink.DecryptDataAccountKey(in.PrivateKey, in.EncryptedData)
	if err != nil {
		fatal("decrypt: %v", err)
	}
	writeOutput(map[string]string{"data": plain})
}

func roundtripMessage() {
	var in struct {
		RoomKey            string                            `json:"roomKey"`
		IdentityPrivateKey string                            `json:"identityPrivateKey"`
		IdentityPublicKey  string                            `json:"identityPublicKey"`
		RoomID             string                            `json:"roomid"`
		Timestamp          int64                             `json:"timestamp"`
		Value              encryptink.NotEncryptMessageValue `json:"value"`
	}
	readInput(&in)

	msg, err := encryptink.EncryptMessage(&in.Value,
		encryptink.MessageMetadata{Channel: "testhelper", Timestamp: in.Timestamp},
		in.RoomKey, in.IdentityPrivateKey, encryptink.KeyHash(in.IdentityPublicKey), in.RoomID)
	if err != nil {
		fatal("encrypt message: %v", err)
	}

	decrypted, err := encryptink.DecryptMessage(msg,
		encryptink.ServerData{Timestamp: in.Timestamp},
		in.RoomKey, in.IdentityPublicKey, in.RoomID)
	if err != nil {
		fatal("decrypt message: %v", err)
	}

	writeOutput(map[string]any{"message": msg, "decrypted": decrypted})
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
