// Package encryptink provides the post-quantum end-to-end encryption
// primitives for the takos chat platform.
//
// The package implements a family of typed keys built on ML-KEM-768 (key
// encapsulation), ML-DSA-65 and ML-DSA-87 (signatures), and AES-256-GCM
// (symmetric encryption):
//
//   - master: ML-DSA-87 root of the cross-signing graph
//   - identity: ML-DSA-65, signs messages and room-key distribution metadata
//   - account: ML-KEM-768, receives wrapped room keys
//   - room: 32-byte AES key shared among the members of a room
//   - share / shareSign: session-scoped ML-KEM-768 / ML-DSA-65 pair
//   - migrate / migrateSign: stand-alone keys for account migration
//   - device: 32-byte AES key local to a device
//   - server: ML-DSA-65 key used to sign server assertions
//
// Keys, signatures, and encrypted payloads are exchanged as UTF-8 JSON
// strings with fixed field sets, so that hashes over those strings stay
// stable across peers implemented in different stacks. [KeyHash] is the
// binding primitive: it hashes the full JSON string of a public key, and
// every signature envelope records the hash of its signer's public key.
//
// Basic usage:
//
//	master, err := encryptink.GenerateMasterKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	uuid, _ := encryptink.NewSessionUUID()
//	identity, err := encryptink.GenerateIdentityKey(uuid, master.PublicKey, master.PrivateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	roomKey, _ := encryptink.GenerateRoomKey(uuid)
//	encrypted, _ := encryptink.EncryptDataRoomKey(roomKey, "hello")
//	plain, _ := encryptink.DecryptDataRoomKey(roomKey, encrypted)
//
// All operations are pure functions over their inputs plus the CSPRNG; they
// are safe to invoke in parallel from independent callers. Validators
// (IsValid*) never panic and return false on any malformed input; operations
// return an error and no partial output.
package encryptink
