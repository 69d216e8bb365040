package encryptink

// Algorithm literals as they appear on the wire.
const (
	AlgorithmMLKEM768 = "ML-KEM-768"
	AlgorithmMLDSA65  = "ML-DSA-65"
	AlgorithmMLDSA87  = "ML-DSA-87"
	AlgorithmAESGCM   = "AES-GCM"
)

// keyType literals. Field order in the structs below is the canonical wire
// order; KeyHash is computed over the marshalled string, so the order is
// part of the wire format and must not change.
const (
	keyTypeMasterPublic      = "masterKeyPublic"
	keyTypeMasterPrivate     = "masterKeyPrivate"
	keyTypeIdentityPublic    = "identityKeyPublic"
	keyTypeIdentityPrivate   = "identityKeyPrivate"
	keyTypeAccountPublic     = "accountKeyPublic"
	keyTypeAccountPrivate    = "accountKeyPrivate"
	keyTypeServerPublic      = "serverKeyPublic"
	keyTypeServerPrivate     = "serverKeyPrivate"
	keyTypeRoom              = "roomKey"
	keyTypeSharePublic       = "shareKeyPublic"
	keyTypeSharePrivate      = "shareKeyPrivate"
	keyTypeShareSignPublic   = "shareSignKeyPublic"
	keyTypeShareSignPrivate  = "shareSignKeyPrivate"
	keyTypeMigratePublic     = "migrateKeyPublic"
	keyTypeMigratePrivate    = "migrateKeyPrivate"
	keyTypeMigrateSignPublic = "migrateSignKeyPublic"
	keyTypeMigrateSignPriv   = "migrateSignKeyPrivate"
	keyTypeDevice            = "deviceKey"
)

// Signer roles recorded in the keyType field of signature envelopes.
const (
	signerMaster      = "masterKey"
	signerIdentity    = "identityKey"
	signerShareSign   = "shareSignKey"
	signerMigrateSign = "migrateSignKey"
	signerServer      = "serverKey"
)

// Encrypter roles recorded in the keyType field of encrypted envelopes.
const (
	encrypterAccount = "accountKey"
	encrypterShare   = "shareKey"
	encrypterMigrate = "migrateKey"
	encrypterRoom    = "roomKey"
	encrypterDevice  = "deviceKey"
)

// MasterKey is the JSON shape of a master key half (public or private).
type MasterKey struct {
	KeyType string `json:"keyType"`
	Key     string `json:"key"`
}

// IdentityKey is the JSON shape of an identity key half.
type IdentityKey struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   int64  `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// AccountKey is the JSON shape of an account key half.
type AccountKey struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Algorithm string `json:"algorithm"`
	Timestamp int64  `json:"timestamp"`
}

// ServerKey is the JSON shape of a server key half.
type ServerKey struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// RoomKey is the JSON shape of a room's shared symmetric key.
type RoomKey struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   int64  `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// ShareKey is the JSON shape of a session-scoped KEM key half.
type ShareKey struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   int64  `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// ShareSignKey is the JSON shape of a session-scoped signing key half.
type ShareSignKey struct {
	KeyType     string `json:"keyType"`
	Key         string `json:"key"`
	Algorithm   string `json:"algorithm"`
	Timestamp   int64  `json:"timestamp"`
	SessionUUID string `json:"sessionUuid"`
}

// MigrateKey is the JSON shape of a stand-alone migration KEM key half.
// Timestamp is optional on the wire.
type MigrateKey struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// MigrateSignKey is the JSON shape of a stand-alone migration signing key half.
type MigrateSignKey struct {
	KeyType   string `json:"keyType"`
	Key       string `json:"key"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// DeviceKey is the JSON shape of a device-local symmetric key.
type DeviceKey struct {
	KeyType string `json:"keyType"`
	Key     string `json:"key"`
}

// Sign is a signature envelope. KeyType names the signer role (masterKey,
// identityKey, shareSignKey, migrateSignKey, serverKey) and KeyHash is
// KeyHash of the signer's public-key JSON, so verifiers can locate the
// signer.
type Sign struct {
	KeyType   string `json:"keyType"`
	KeyHash   string `json:"keyHash"`
	Signature string `json:"signature"`
	Algorithm string `json:"algorithm,omitempty"`
}

// EncryptedData is an encrypted payload envelope. Asymmetric (KEM+AEAD)
// envelopes carry the ML-KEM-768 ciphertext in CipherText; symmetric
// (room/device) envelopes omit it. KeyHash is KeyHash of the recipient key
// JSON.
type EncryptedData struct {
	KeyType       string `json:"keyType"`
	KeyHash       string `json:"keyHash"`
	EncryptedData string `json:"encryptedData"`
	IV            string `json:"iv"`
	CipherText    string `json:"cipherText,omitempty"`
	Algorithm     string `json:"algorithm"`
}

// KeyPair holds a freshly generated key pair as JSON strings. Sign carries
// the master signature over PublicKey for master-signed kinds (identity,
// account, share, shareSign) and is empty otherwise.
type KeyPair struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
	Sign       string `json:"sign,omitempty"`
}

// ReplyInfo references the message a cleartext value replies to.
type ReplyInfo struct {
	ID string `json:"id"`
}

// NotEncryptMessageValue is the cleartext inner value of a message; its
// JSON serialization becomes the room-key plaintext.
type NotEncryptMessageValue struct {
	Type    string     `json:"type"`
	Content string     `json:"content"`
	Reply   *ReplyInfo `json:"reply,omitempty"`
	Mention []string   `json:"mention,omitempty"`
}

// EncryptedMessage is the outer shape of an encrypted message; Value holds
// the room-envelope JSON string.
type EncryptedMessage struct {
	Encrypted bool   `json:"encrypted"`
	Value     string `json:"value"`
	Channel   string `json:"channel"`
	Timestamp int64  `json:"timestamp"`
	IsLarge   bool   `json:"isLarge"`
	Original  string `json:"original,omitempty"`
	RoomID    string `json:"roomid"`
}

// NotEncryptMessage is the outer shape of a cleartext message.
type NotEncryptMessage struct {
	Encrypted bool                   `json:"encrypted"`
	Value     NotEncryptMessageValue `json:"value"`
	Channel   string                 `json:"channel"`
	Timestamp int64                  `json:"timestamp"`
	IsLarge   bool                   `json:"isLarge"`
	Original  string                 `json:"original,omitempty"`
	RoomID    string                 `json:"roomid"`
}

// SignedMessage couples a serialized outer message with the identity
// signature over it.
type SignedMessage struct {
	Message string `json:"message"`
	Sign    string `json:"sign"`
}

// MessageMetadata carries the caller-supplied outer-message fields.
type MessageMetadata struct {
	Channel   string `json:"channel"`
	Timestamp int64  `json:"timestamp"`
	IsLarge   bool   `json:"isLarge"`
	Original  string `json:"original,omitempty"`
}

// TextContent is the content payload of a text message.
type TextContent struct {
	Text         string  `json:"text"`
	Format       string  `json:"format,omitempty"`
	IsThumbnail  *bool   `json:"isThumbnail,omitempty"`
	ThumbnailOf  string  `json:"thumbnailOf,omitempty"`
	OriginalSize *uint64 `json:"originalSize,omitempty"`
}

// MediaMetadata describes an attached media file.
type MediaMetadata struct {
	Filename string `json:"filename"`
	MimeType string `json:"mimeType"`
}

// MediaContent is the content payload of image, video, audio, and file
// messages.
type MediaContent struct {
	URI          string        `json:"uri"`
	Metadata     MediaMetadata `json:"metadata"`
	IsThumbnail  *bool         `json:"isThumbnail,omitempty"`
	ThumbnailOf  string        `json:"thumbnailOf,omitempty"`
	OriginalSize *uint64       `json:"originalSize,omitempty"`
}
