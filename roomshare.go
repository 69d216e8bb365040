package encryptink

import (
	"encoding/json"
	"fmt"
)

// RoomKeyRecipient describes one member a room key is distributed to.
// AccountKeySign is the master signature over the account public key; it is
// checked when IsVerify is set.
type RoomKeyRecipient struct {
	UserID         string `json:"userId"`
	MasterKey      string `json:"masterKey"`
	AccountKey     string `json:"accountKey"`
	AccountKeySign string `json:"accountKeySign,omitempty"`
	IsVerify       bool   `json:"isVerify"`
}

// SharedUser is one row of the distribution metadata, recording who
// received the room key and under which master/account key.
type SharedUser struct {
	UserID              string `json:"userId"`
	MasterKeyHash       string `json:"masterKeyHash"`
	AccountKeyTimestamp int64  `json:"accountKeyTimeStamp"`
}

// RoomKeyMetadata binds the room-key hash to the recipient list.
type RoomKeyMetadata struct {
	RoomKeyHash string       `json:"roomKeyHash"`
	SharedUser  []SharedUser `json:"sharedUser"`
}

// EncryptedRoomKeyEntry is the room key wrapped to one recipient's account
// key.
type EncryptedRoomKeyEntry struct {
	UserID        string `json:"userId"`
	EncryptedData string `json:"encryptedData"`
}

// RoomKeyDistribution is the result of distributing a room key: the signed
// metadata, the per-recipient wrapped keys, and the identity signature over
// the room-key JSON itself. Metadata is kept as the exact JSON string that
// MetadataSign covers.
type RoomKeyDistribution struct {
	Metadata      string                  `json:"metadata"`
	MetadataSign  string                  `json:"metadataSign"`
	EncryptedData []EncryptedRoomKeyEntry `json:"encryptedData"`
	Sign          string                  `json:"sign"`
}

// EncryptRoomKeyWithAccountKeys wraps a room key to every recipient's
// account key and signs the distribution metadata with the sender's
// identity key. Recipients with IsVerify set must carry a valid master
// signature over their account public key. Output lists preserve the input
// order.
func EncryptRoomKeyWithAccountKeys(recipients []RoomKeyRecipient, roomKeyJSON, identityPrivateJSON, identityPublicJSON string) (*RoomKeyDistribution, error) {
	if !IsValidRoomKey(roomKeyJSON) {
		return nil, fmt.Errorf("%w: room key", ErrInvalidKey)
	}
	if !IsValidIdentityKeyPrivate(identityPrivateJSON) {
		return nil, fmt.Errorf("%w: identity private key", ErrInvalidKey)
	}
	if !IsValidIdentityKeyPublic(identityPublicJSON) {
		return nil, fmt.Errorf("%w: identity public key", ErrInvalidKey)
	}

	sharedUsers := make([]SharedUser, 0, len(recipients))
	entries := make([]EncryptedRoomKeyEntry, 0, len(recipients))

	for _, r := range recipients {
		if !IsValidAccountKeyPublic(r.AccountKey) {
			return nil, fmt.Errorf("%w: account key for user %q", ErrInvalidKey, r.UserID)
		}

		if r.IsVerify {
			if !IsValidMasterKeyPublic(r.MasterKey) {
				return nil, fmt.Errorf("%w: master key for user %q", ErrInvalidKey, r.UserID)
			}
			if !VerifyMasterKey(r.MasterKey, r.AccountKeySign, r.AccountKey) {
				return nil, fmt.Errorf("%w: account key for user %q", ErrMasterSignatureInvalid, r.UserID)
			}
		}

		encrypted, err := EncryptDataAccountKey(r.AccountKey, roomKeyJSON)
		if err != nil {
			return nil, err
		}

		var ak AccountKey
		if err := json.Unmarshal([]byte(r.AccountKey), &ak); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
		}

		sharedUsers = append(sharedUsers, SharedUser{
			UserID:              r.UserID,
			MasterKeyHash:       KeyHash(r.MasterKey),
			AccountKeyTimestamp: ak.Timestamp,
		})
		entries = append(entries, EncryptedRoomKeyEntry{UserID: r.UserID, EncryptedData: encrypted})
	}

	metadata, err := json.Marshal(&RoomKeyMetadata{
		RoomKeyHash: KeyHash(roomKeyJSON),
		SharedUser:  sharedUsers,
	})
	if err != nil {
		return nil, err
	}

	identityHash := KeyHash(identityPublicJSON)
	metadataSign, err := SignIdentityKey(identityPrivateJSON, string(metadata), identityHash)
	if err != nil {
		return nil, err
	}

	sign, err := SignIdentityKey(identityPrivateJSON, roomKeyJSON, identityHash)
	if err != nil {
		return nil, err
	}

	return &RoomKeyDistribution{
		Metadata:      string(metadata),
		MetadataSign:  metadataSign,
		EncryptedData: entries,
		Sign:          sign,
	}, nil
}
