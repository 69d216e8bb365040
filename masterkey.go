package encryptink

import (
	"encoding/json"
	"fmt"
)

// GenerateMasterKey creates a new ML-DSA-87 master keypair. The master key
// sits at the root of the cross-signing graph: identity, account, share,
// and share-sign keys are issued together with a master signature over
// their public-key JSON.
func GenerateMasterKey() (*KeyPair, error) {
	pubB64, privB64, err := GenerateDSA87KeyPair()
	if err != nil {
		return nil, err
	}

	pubJSON, err := json.Marshal(&MasterKey{KeyType: keyTypeMasterPublic, Key: pubB64})
	if err != nil {
		return nil, err
	}
	privJSON, err := json.Marshal(&MasterKey{KeyType: keyTypeMasterPrivate, Key: privB64})
	if err != nil {
		return nil, err
	}

	return &KeyPair{PublicKey: string(pubJSON), PrivateKey: string(privJSON)}, nil
}

// SignMasterKey signs data with the master private key and returns a
// signature envelope with keyType "masterKey". publicKeyHash is KeyHash of
// the master public-key JSON, recorded in the envelope so verifiers can
// locate the signer.
func SignMasterKey(privateKeyJSON, data, publicKeyHash string) (string, error) {
	var mk MasterKey
	if err := json.Unmarshal([]byte(privateKeyJSON), &mk); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	if mk.KeyType != keyTypeMasterPrivate {
		return "", fmt.Errorf("%w: keyType %q is not a master private key", ErrInvalidKey, mk.KeyType)
	}

	return newSignature(mk.Key, []byte(data), publicKeyHash, signerMaster, AlgorithmMLDSA87)
}

// VerifyMasterKey reports whether signJSON is a valid master signature over
// data. The envelope must carry keyType "masterKey".
func VerifyMasterKey(publicKeyJSON, signJSON, data string) bool {
	var mk MasterKey
	if err := json.Unmarshal([]byte(publicKeyJSON), &mk); err != nil {
		return false
	}
	if mk.KeyType != keyTypeMasterPublic {
		return false
	}

	return verifySignature(mk.Key, signJSON, []byte(data), signerMaster)
}

// IsValidMasterKeyPublic reports whether keyJSON is a structurally valid
// master public key.
func IsValidMasterKeyPublic(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeMasterPublic, rawSize: dsa87PublicSize})
}

// IsValidMasterKeyPrivate reports whether keyJSON is a structurally valid
// master private key.
func IsValidMasterKeyPrivate(keyJSON string) bool {
	return isValidKeyJSON(keyJSON, keyShape{keyType: keyTypeMasterPrivate, rawSize: dsa87SecretSize})
}

// IsValidSignMasterKey reports whether signJSON is a structurally valid
// master signature envelope.
func IsValidSignMasterKey(signJSON string) bool {
	return isValidSignJSON(signJSON, signerMaster, AlgorithmMLDSA87)
}
