package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/kem/mlkem/mlkem768"
)

// GenerateKEMKeyPair creates a new ML-KEM-768 keypair as raw bytes.
func GenerateKEMKeyPair() (publicKey, secretKey []byte, err error) {
	pub, priv, err := mlkem768.GenerateKeyPair(randReader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ML-KEM-768 keypair: %w", err)
	}

	// MarshalBinary never fails for valid keys from GenerateKeyPair
	publicKey, _ = pub.MarshalBinary()
	secretKey, _ = priv.MarshalBinary()
	return publicKey, secretKey, nil
}

// Encapsulate generates a fresh shared secret for the given ML-KEM-768
// public key and returns the KEM ciphertext alongside it.
func Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error) {
	if len(publicKey) != MLKEMPublicKeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidPublicKeySize, len(publicKey), MLKEMPublicKeySize)
	}

	var pub mlkem768.PublicKey
	if err := pub.Unpack(publicKey); err != nil {
		return nil, nil, fmt.Errorf("unpack public key: %w", err)
	}

	ciphertext = make([]byte, MLKEMCiphertextSize)
	sharedSecret = make([]byte, MLKEMSharedKeySize)
	pub.EncapsulateTo(ciphertext, sharedSecret, nil)
	return ciphertext, sharedSecret, nil
}

// Decapsulate recovers the shared secret from a KEM ciphertext using the
// ML-KEM-768 secret key.
func Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if len(secretKey) != MLKEMSecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLKEMSecretKeySize)
	}

	if len(ciphertext) != MLKEMCiphertextSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidCiphertextSize, len(ciphertext), MLKEMCiphertextSize)
	}

	var priv mlkem768.PrivateKey
	if err := priv.Unpack(secretKey); err != nil {
		return nil, fmt.Errorf("unpack secret key: %w", err)
	}

	sharedSecret := make([]byte, MLKEMSharedKeySize)
	priv.DecapsulateTo(sharedSecret, ciphertext)
	return sharedSecret, nil
}
