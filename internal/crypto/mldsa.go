package crypto

import (
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/mldsa/mldsa87"
)

// GenerateDSA65KeyPair creates a new ML-DSA-65 keypair from a fresh
// 32-byte CSPRNG seed.
func GenerateDSA65KeyPair() (publicKey, secretKey []byte, err error) {
	seed, err := RandomBytes(DSASeedSize)
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(seed)

	var s [mldsa65.SeedSize]byte
	copy(s[:], seed)
	pub, priv := mldsa65.NewKeyFromSeed(&s)
	Wipe(s[:])

	publicKey, _ = pub.MarshalBinary()
	secretKey, _ = priv.MarshalBinary()
	return publicKey, secretKey, nil
}

// GenerateDSA87KeyPair creates a new ML-DSA-87 keypair from a fresh
// 32-byte CSPRNG seed.
func GenerateDSA87KeyPair() (publicKey, secretKey []byte, err error) {
	seed, err := RandomBytes(DSASeedSize)
	if err != nil {
		return nil, nil, err
	}
	defer Wipe(seed)

	var s [mldsa87.SeedSize]byte
	copy(s[:], seed)
	pub, priv := mldsa87.NewKeyFromSeed(&s)
	Wipe(s[:])

	publicKey, _ = pub.MarshalBinary()
	secretKey, _ = priv.MarshalBinary()
	return publicKey, secretKey, nil
}

// SignDSA65 signs message with an ML-DSA-65 secret key.
func SignDSA65(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != MLDSA65SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLDSA65SecretKeySize)
	}

	var priv mldsa65.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal signing key: %w", err)
	}

	sig := make([]byte, mldsa65.SignatureSize)
	if err := mldsa65.SignTo(&priv, message, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// VerifyDSA65 reports whether signature is a valid ML-DSA-65 signature
// over message by the holder of publicKey.
func VerifyDSA65(publicKey, message, signature []byte) bool {
	if len(publicKey) != MLDSA65PublicKeySize || len(signature) != MLDSA65SignatureSize {
		return false
	}

	var pub mldsa65.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return false
	}
	return mldsa65.Verify(&pub, message, nil, signature)
}

// SignDSA87 signs message with an ML-DSA-87 secret key.
func SignDSA87(secretKey, message []byte) ([]byte, error) {
	if len(secretKey) != MLDSA87SecretKeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSecretKeySize, len(secretKey), MLDSA87SecretKeySize)
	}

	var priv mldsa87.PrivateKey
	if err := priv.UnmarshalBinary(secretKey); err != nil {
		return nil, fmt.Errorf("unmarshal signing key: %w", err)
	}

	sig := make([]byte, mldsa87.SignatureSize)
	if err := mldsa87.SignTo(&priv, message, nil, false, sig); err != nil {
		return nil, fmt.Errorf("sign: %w", err)
	}
	return sig, nil
}

// VerifyDSA87 reports whether signature is a valid ML-DSA-87 signature
// over message by the holder of publicKey.
func VerifyDSA87(publicKey, message, signature []byte) bool {
	if len(publicKey) != MLDSA87PublicKeySize || len(signature) != MLDSA87SignatureSize {
		return false
	}

	var pub mldsa87.PublicKey
	if err := pub.UnmarshalBinary(publicKey); err != nil {
		return false
	}
	return mldsa87.Verify(&pub, message, nil, signature)
}
