package crypto

const (
	// MLKEMPublicKeySize is the size of an ML-KEM-768 public key in bytes.
	MLKEMPublicKeySize = 1184
	// MLKEMSecretKeySize is the size of an ML-KEM-768 secret key in bytes.
	MLKEMSecretKeySize = 2400
	// MLKEMCiphertextSize is the size of an ML-KEM-768 ciphertext in bytes.
	MLKEMCiphertextSize = 1088
	// MLKEMSharedKeySize is the size of the shared secret from ML-KEM-768 in bytes.
	MLKEMSharedKeySize = 32

	// MLDSA65PublicKeySize is the size of an ML-DSA-65 public key in bytes.
	MLDSA65PublicKeySize = 1952
	// MLDSA65SecretKeySize is the size of an ML-DSA-65 secret key in bytes.
	MLDSA65SecretKeySize = 4032
	// MLDSA65SignatureSize is the size of an ML-DSA-65 signature in bytes.
	MLDSA65SignatureSize = 3309

	// MLDSA87PublicKeySize is the size of an ML-DSA-87 public key in bytes.
	MLDSA87PublicKeySize = 2592
	// MLDSA87SecretKeySize is the size of an ML-DSA-87 secret key in bytes.
	MLDSA87SecretKeySize = 4896
	// MLDSA87SignatureSize is the size of an ML-DSA-87 signature in bytes.
	MLDSA87SignatureSize = 4627

	// DSASeedSize is the size of the CSPRNG seed used for ML-DSA key generation.
	DSASeedSize = 32

	// AESKeySize is the size of an AES-256 key in bytes.
	AESKeySize = 32
	// AESNonceSize is the size of an AES-GCM nonce in bytes.
	AESNonceSize = 12
	// AESTagSize is the size of an AES-GCM authentication tag in bytes.
	AESTagSize = 16
)
