// Package crypto provides the cryptographic primitives for the takos
// end-to-end encryption protocol. It wraps post-quantum key encapsulation,
// digital signatures, and authenticated encryption behind small, size-checked
// functions that operate on raw byte slices.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - ML-KEM-768 (NIST FIPS 203): Post-quantum key encapsulation mechanism
//     for wrapping room keys and payloads to account, share, and migrate
//     keys. Provides 192-bit classical and quantum security levels.
//
//   - ML-DSA-65 (NIST FIPS 204): Post-quantum digital signature algorithm
//     used by identity, share-sign, migrate-sign, and server keys.
//
//   - ML-DSA-87 (NIST FIPS 204): Higher-security signature algorithm
//     reserved for the master key at the root of the cross-signing graph.
//
//   - AES-256-GCM: Authenticated encryption for message content and wrapped
//     keys. 12-byte IV, 16-byte tag, no additional authenticated data.
//
// The KEM shared secret is used directly as the AES-256-GCM key. This is
// part of the wire format: both peer implementations feed the 32-byte
// shared secret into the AEAD without a KDF stage, and changing it would
// break cross-implementation decryption.
//
// # Security Notes
//
// AES-GCM IVs MUST be unique for each encryption with the same key. Every
// envelope draws a fresh 12-byte IV from the CSPRNG.
//
// Secret keys, signing keys, and KEM shared secrets should be wiped with
// [Wipe] as soon as they are no longer needed. They must never be logged.
package crypto
