// Package crypto exposes the primitives used by sealchat.
//
// Contents
//
//   - X25519 key generation, clamping and Diffie–Hellman (GenerateX25519, DH)
//   - Ed25519 key generation, signing and verification (GenerateEd25519,
//     SignEd25519, VerifyEd25519)
//   - Identity generation combining both pairs (GenerateIdentity)
//   - Fresh randomness for nonces, salts and symmetric keys
//   - URL-safe unpadded base64 for wire fields (B64, B64Decode)
//   - Short public-key fingerprints for display and keystore lookup
//
// All functions are pure apart from their use of crypto/rand. Failures of the
// random source surface as domain.ErrCryptoUnavailable.
package crypto
