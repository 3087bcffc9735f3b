package domain

import "errors"

// Every operation returns exactly one of these sentinels (possibly wrapped)
// on failure and never a partial result. Callers match with errors.Is.
var (
	// ErrInputFormat is returned for structurally malformed operation input.
	ErrInputFormat = errors.New("malformed input")

	// ErrEncoding is returned when a text-encoded binary field does not decode.
	ErrEncoding = errors.New("malformed text encoding")

	// ErrInvalidKeyMaterial is returned for keys of the wrong length or form.
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrSignatureInvalid is returned when an offer signature does not verify.
	// The offer must be discarded; no derivation is attempted.
	ErrSignatureInvalid = errors.New("offer signature invalid")

	// ErrKeyExchangeFailed is returned when the Diffie-Hellman computation
	// rejects the peer public key.
	ErrKeyExchangeFailed = errors.New("key exchange failed")

	// ErrAuthenticationFailed is returned on AEAD tag mismatch: wrong key,
	// corruption, or tampering.
	ErrAuthenticationFailed = errors.New("message authentication failed")

	// ErrPayloadTooLarge is returned when plaintext exceeds the configured
	// maximum.
	ErrPayloadTooLarge = errors.New("payload too large")

	// ErrPersistenceDisabled is returned by store operations in mode none.
	ErrPersistenceDisabled = errors.New("persistence disabled")

	// ErrPlatformUnavailable is returned when the platform protection
	// service cannot be reached.
	ErrPlatformUnavailable = errors.New("platform protection service unavailable")

	// ErrKdfFailed is returned when the password key derivation cannot run.
	ErrKdfFailed = errors.New("key derivation failed")

	// ErrDecryptionFailed is returned for any store decrypt failure: wrong
	// password, wrong mode, or a malformed blob.
	ErrDecryptionFailed = errors.New("store decryption failed")

	// ErrCryptoUnavailable is returned when the random source fails.
	ErrCryptoUnavailable = errors.New("crypto source unavailable")
)
