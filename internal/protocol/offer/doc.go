// Package offer implements signed key-exchange offers and shared-secret
// derivation.
//
// An offer binds a party's exchange public key to its long-term signing key.
// Two signature conventions exist across protocol iterations: version >= 2
// signs the exchange public key alone, version 1 (the legacy and channel
// variant) signs signing-public || exchange-public. The variant is selected
// only by the explicit version field.
//
// Derive verifies the signature before any other step; a failed verification
// aborts the exchange, as it is the sole defence against substitution of the
// exchange key in transit. The raw Diffie–Hellman output is never used as a
// key directly: it is mixed through SHA-256 to produce the final 32-byte
// shared secret.
package offer
