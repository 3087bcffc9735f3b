// Package seal implements authenticated envelope encryption for direct and
// channel messages.
//
// Envelopes use XChaCha20-Poly1305 with a fresh 24-byte random nonce per
// seal; the 16-byte tag rides appended to the ciphertext. Direct envelopes
// additionally carry the sender's exchange public key so the recipient can
// select the matching shared secret. Opening authenticates or fails
// entirely; there is no partially verified output.
package seal
