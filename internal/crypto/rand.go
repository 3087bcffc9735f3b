package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"sealchat/internal/domain"
)

const (
	// NonceSize is the XChaCha20-Poly1305 nonce length.
	NonceSize = chacha20poly1305.NonceSizeX
	// SaltSize is the salt length for password key derivation.
	SaltSize = 16
	// KeySize is the symmetric key length used throughout.
	KeySize = chacha20poly1305.KeySize
)

// RandomNonce draws a fresh full-width random nonce. Nonces are never
// counters at this layer; uniqueness under a key comes from the 192-bit
// random draw.
func RandomNonce() (n [NonceSize]byte, err error) {
	if _, err = rand.Read(n[:]); err != nil {
		err = fmt.Errorf("nonce: %w", domain.ErrCryptoUnavailable)
	}
	return
}

// RandomSalt draws a fresh KDF salt.
func RandomSalt() (s [SaltSize]byte, err error) {
	if _, err = rand.Read(s[:]); err != nil {
		err = fmt.Errorf("salt: %w", domain.ErrCryptoUnavailable)
	}
	return
}

// RandomKey draws a fresh 32-byte symmetric key.
func RandomKey() (k [KeySize]byte, err error) {
	if _, err = rand.Read(k[:]); err != nil {
		err = fmt.Errorf("key: %w", domain.ErrCryptoUnavailable)
	}
	return
}
