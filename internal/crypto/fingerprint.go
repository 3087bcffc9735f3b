package crypto

import (
	"crypto/sha256"
	"encoding/hex"

	"sealchat/internal/domain"
)

// Fingerprint returns a short SHA-256 hex fingerprint of an exchange public
// key. It keys the peer map in the keystore and is what users compare.
func Fingerprint(pub domain.X25519Public) domain.Fingerprint {
	sum := sha256.Sum256(pub[:])
	return domain.Fingerprint(hex.EncodeToString(sum[:10]))
}
