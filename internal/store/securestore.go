package store

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/chacha20poly1305"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/util/memzero"
)

// argon2id parameters, fixed at safe defaults.
const (
	kdfTime     = 2
	kdfMemoryKB = 64 * 1024
	kdfThreads  = 1
)

// SecureStore encrypts and decrypts at-rest blobs. A blob is a single token
// "tag.payload": the protection-mode tag, a dot, then the base64url payload.
// For password mode the payload is salt || nonce || ciphertext; for platform
// mode it is the opaque output of the protection service.
type SecureStore struct {
	protector domain.PlatformProtector // nil when no platform service is wired
}

// NewSecureStore returns a SecureStore. protector may be nil; platform-mode
// calls then fail with domain.ErrPlatformUnavailable.
func NewSecureStore(protector domain.PlatformProtector) *SecureStore {
	return &SecureStore{protector: protector}
}

// Encrypt seals plaintext under the given mode.
func (s *SecureStore) Encrypt(mode domain.StoreMode, password string, plaintext []byte) (string, error) {
	switch mode {
	case domain.StoreModeNone:
		return "", domain.ErrPersistenceDisabled
	case domain.StoreModePlatform:
		if s.protector == nil {
			return "", domain.ErrPlatformUnavailable
		}
		blob, err := s.protector.Protect(plaintext)
		if err != nil {
			return "", fmt.Errorf("%v: %w", err, domain.ErrPlatformUnavailable)
		}
		return string(mode) + "." + crypto.B64(blob), nil
	case domain.StoreModePassword:
		return s.encryptPassword(password, plaintext)
	default:
		return "", fmt.Errorf("store mode %q: %w", mode, domain.ErrInputFormat)
	}
}

// Decrypt is the inverse of Encrypt. A wrong mode, wrong password, missing
// platform service, or malformed blob fails closed with
// domain.ErrDecryptionFailed (platform absence keeps its own sentinel).
func (s *SecureStore) Decrypt(mode domain.StoreMode, password string, blob string) ([]byte, error) {
	switch mode {
	case domain.StoreModeNone:
		return nil, domain.ErrPersistenceDisabled
	case domain.StoreModePlatform, domain.StoreModePassword:
	default:
		return nil, fmt.Errorf("store mode %q: %w", mode, domain.ErrInputFormat)
	}

	tag, encoded, ok := strings.Cut(blob, ".")
	if !ok || tag != string(mode) {
		return nil, domain.ErrDecryptionFailed
	}
	payload, err := crypto.B64Decode(encoded)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}

	if mode == domain.StoreModePlatform {
		if s.protector == nil {
			return nil, domain.ErrPlatformUnavailable
		}
		pt, err := s.protector.Unprotect(payload)
		if err != nil {
			return nil, domain.ErrDecryptionFailed
		}
		return pt, nil
	}
	return decryptPassword(password, payload)
}

func (s *SecureStore) encryptPassword(password string, plaintext []byte) (string, error) {
	if password == "" {
		return "", fmt.Errorf("empty password: %w", domain.ErrKdfFailed)
	}
	salt, err := crypto.RandomSalt()
	if err != nil {
		return "", err
	}
	key := deriveKey(password, salt[:])
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, domain.ErrKdfFailed)
	}
	nonce, err := crypto.RandomNonce()
	if err != nil {
		return "", err
	}
	ct := aead.Seal(nil, nonce[:], plaintext, nil)

	payload := make([]byte, 0, len(salt)+len(nonce)+len(ct))
	payload = append(payload, salt[:]...)
	payload = append(payload, nonce[:]...)
	payload = append(payload, ct...)
	return string(domain.StoreModePassword) + "." + crypto.B64(payload), nil
}

func decryptPassword(password string, payload []byte) ([]byte, error) {
	if password == "" {
		return nil, domain.ErrDecryptionFailed
	}
	if len(payload) < crypto.SaltSize+crypto.NonceSize+chacha20poly1305.Overhead {
		return nil, domain.ErrDecryptionFailed
	}
	salt := payload[:crypto.SaltSize]
	nonce := payload[crypto.SaltSize : crypto.SaltSize+crypto.NonceSize]
	ct := payload[crypto.SaltSize+crypto.NonceSize:]

	key := deriveKey(password, salt)
	defer memzero.Zero(key)

	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	pt, err := aead.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return pt, nil
}

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, kdfTime, kdfMemoryKB, kdfThreads, chacha20poly1305.KeySize)
}
