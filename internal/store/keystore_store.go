package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"sealchat/internal/domain"
)

const keystoreFilename = "keystore.enc"

// KeystoreFileStore persists the keystore to disk through a SecureStore.
type KeystoreFileStore struct {
	dir string
	sec *SecureStore
	mu  sync.Mutex
}

// NewKeystoreFileStore returns a KeystoreFileStore rooted at dir.
func NewKeystoreFileStore(dir string, sec *SecureStore) *KeystoreFileStore {
	return &KeystoreFileStore{dir: dir, sec: sec}
}

// Save serialises and encrypts the keystore, then writes it atomically.
func (s *KeystoreFileStore) Save(mode domain.StoreMode, password string, ks *domain.Keystore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(ks)
	if err != nil {
		return fmt.Errorf("marshal keystore: %w", err)
	}
	blob, err := s.sec.Encrypt(mode, password, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, keystoreFilename), []byte(blob), 0o600)
}

// Load reads and decrypts the keystore.
func (s *KeystoreFileStore) Load(mode domain.StoreMode, password string) (*domain.Keystore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := os.ReadFile(filepath.Join(s.dir, keystoreFilename))
	if err != nil {
		return nil, err
	}
	raw, err := s.sec.Decrypt(mode, password, string(blob))
	if err != nil {
		return nil, err
	}
	var ks domain.Keystore
	if err := json.Unmarshal(raw, &ks); err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return &ks, nil
}

// Exists reports whether a keystore file is present.
func (s *KeystoreFileStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, keystoreFilename))
	return err == nil
}

// Compile-time assertion that KeystoreFileStore implements domain.KeystoreStore.
var _ domain.KeystoreStore = (*KeystoreFileStore)(nil)
