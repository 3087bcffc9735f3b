package identity

import (
	"sealchat/internal/crypto"
	"sealchat/internal/domain"
)

// Service manages keystore creation and access using a backing store.
type Service struct {
	store domain.KeystoreStore
}

// New returns an identity service backed by the given store.
func New(s domain.KeystoreStore) *Service { return &Service{store: s} }

// Create generates a fresh identity, wraps it in an empty keystore, persists
// it under the given protection mode, and returns the keystore plus the
// exchange-key fingerprint.
func (s *Service) Create(mode domain.StoreMode, password string) (*domain.Keystore, domain.Fingerprint, error) {
	id, err := crypto.GenerateIdentity()
	if err != nil {
		return nil, "", err
	}
	ks := domain.NewKeystore(id)
	if err := s.store.Save(mode, password, ks); err != nil {
		return nil, "", err
	}
	return ks, crypto.Fingerprint(id.ExchPub), nil
}

// Load decrypts and returns the persisted keystore.
func (s *Service) Load(mode domain.StoreMode, password string) (*domain.Keystore, error) {
	return s.store.Load(mode, password)
}

// Save persists the keystore after mutation.
func (s *Service) Save(mode domain.StoreMode, password string, ks *domain.Keystore) error {
	return s.store.Save(mode, password, ks)
}

// Fingerprint returns the local exchange-key fingerprint.
func (s *Service) Fingerprint(ks *domain.Keystore) domain.Fingerprint {
	return crypto.Fingerprint(ks.Identity.ExchPub)
}
