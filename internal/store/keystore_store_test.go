package store_test

import (
	"errors"
	"testing"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/store"
)

func makeKeystore(t *testing.T) *domain.Keystore {
	t.Helper()
	id, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	ks := domain.NewKeystore(id)
	ks.SetPeerSecret("peer-fp", domain.SharedSecret{1, 2, 3})
	ks.SetChannelKey(domain.ChannelKey{
		Key:       [32]byte{4, 5, 6},
		Channel:   "#ops",
		Network:   "libera",
		CreatedAt: 1700000000,
	})
	return ks
}

func TestKeystore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewKeystoreFileStore(dir, store.NewSecureStore(nil))
	ks := makeKeystore(t)

	if fs.Exists() {
		t.Fatal("Exists before save")
	}
	if err := fs.Save(domain.StoreModePassword, "pass", ks); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !fs.Exists() {
		t.Fatal("Exists after save")
	}

	got, err := fs.Load(domain.StoreModePassword, "pass")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Identity != ks.Identity {
		t.Fatal("identity mismatch after load")
	}
	if s, ok := got.PeerSecret("peer-fp"); !ok || s != (domain.SharedSecret{1, 2, 3}) {
		t.Fatal("peer secret lost")
	}
	ck, ok := got.ChannelKey(domain.ChannelRef{Channel: "#ops", Network: "libera"})
	if !ok || ck.Key != ([32]byte{4, 5, 6}) || ck.CreatedAt != 1700000000 {
		t.Fatal("channel key lost")
	}
}

func TestKeystore_WrongPassword(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewKeystoreFileStore(dir, store.NewSecureStore(nil))
	ks := makeKeystore(t)

	if err := fs.Save(domain.StoreModePassword, "correct", ks); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := fs.Load(domain.StoreModePassword, "wrong"); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("wrong password: got %v, want ErrDecryptionFailed", err)
	}
}

func TestKeystore_ModeNone_NeverPersists(t *testing.T) {
	dir := t.TempDir()
	fs := store.NewKeystoreFileStore(dir, store.NewSecureStore(nil))
	ks := makeKeystore(t)

	if err := fs.Save(domain.StoreModeNone, "", ks); !errors.Is(err, domain.ErrPersistenceDisabled) {
		t.Fatalf("Save: got %v, want ErrPersistenceDisabled", err)
	}
	if fs.Exists() {
		t.Fatal("file written despite disabled persistence")
	}
}
