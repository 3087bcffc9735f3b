package identity_test

import (
	"errors"
	"testing"

	"sealchat/internal/domain"
	"sealchat/internal/services/identity"
	"sealchat/internal/store"
)

func newService(t *testing.T) *identity.Service {
	t.Helper()
	fs := store.NewKeystoreFileStore(t.TempDir(), store.NewSecureStore(nil))
	return identity.New(fs)
}

func TestCreateAndLoad(t *testing.T) {
	svc := newService(t)

	ks, fp, err := svc.Create(domain.StoreModePassword, "pass")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if fp == "" || svc.Fingerprint(ks) != fp {
		t.Fatalf("fingerprint mismatch: %q", fp)
	}

	got, err := svc.Load(domain.StoreModePassword, "pass")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Identity != ks.Identity {
		t.Fatal("identity changed across save/load")
	}
}

func TestCreate_ModeNone_Fails(t *testing.T) {
	svc := newService(t)
	if _, _, err := svc.Create(domain.StoreModeNone, ""); !errors.Is(err, domain.ErrPersistenceDisabled) {
		t.Fatalf("got %v, want ErrPersistenceDisabled", err)
	}
}
