package offer_test

import (
	"errors"
	"testing"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/protocol/offer"
)

// makeIdentity creates a domain.Identity with fresh exchange and signing pairs.
func makeIdentity(t *testing.T) domain.Identity {
	t.Helper()
	id, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	return id
}

func TestDerive_BothSidesAgree(t *testing.T) {
	alice := makeIdentity(t)
	bob := makeIdentity(t)

	offerA, err := offer.Build(alice, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	offerB, err := offer.Build(bob, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	secretAtBob, err := offer.Derive(offerA, bob.ExchPriv)
	if err != nil {
		t.Fatalf("Derive at bob: %v", err)
	}
	secretAtAlice, err := offer.Derive(offerB, alice.ExchPriv)
	if err != nil {
		t.Fatalf("Derive at alice: %v", err)
	}
	if secretAtAlice != secretAtBob {
		t.Fatal("shared secrets differ between the two ends")
	}
}

func TestDerive_LegacyVersionAgrees(t *testing.T) {
	alice := makeIdentity(t)
	bob := makeIdentity(t)

	offerA, err := offer.Build(alice, offer.VersionLegacy)
	if err != nil {
		t.Fatalf("Build legacy: %v", err)
	}
	offerB, err := offer.Build(bob, offer.VersionLegacy)
	if err != nil {
		t.Fatalf("Build legacy: %v", err)
	}

	secretAtBob, err := offer.Derive(offerA, bob.ExchPriv)
	if err != nil {
		t.Fatalf("Derive at bob: %v", err)
	}
	secretAtAlice, err := offer.Derive(offerB, alice.ExchPriv)
	if err != nil {
		t.Fatalf("Derive at alice: %v", err)
	}
	if secretAtAlice != secretAtBob {
		t.Fatal("legacy shared secrets differ between the two ends")
	}
}

func TestVerify_VersionTagSelectsMessage(t *testing.T) {
	id := makeIdentity(t)

	o, err := offer.Build(id, offer.VersionLegacy)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := offer.Verify(o); err != nil {
		t.Fatalf("Verify legacy: %v", err)
	}

	// The same signature checked under the other convention must not verify.
	o.Version = offer.VersionCurrent
	if err := offer.Verify(o); !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("cross-version verify: got %v, want ErrSignatureInvalid", err)
	}
}

func TestDerive_TamperedOffer_SignatureInvalid(t *testing.T) {
	alice := makeIdentity(t)
	bob := makeIdentity(t)

	o, err := offer.Build(alice, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	tampered := o
	tampered.ExchPub[7] ^= 0x01
	if _, err := offer.Derive(tampered, bob.ExchPriv); !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("tampered exchange key: got %v, want ErrSignatureInvalid", err)
	}

	tampered = o
	tampered.Sig = append([]byte(nil), o.Sig...)
	tampered.Sig[0] ^= 0x01
	if _, err := offer.Derive(tampered, bob.ExchPriv); !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("tampered signature: got %v, want ErrSignatureInvalid", err)
	}

	tampered = o
	tampered.SignPub[0] ^= 0x01
	if _, err := offer.Derive(tampered, bob.ExchPriv); !errors.Is(err, domain.ErrSignatureInvalid) {
		t.Fatalf("tampered signing key: got %v, want ErrSignatureInvalid", err)
	}
}

func TestDerive_DifferentExchangeKey_DifferentSecret(t *testing.T) {
	alice := makeIdentity(t)
	bob := makeIdentity(t)

	offerA, err := offer.Build(alice, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	base, err := offer.Derive(offerA, bob.ExchPriv)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	// A freshly signed offer over a flipped exchange key must not yield the
	// same secret.
	flipped := alice
	flipped.ExchPub[3] ^= 0x01
	offerFlipped, err := offer.Build(flipped, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build flipped: %v", err)
	}
	got, err := offer.Derive(offerFlipped, bob.ExchPriv)
	if err != nil {
		if errors.Is(err, domain.ErrKeyExchangeFailed) {
			return
		}
		t.Fatalf("Derive flipped: %v", err)
	}
	if got == base {
		t.Fatal("flipped exchange key produced the same shared secret")
	}
}

func TestDerive_LowOrderPoint_KeyExchangeFailed(t *testing.T) {
	alice := makeIdentity(t)
	bob := makeIdentity(t)

	// Zero point: X25519 rejects the all-zero shared secret.
	o := alice
	o.ExchPub = domain.X25519Public{}
	lowOrder, err := offer.Build(o, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, err := offer.Derive(lowOrder, bob.ExchPriv); !errors.Is(err, domain.ErrKeyExchangeFailed) {
		t.Fatalf("low-order point: got %v, want ErrKeyExchangeFailed", err)
	}
}

func TestEncodeDecode_Roundtrip(t *testing.T) {
	id := makeIdentity(t)
	o, err := offer.Build(id, offer.VersionCurrent)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	token, err := o.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := offer.Decode(token)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Version != o.Version || got.SignPub != o.SignPub || got.ExchPub != o.ExchPub {
		t.Fatal("decoded offer differs from original")
	}
	if err := offer.Verify(got); err != nil {
		t.Fatalf("Verify decoded: %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := offer.Decode("not json"); !errors.Is(err, domain.ErrInputFormat) {
		t.Fatalf("bad json: got %v, want ErrInputFormat", err)
	}
	if _, err := offer.Decode(`{"v":2,"idPub":"%%%","encPub":"","sig":""}`); !errors.Is(err, domain.ErrEncoding) {
		t.Fatalf("bad base64: got %v, want ErrEncoding", err)
	}
	if _, err := offer.Decode(`{"v":2,"idPub":"AAAA","encPub":"AAAA","sig":"AAAA"}`); !errors.Is(err, domain.ErrInvalidKeyMaterial) {
		t.Fatalf("short keys: got %v, want ErrInvalidKeyMaterial", err)
	}
	if _, err := offer.Decode(`{"v":0,"idPub":"AAAA","encPub":"AAAA","sig":"AAAA"}`); !errors.Is(err, domain.ErrInputFormat) {
		t.Fatalf("version 0: got %v, want ErrInputFormat", err)
	}
}
