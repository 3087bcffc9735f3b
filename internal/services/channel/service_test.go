package channel_test

import (
	"bytes"
	"errors"
	"testing"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/services/channel"
	"sealchat/internal/services/exchange"
	"sealchat/internal/services/message"
)

func newParty(t *testing.T) *domain.Keystore {
	t.Helper()
	id, err := crypto.GenerateIdentity()
	if err != nil {
		t.Fatalf("GenerateIdentity: %v", err)
	}
	return domain.NewKeystore(id)
}

func pair(t *testing.T, alice, bob *domain.Keystore) (bobSeesAlice, aliceSeesBob domain.Fingerprint) {
	t.Helper()
	ex := exchange.New()

	aliceOffer, err := ex.OurOffer(alice, 2)
	if err != nil {
		t.Fatalf("OurOffer: %v", err)
	}
	bobOffer, err := ex.OurOffer(bob, 2)
	if err != nil {
		t.Fatalf("OurOffer: %v", err)
	}
	if bobSeesAlice, err = ex.Accept(bob, aliceOffer); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	if aliceSeesBob, err = ex.Accept(alice, bobOffer); err != nil {
		t.Fatalf("Accept: %v", err)
	}
	return bobSeesAlice, aliceSeesBob
}

func TestChannelKey_DistributionScenario(t *testing.T) {
	alice := newParty(t)
	bob := newParty(t)
	_, aliceSeesBob := pair(t, alice, bob)

	msgs := message.New(0)
	chans := channel.New(msgs)
	ref := domain.ChannelRef{Channel: "#ops", Network: "libera"}

	original, err := chans.Generate(alice, "#ops", "libera")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Key distribution rides over the secured direct channel.
	envelope, err := chans.Export(alice, ref, aliceSeesBob)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	recovered, from, err := chans.Import(bob, envelope)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if from != crypto.Fingerprint(alice.Identity.ExchPub) {
		t.Fatalf("import source = %s", from)
	}
	if recovered.Key != original.Key || recovered.CreatedAt != original.CreatedAt {
		t.Fatal("recovered channel key differs from original")
	}

	// Any holder can both encrypt and decrypt, in either direction.
	token, err := msgs.SealChannel(bob, ref, []byte("group hello"))
	if err != nil {
		t.Fatalf("SealChannel at bob: %v", err)
	}
	pt, err := msgs.OpenChannel(alice, ref, token)
	if err != nil {
		t.Fatalf("OpenChannel at alice: %v", err)
	}
	if !bytes.Equal(pt, []byte("group hello")) {
		t.Fatalf("plaintext = %q", pt)
	}

	token, err = msgs.SealChannel(alice, ref, []byte("reply"))
	if err != nil {
		t.Fatalf("SealChannel at alice: %v", err)
	}
	if pt, err = msgs.OpenChannel(bob, ref, token); err != nil || !bytes.Equal(pt, []byte("reply")) {
		t.Fatalf("OpenChannel at bob: %q, %v", pt, err)
	}
}

func TestPackageParse_Roundtrip(t *testing.T) {
	alice := newParty(t)
	chans := channel.New(message.New(0))

	ck, err := chans.Generate(alice, "#dev", "oftc")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	desc, err := chans.Package(ck)
	if err != nil {
		t.Fatalf("Package: %v", err)
	}
	got, err := chans.ParseDescriptor(desc)
	if err != nil {
		t.Fatalf("ParseDescriptor: %v", err)
	}
	if got.Key != ck.Key || got.Channel != ck.Channel || got.Network != ck.Network || got.CreatedAt != ck.CreatedAt {
		t.Fatal("descriptor roundtrip mismatch")
	}
}

func TestParseDescriptor_Malformed(t *testing.T) {
	chans := channel.New(message.New(0))

	if _, err := chans.ParseDescriptor("nope"); !errors.Is(err, domain.ErrInputFormat) {
		t.Fatalf("bad json: got %v, want ErrInputFormat", err)
	}
	if _, err := chans.ParseDescriptor(`{"v":1,"channel":"#a","network":"n","key":"AAAA","createdAt":1}`); !errors.Is(err, domain.ErrInvalidKeyMaterial) {
		t.Fatalf("short key: got %v, want ErrInvalidKeyMaterial", err)
	}
	if _, err := chans.ParseDescriptor(`{"v":1,"channel":"","network":"n","key":"AAAA","createdAt":1}`); !errors.Is(err, domain.ErrInputFormat) {
		t.Fatalf("empty channel: got %v, want ErrInputFormat", err)
	}
}

func TestGenerate_RequiresIdentifiers(t *testing.T) {
	alice := newParty(t)
	chans := channel.New(message.New(0))

	if _, err := chans.Generate(alice, "", "net"); !errors.Is(err, domain.ErrInputFormat) {
		t.Fatalf("got %v, want ErrInputFormat", err)
	}
}
