package offer

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/util/memzero"
)

const (
	// VersionLegacy signs signPub||exchPub (first protocol iteration and the
	// channel variant).
	VersionLegacy = 1
	// VersionCurrent signs the exchange public key alone.
	VersionCurrent = 2
)

// Offer is a signature-bound key-exchange offer. Immutable once built.
type Offer struct {
	Version int
	SignPub domain.Ed25519Public
	ExchPub domain.X25519Public
	Sig     []byte
}

// Build signs the version-selected message with the identity's signing key
// and packages the offer.
func Build(id domain.Identity, version int) (Offer, error) {
	if version < VersionLegacy {
		return Offer{}, fmt.Errorf("offer version %d: %w", version, domain.ErrInputFormat)
	}
	var zero domain.Ed25519Private
	if id.SignPriv == zero {
		return Offer{}, fmt.Errorf("empty signing key: %w", domain.ErrInvalidKeyMaterial)
	}
	msg := signedMessage(version, id.SignPub, id.ExchPub)
	return Offer{
		Version: version,
		SignPub: id.SignPub,
		ExchPub: id.ExchPub,
		Sig:     crypto.SignEd25519(id.SignPriv, msg),
	}, nil
}

// Verify checks the offer signature against the embedded signing key and the
// version-appropriate message.
func Verify(o Offer) error {
	if len(o.Sig) != ed25519.SignatureSize {
		return fmt.Errorf("signature length %d: %w", len(o.Sig), domain.ErrSignatureInvalid)
	}
	msg := signedMessage(o.Version, o.SignPub, o.ExchPub)
	if !crypto.VerifyEd25519(o.SignPub, msg, o.Sig) {
		return domain.ErrSignatureInvalid
	}
	return nil
}

// Derive turns a received offer plus the local exchange secret into the
// shared secret. Signature verification happens first and a failure aborts
// before any Diffie–Hellman step.
func Derive(o Offer, localExchPriv domain.X25519Private) (domain.SharedSecret, error) {
	if err := Verify(o); err != nil {
		return domain.SharedSecret{}, err
	}
	raw, err := crypto.DH(localExchPriv, o.ExchPub)
	if err != nil {
		return domain.SharedSecret{}, err
	}
	secret := domain.SharedSecret(sha256.Sum256(raw[:]))
	memzero.Zero(raw[:])
	return secret, nil
}

// Encode renders the offer as its wire token.
func (o Offer) Encode() (string, error) {
	w := domain.OfferWire{
		V:      o.Version,
		IDPub:  crypto.B64(o.SignPub.Slice()),
		EncPub: crypto.B64(o.ExchPub.Slice()),
		Sig:    crypto.B64(o.Sig),
	}
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode offer: %w", domain.ErrInputFormat)
	}
	return string(b), nil
}

// Decode parses a wire token into an Offer, validating field lengths.
func Decode(token string) (Offer, error) {
	var w domain.OfferWire
	if err := json.Unmarshal([]byte(token), &w); err != nil {
		return Offer{}, fmt.Errorf("decode offer: %w", domain.ErrInputFormat)
	}
	if w.V < VersionLegacy {
		return Offer{}, fmt.Errorf("offer version %d: %w", w.V, domain.ErrInputFormat)
	}
	idPub, err := crypto.B64Decode(w.IDPub)
	if err != nil {
		return Offer{}, err
	}
	encPub, err := crypto.B64Decode(w.EncPub)
	if err != nil {
		return Offer{}, err
	}
	sig, err := crypto.B64Decode(w.Sig)
	if err != nil {
		return Offer{}, err
	}
	if len(idPub) != ed25519.PublicKeySize || len(encPub) != 32 {
		return Offer{}, fmt.Errorf("offer key length: %w", domain.ErrInvalidKeyMaterial)
	}
	o := Offer{Version: w.V, Sig: sig}
	copy(o.SignPub[:], idPub)
	copy(o.ExchPub[:], encPub)
	return o, nil
}

// signedMessage selects the bytes the signature covers. The switch is on the
// explicit version tag only.
func signedMessage(version int, signPub domain.Ed25519Public, exchPub domain.X25519Public) []byte {
	if version >= VersionCurrent {
		return exchPub.Slice()
	}
	msg := make([]byte, 0, len(signPub)+len(exchPub))
	msg = append(msg, signPub.Slice()...)
	msg = append(msg, exchPub.Slice()...)
	return msg
}
