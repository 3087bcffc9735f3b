package exchange

import (
	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/protocol/offer"
)

// Service runs the offer half of the key exchange. Offers travel out-of-band;
// the service only produces and consumes their text tokens.
type Service struct{}

// New returns an exchange service.
func New() *Service { return &Service{} }

// OurOffer builds and encodes the local offer for the given protocol version.
func (s *Service) OurOffer(ks *domain.Keystore, version int) (string, error) {
	o, err := offer.Build(ks.Identity, version)
	if err != nil {
		return "", err
	}
	return o.Encode()
}

// Accept consumes a peer's offer token: verifies the signature, derives the
// shared secret, and records it in the keystore under the peer's
// exchange-key fingerprint. A failed verification discards the offer.
func (s *Service) Accept(ks *domain.Keystore, token string) (domain.Fingerprint, error) {
	o, err := offer.Decode(token)
	if err != nil {
		return "", err
	}
	secret, err := offer.Derive(o, ks.Identity.ExchPriv)
	if err != nil {
		return "", err
	}
	fp := crypto.Fingerprint(o.ExchPub)
	ks.SetPeerSecret(fp, secret)
	return fp, nil
}
