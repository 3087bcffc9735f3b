package crypto

import "sealchat/internal/domain"

// GenerateIdentity draws a fresh signing pair and an independent exchange
// pair. Each call yields a distinct identity; callers that need one identity
// per role simply call again.
func GenerateIdentity() (domain.Identity, error) {
	signPriv, signPub, err := GenerateEd25519()
	if err != nil {
		return domain.Identity{}, err
	}
	exchPriv, exchPub, err := GenerateX25519()
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{
		SignPub:  signPub,
		SignPriv: signPriv,
		ExchPub:  exchPub,
		ExchPriv: exchPriv,
	}, nil
}
