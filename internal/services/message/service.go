package message

import (
	"errors"
	"fmt"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/protocol/seal"
)

var (
	// ErrUnknownPeer indicates no shared secret is recorded for the peer.
	ErrUnknownPeer = errors.New("no shared secret for peer; accept their offer first")
	// ErrUnknownChannel indicates no key is held for the channel.
	ErrUnknownChannel = errors.New("no key for channel; generate or import one first")
)

// Service seals and opens message envelopes. The plaintext bound is the
// transport's concern; MaxPlaintext only guards against a caller exceeding
// the configured limit.
type Service struct {
	maxPlaintext int
}

// New constructs a message service. maxPlaintext <= 0 selects the default.
func New(maxPlaintext int) *Service { return &Service{maxPlaintext: maxPlaintext} }

// SealDirect encrypts plaintext for the peer identified by fingerprint and
// returns the direct-envelope token.
func (s *Service) SealDirect(ks *domain.Keystore, peer domain.Fingerprint, plaintext []byte) (string, error) {
	secret, ok := ks.PeerSecret(peer)
	if !ok {
		return "", fmt.Errorf("peer %s: %w", peer, ErrUnknownPeer)
	}
	env, err := seal.SealDirect(secret.Slice(), plaintext, ks.Identity.ExchPub, s.maxPlaintext)
	if err != nil {
		return "", err
	}
	return env.Encode()
}

// OpenDirect decrypts a direct-envelope token, selecting the shared secret
// by the sender key carried in the envelope.
func (s *Service) OpenDirect(ks *domain.Keystore, token string) (domain.Fingerprint, []byte, error) {
	env, err := seal.DecodeDirect(token)
	if err != nil {
		return "", nil, err
	}
	fp := crypto.Fingerprint(env.From)
	secret, ok := ks.PeerSecret(fp)
	if !ok {
		return "", nil, fmt.Errorf("peer %s: %w", fp, ErrUnknownPeer)
	}
	pt, err := seal.Open(secret.Slice(), env.Nonce, env.Cipher)
	if err != nil {
		return "", nil, err
	}
	return fp, pt, nil
}

// SealChannel encrypts plaintext under the channel key and returns the
// channel-envelope token.
func (s *Service) SealChannel(ks *domain.Keystore, ref domain.ChannelRef, plaintext []byte) (string, error) {
	ck, ok := ks.ChannelKey(ref)
	if !ok {
		return "", fmt.Errorf("channel %s: %w", ref, ErrUnknownChannel)
	}
	env, err := seal.SealChannel(ck.Key[:], plaintext, s.maxPlaintext)
	if err != nil {
		return "", err
	}
	return env.Encode()
}

// OpenChannel decrypts a channel-envelope token under the channel key.
func (s *Service) OpenChannel(ks *domain.Keystore, ref domain.ChannelRef, token string) ([]byte, error) {
	ck, ok := ks.ChannelKey(ref)
	if !ok {
		return nil, fmt.Errorf("channel %s: %w", ref, ErrUnknownChannel)
	}
	env, err := seal.DecodeChannel(token)
	if err != nil {
		return nil, err
	}
	return seal.Open(ck.Key[:], env.Nonce, env.Cipher)
}
