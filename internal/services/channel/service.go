package channel

import (
	"encoding/json"
	"fmt"
	"time"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
	"sealchat/internal/services/message"
)

// DescriptorVersion is the current channel-key distribution format.
const DescriptorVersion = 1

// Service manages channel keys in the keystore.
type Service struct {
	messages *message.Service
}

// New constructs a channel service; key distribution rides over the message
// service's direct envelopes.
func New(messages *message.Service) *Service {
	return &Service{messages: messages}
}

// Generate draws a fresh channel key, records it in the keystore, and
// returns it.
func (s *Service) Generate(ks *domain.Keystore, channel, network string) (domain.ChannelKey, error) {
	if channel == "" || network == "" {
		return domain.ChannelKey{}, fmt.Errorf("channel and network required: %w", domain.ErrInputFormat)
	}
	key, err := crypto.RandomKey()
	if err != nil {
		return domain.ChannelKey{}, err
	}
	ck := domain.ChannelKey{
		Key:       key,
		Channel:   channel,
		Network:   network,
		CreatedAt: time.Now().Unix(),
	}
	ks.SetChannelKey(ck)
	return ck, nil
}

// Package serialises a channel key into its transport descriptor. The
// descriptor is plaintext; callers go through Export before sending.
func (s *Service) Package(ck domain.ChannelKey) (string, error) {
	w := domain.ChannelDescriptorWire{
		V:         DescriptorVersion,
		Channel:   ck.Channel,
		Network:   ck.Network,
		Key:       crypto.B64(ck.Key[:]),
		CreatedAt: ck.CreatedAt,
	}
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode descriptor: %w", domain.ErrInputFormat)
	}
	return string(b), nil
}

// ParseDescriptor validates and decodes a received descriptor.
func (s *Service) ParseDescriptor(token string) (domain.ChannelKey, error) {
	var w domain.ChannelDescriptorWire
	if err := json.Unmarshal([]byte(token), &w); err != nil {
		return domain.ChannelKey{}, fmt.Errorf("decode descriptor: %w", domain.ErrInputFormat)
	}
	if w.V < 1 || w.Channel == "" || w.Network == "" {
		return domain.ChannelKey{}, fmt.Errorf("descriptor fields: %w", domain.ErrInputFormat)
	}
	key, err := crypto.B64Decode(w.Key)
	if err != nil {
		return domain.ChannelKey{}, err
	}
	if len(key) != crypto.KeySize {
		return domain.ChannelKey{}, fmt.Errorf("channel key length %d: %w", len(key), domain.ErrInvalidKeyMaterial)
	}
	ck := domain.ChannelKey{Channel: w.Channel, Network: w.Network, CreatedAt: w.CreatedAt}
	copy(ck.Key[:], key)
	return ck, nil
}

// Export packages the channel key and seals it for the peer inside a direct
// envelope, returning the envelope token ready to send.
func (s *Service) Export(ks *domain.Keystore, ref domain.ChannelRef, peer domain.Fingerprint) (string, error) {
	ck, ok := ks.ChannelKey(ref)
	if !ok {
		return "", fmt.Errorf("channel %s: %w", ref, message.ErrUnknownChannel)
	}
	desc, err := s.Package(ck)
	if err != nil {
		return "", err
	}
	return s.messages.SealDirect(ks, peer, []byte(desc))
}

// Import opens a sealed descriptor received from a peer and records the
// channel key in the keystore.
func (s *Service) Import(ks *domain.Keystore, envelopeToken string) (domain.ChannelKey, domain.Fingerprint, error) {
	from, desc, err := s.messages.OpenDirect(ks, envelopeToken)
	if err != nil {
		return domain.ChannelKey{}, "", err
	}
	ck, err := s.ParseDescriptor(string(desc))
	if err != nil {
		return domain.ChannelKey{}, "", err
	}
	ks.SetChannelKey(ck)
	return ck, from, nil
}
