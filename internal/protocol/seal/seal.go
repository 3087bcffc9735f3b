package seal

import (
	"crypto/cipher"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	"sealchat/internal/crypto"
	"sealchat/internal/domain"
)

const (
	// DirectVersion is the current direct-message envelope version.
	DirectVersion = 2
	// ChannelVersion is the current channel-message envelope version.
	ChannelVersion = 1

	// NonceSize is the envelope nonce length.
	NonceSize = crypto.NonceSize
	// Overhead is the authentication tag length appended to the ciphertext.
	Overhead = chacha20poly1305.Overhead

	// DefaultMaxPlaintext bounds plaintext when the caller configures no
	// limit. The real bound belongs to the transport.
	DefaultMaxPlaintext = 16 << 10
)

// Direct is a sealed direct message.
type Direct struct {
	Version int
	From    domain.X25519Public
	Nonce   [NonceSize]byte
	Cipher  []byte
}

// Channel is a sealed channel message.
type Channel struct {
	Version int
	Nonce   [NonceSize]byte
	Cipher  []byte
}

// SealDirect seals plaintext under key and stamps the sender's exchange
// public key for recipient bookkeeping. maxPlaintext <= 0 selects
// DefaultMaxPlaintext.
func SealDirect(key, plaintext []byte, from domain.X25519Public, maxPlaintext int) (Direct, error) {
	nonce, ct, err := sealRaw(key, plaintext, maxPlaintext)
	if err != nil {
		return Direct{}, err
	}
	return Direct{Version: DirectVersion, From: from, Nonce: nonce, Cipher: ct}, nil
}

// SealChannel seals plaintext under a channel key.
func SealChannel(key, plaintext []byte, maxPlaintext int) (Channel, error) {
	nonce, ct, err := sealRaw(key, plaintext, maxPlaintext)
	if err != nil {
		return Channel{}, err
	}
	return Channel{Version: ChannelVersion, Nonce: nonce, Cipher: ct}, nil
}

// Open authenticates and decrypts an envelope body. Any tag mismatch —
// wrong key, corruption, tampering — surfaces as
// domain.ErrAuthenticationFailed with no output.
func Open(key []byte, nonce [NonceSize]byte, cipher []byte) ([]byte, error) {
	aead, err := newAEAD(key)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce[:], cipher, nil)
	if err != nil {
		return nil, domain.ErrAuthenticationFailed
	}
	return pt, nil
}

// Encode renders the direct envelope as its wire token.
func (d Direct) Encode() (string, error) {
	w := domain.DirectEnvelopeWire{
		V:      d.Version,
		From:   crypto.B64(d.From.Slice()),
		Nonce:  crypto.B64(d.Nonce[:]),
		Cipher: crypto.B64(d.Cipher),
	}
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", domain.ErrInputFormat)
	}
	return string(b), nil
}

// DecodeDirect parses a direct-envelope wire token.
func DecodeDirect(token string) (Direct, error) {
	var w domain.DirectEnvelopeWire
	if err := json.Unmarshal([]byte(token), &w); err != nil {
		return Direct{}, fmt.Errorf("decode envelope: %w", domain.ErrInputFormat)
	}
	from, err := crypto.B64Decode(w.From)
	if err != nil {
		return Direct{}, err
	}
	if len(from) != 32 {
		return Direct{}, fmt.Errorf("sender key length: %w", domain.ErrInvalidKeyMaterial)
	}
	nonce, cipher, err := decodeBody(w.V, w.Nonce, w.Cipher)
	if err != nil {
		return Direct{}, err
	}
	d := Direct{Version: w.V, Nonce: nonce, Cipher: cipher}
	copy(d.From[:], from)
	return d, nil
}

// Encode renders the channel envelope as its wire token.
func (c Channel) Encode() (string, error) {
	w := domain.ChannelEnvelopeWire{
		V:      c.Version,
		Nonce:  crypto.B64(c.Nonce[:]),
		Cipher: crypto.B64(c.Cipher),
	}
	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", domain.ErrInputFormat)
	}
	return string(b), nil
}

// DecodeChannel parses a channel-envelope wire token.
func DecodeChannel(token string) (Channel, error) {
	var w domain.ChannelEnvelopeWire
	if err := json.Unmarshal([]byte(token), &w); err != nil {
		return Channel{}, fmt.Errorf("decode envelope: %w", domain.ErrInputFormat)
	}
	nonce, cipher, err := decodeBody(w.V, w.Nonce, w.Cipher)
	if err != nil {
		return Channel{}, err
	}
	return Channel{Version: w.V, Nonce: nonce, Cipher: cipher}, nil
}

func sealRaw(key, plaintext []byte, maxPlaintext int) (nonce [NonceSize]byte, ct []byte, err error) {
	if maxPlaintext <= 0 {
		maxPlaintext = DefaultMaxPlaintext
	}
	if len(plaintext) > maxPlaintext {
		return nonce, nil, fmt.Errorf("%d bytes: %w", len(plaintext), domain.ErrPayloadTooLarge)
	}
	aead, err := newAEAD(key)
	if err != nil {
		return nonce, nil, err
	}
	nonce, err = crypto.RandomNonce()
	if err != nil {
		return nonce, nil, err
	}
	ct = aead.Seal(nil, nonce[:], plaintext, nil)
	return nonce, ct, nil
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != crypto.KeySize {
		return nil, fmt.Errorf("key length %d: %w", len(key), domain.ErrInvalidKeyMaterial)
	}
	a, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidKeyMaterial)
	}
	return a, nil
}

func decodeBody(version int, nonceField, cipherField string) (nonce [NonceSize]byte, cipher []byte, err error) {
	if version < 1 {
		return nonce, nil, fmt.Errorf("envelope version %d: %w", version, domain.ErrInputFormat)
	}
	nb, err := crypto.B64Decode(nonceField)
	if err != nil {
		return nonce, nil, err
	}
	if len(nb) != NonceSize {
		return nonce, nil, fmt.Errorf("nonce length %d: %w", len(nb), domain.ErrInputFormat)
	}
	cipher, err = crypto.B64Decode(cipherField)
	if err != nil {
		return nonce, nil, err
	}
	if len(cipher) < Overhead {
		return nonce, nil, fmt.Errorf("ciphertext too short: %w", domain.ErrInputFormat)
	}
	copy(nonce[:], nb)
	return nonce, cipher, nil
}
