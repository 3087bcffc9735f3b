package domain

// X25519Public is a Curve25519 exchange public key.
type X25519Public [32]byte

// Slice returns the key as a []byte.
func (p X25519Public) Slice() []byte { return p[:] }

// X25519Private is a Curve25519 exchange private key.
type X25519Private [32]byte

// Slice returns the key as a []byte.
func (k X25519Private) Slice() []byte { return k[:] }

// Ed25519Public is an Ed25519 signing public key.
type Ed25519Public [32]byte

// Slice returns the key as a []byte.
func (p Ed25519Public) Slice() []byte { return p[:] }

// Ed25519Private is an Ed25519 signing private key.
type Ed25519Private [64]byte

// Slice returns the key as a []byte.
func (k Ed25519Private) Slice() []byte { return k[:] }

// Identity holds the long-term signing and exchange key pairs of the local
// party. Secret fields are only ever serialised through the secure store.
type Identity struct {
	SignPub  Ed25519Public  `json:"sign_pub"`
	SignPriv Ed25519Private `json:"sign_priv"`
	ExchPub  X25519Public   `json:"exch_pub"`
	ExchPriv X25519Private  `json:"exch_priv"`
}

// SharedSecret is a 32-byte symmetric key derived from a key exchange with a
// peer. Both ends hold the identical value iff their exchange keys paired up
// and the offer signature verified.
type SharedSecret [32]byte

// Slice returns the secret as a []byte.
func (s SharedSecret) Slice() []byte { return s[:] }

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// ChannelKey is the symmetric key shared by every member of a channel.
// Any holder can both encrypt and decrypt; there is no per-member state.
type ChannelKey struct {
	Key       [32]byte `json:"key"`
	Channel   string   `json:"channel"`
	Network   string   `json:"network"`
	CreatedAt int64    `json:"created_at"`
}

// Ref returns the keystore reference for this key.
func (c ChannelKey) Ref() ChannelRef {
	return ChannelRef{Channel: c.Channel, Network: c.Network}
}

// ChannelRef identifies a channel on a specific network.
type ChannelRef struct {
	Channel string
	Network string
}

// String renders the reference as "network/channel" for map keys and display.
func (r ChannelRef) String() string { return r.Network + "/" + r.Channel }
