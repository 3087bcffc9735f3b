package domain

// Keystore owns all key material for one local party: the long-term identity,
// the shared secrets negotiated with peers, and the channel keys it holds.
// It is passed explicitly into every operation; there is no ambient state.
type Keystore struct {
	Identity Identity                `json:"identity"`
	Peers    map[string]SharedSecret `json:"peers"`
	Channels map[string]ChannelKey   `json:"channels"`
}

// NewKeystore returns an empty keystore for id.
func NewKeystore(id Identity) *Keystore {
	return &Keystore{
		Identity: id,
		Peers:    make(map[string]SharedSecret),
		Channels: make(map[string]ChannelKey),
	}
}

// PeerSecret looks up the shared secret for a peer by exchange-key fingerprint.
func (k *Keystore) PeerSecret(fp Fingerprint) (SharedSecret, bool) {
	s, ok := k.Peers[fp.String()]
	return s, ok
}

// SetPeerSecret records the shared secret negotiated with a peer.
func (k *Keystore) SetPeerSecret(fp Fingerprint, s SharedSecret) {
	if k.Peers == nil {
		k.Peers = make(map[string]SharedSecret)
	}
	k.Peers[fp.String()] = s
}

// ChannelKey looks up the key held for a channel.
func (k *Keystore) ChannelKey(ref ChannelRef) (ChannelKey, bool) {
	ck, ok := k.Channels[ref.String()]
	return ck, ok
}

// SetChannelKey records a channel key, replacing any previous key for the
// same channel.
func (k *Keystore) SetChannelKey(ck ChannelKey) {
	if k.Channels == nil {
		k.Channels = make(map[string]ChannelKey)
	}
	k.Channels[ck.Ref().String()] = ck
}
