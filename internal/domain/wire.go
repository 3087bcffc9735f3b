package domain

// Wire structures exchanged with peers. All binary fields are base64url
// (unpadded) strings so that tokens survive JSON and line-based transports.

// OfferWire is the signed key-exchange offer {v, idPub, encPub, sig}.
// The signature covers encPub alone for version >= 2 and idPub||encPub for
// version 1; the variant is selected by V, never inferred.
type OfferWire struct {
	V      int    `json:"v"`
	IDPub  string `json:"idPub"`
	EncPub string `json:"encPub"`
	Sig    string `json:"sig"`
}

// DirectEnvelopeWire is a sealed direct message {v, from, nonce, cipher}.
// From carries the sender's exchange public key so the recipient can select
// the matching shared secret.
type DirectEnvelopeWire struct {
	V      int    `json:"v"`
	From   string `json:"from"`
	Nonce  string `json:"nonce"`
	Cipher string `json:"cipher"`
}

// ChannelEnvelopeWire is a sealed channel message {v, nonce, cipher}.
type ChannelEnvelopeWire struct {
	V      int    `json:"v"`
	Nonce  string `json:"nonce"`
	Cipher string `json:"cipher"`
}

// ChannelDescriptorWire distributes a channel key. It is never transmitted in
// the clear: the caller seals it inside a direct envelope first.
type ChannelDescriptorWire struct {
	V         int    `json:"v"`
	Channel   string `json:"channel"`
	Network   string `json:"network"`
	Key       string `json:"key"`
	CreatedAt int64  `json:"createdAt"`
}
