// Package message seals and opens direct and channel message envelopes using
// keys held in the keystore.
package message
