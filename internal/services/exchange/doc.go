// Package exchange produces our key-exchange offer and turns a peer's offer
// into a recorded shared secret.
package exchange
