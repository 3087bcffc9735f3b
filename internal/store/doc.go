// Package store provides encrypted-at-rest persistence for the keystore.
//
// SecureStore turns plaintext into a single text token under one of three
// protection modes: none (persistence disabled), platform (an OS per-user
// protection service), or password (argon2id-derived key). KeystoreFileStore
// writes the resulting token to disk atomically and serialises its own
// calls; concurrent access to the same store location across processes is
// the host's responsibility.
package store
