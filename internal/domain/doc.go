// Package domain defines the core types shared across sealchat.
//
// It holds fixed-size key types, the keystore that owns all session key
// material, the wire structures exchanged with peers, the error sentinels
// returned at operation boundaries, and the interfaces implemented by the
// storage layer. Nothing in this package performs cryptography.
package domain
