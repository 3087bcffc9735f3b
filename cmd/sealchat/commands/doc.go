// Package commands defines the sealchat CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init         Create the local identity keystore
//   - fingerprint  Print the local exchange-key fingerprint
//   - offer        Print our signed key-exchange offer
//   - accept       Derive a shared secret from a peer's offer
//   - send         Seal a direct message for a peer
//   - read         Open a received direct envelope
//   - channel      Manage channel keys and channel messages
//   - mode         Change the keystore protection mode
//
// # Implementation
//
// Every command operates on text tokens: offers, envelopes and descriptors
// go in and out as single lines, and delivery is entirely up to the user's
// transport. The root command loads settings and builds the dependency
// graph before any subcommand runs.
package commands
