// Package app wires application dependencies for the CLI.
//
// It loads the settings file, builds the secure store and keystore store,
// and constructs the high-level services, exposing them via the Wire struct
// for commands to use.
package app
