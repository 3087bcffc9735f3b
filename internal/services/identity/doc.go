// Package identity creates and loads the local identity keystore.
package identity
