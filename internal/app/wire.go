package app

import (
	"sealchat/internal/domain"
	"sealchat/internal/services/channel"
	"sealchat/internal/services/exchange"
	"sealchat/internal/services/identity"
	"sealchat/internal/services/message"
	"sealchat/internal/store"
)

// Wire bundles the stores and services for the CLI.
type Wire struct {
	Config   Config
	Keystore domain.KeystoreStore
	Identity *identity.Service
	Exchange *exchange.Service
	Messages *message.Service
	Channels *channel.Service
}

// NewWire constructs the dependency graph from cfg. protector may be nil;
// platform-mode store operations then fail with their sentinel.
func NewWire(cfg Config, protector domain.PlatformProtector) *Wire {
	sec := store.NewSecureStore(protector)
	ksStore := store.NewKeystoreFileStore(cfg.Home, sec)

	msgSvc := message.New(cfg.MaxPlaintext)

	return &Wire{
		Config:   cfg,
		Keystore: ksStore,
		Identity: identity.New(ksStore),
		Exchange: exchange.New(),
		Messages: msgSvc,
		Channels: channel.New(msgSvc),
	}
}
