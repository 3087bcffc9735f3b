package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sealchat/internal/app"
	"sealchat/internal/domain"
)

var (
	home     string
	password string
	modeFlag string

	wire *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sealchat",
		Short: "End-to-end encryption for direct and channel chat messages",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".sealchat")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			cfg, err := app.LoadConfig(home)
			if err != nil {
				return err
			}
			if modeFlag != "" {
				m := domain.StoreMode(modeFlag)
				if !m.Valid() {
					return fmt.Errorf("unknown store mode %q", modeFlag)
				}
				cfg.Mode = m
			}
			wire = app.NewWire(cfg, nil)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.sealchat)")
	root.PersistentFlags().StringVarP(&password, "password", "p", "", "keystore password (pw mode)")
	root.PersistentFlags().StringVar(&modeFlag, "mode", "", "override store mode for this call (none|os|pw)")

	root.AddCommand(
		initCmd(),
		fingerprintCmd(),
		offerCmd(),
		acceptCmd(),
		sendCmd(),
		readCmd(),
		channelCmd(),
		modeCmd(),
	)
	return root.Execute()
}

// loadKeystore decrypts the keystore under the active mode.
func loadKeystore() (*domain.Keystore, error) {
	return wire.Identity.Load(wire.Config.Mode, password)
}

// saveKeystore persists the keystore after a mutation.
func saveKeystore(ks *domain.Keystore) error {
	return wire.Identity.Save(wire.Config.Mode, password, ks)
}
