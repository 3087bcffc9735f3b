package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/domain"
)

// mode <none|os|pw>: change the persisted protection mode. The keystore on
// disk stays under its old protection until the next save.
func modeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mode <none|os|pw>",
		Short: "Change the keystore protection mode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := domain.StoreMode(args[0])
			if !m.Valid() {
				return fmt.Errorf("unknown store mode %q", args[0])
			}
			cfg := wire.Config
			cfg.Mode = m
			if err := cfg.Save(); err != nil {
				return err
			}
			fmt.Printf("Store mode set to %s; the keystore is re-encrypted on its next save.\n", m)
			return nil
		},
	}
}
