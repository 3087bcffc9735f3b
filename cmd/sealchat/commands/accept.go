package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// accept <offer>: verify a peer's offer and record the shared secret.
func acceptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accept <offer>",
		Short: "Derive and store a shared secret from a peer's offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			fp, err := wire.Exchange.Accept(ks, args[0])
			if err != nil {
				return err
			}
			if err := saveKeystore(ks); err != nil {
				return err
			}
			fmt.Printf("Shared secret established with peer %s\n", fp)
			return nil
		},
	}
}
