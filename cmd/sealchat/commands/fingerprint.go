package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the local exchange-key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", wire.Identity.Fingerprint(ks))
			return nil
		},
	}
}
