package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/protocol/offer"
)

// offer: print our signed key-exchange offer as a single token.
func offerCmd() *cobra.Command {
	var legacy bool

	cmd := &cobra.Command{
		Use:   "offer",
		Short: "Print our signed key-exchange offer",
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			version := offer.VersionCurrent
			if legacy {
				version = offer.VersionLegacy
			}
			token, err := wire.Exchange.OurOffer(ks, version)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
	cmd.Flags().BoolVar(&legacy, "legacy", false, "emit the version-1 signature form")
	return cmd
}
