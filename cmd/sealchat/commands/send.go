package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/domain"
)

// send <peer> <message>: seal a direct message and print the envelope token.
func sendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <peer-fingerprint> <message>",
		Short: "Seal a direct message for a peer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			token, err := wire.Messages.SealDirect(ks, domain.Fingerprint(args[0]), []byte(args[1]))
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}
