package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// read <envelope>: open a received direct envelope.
func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <envelope>",
		Short: "Open a received direct envelope",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			from, plaintext, err := wire.Messages.OpenDirect(ks, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("from %s: %s\n", from, plaintext)
			return nil
		},
	}
}
