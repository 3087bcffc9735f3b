package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealchat/internal/domain"
)

// channel: manage channel keys and channel messages.
func channelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "channel",
		Short: "Manage channel keys and channel messages",
	}
	cmd.AddCommand(
		channelNewCmd(),
		channelExportCmd(),
		channelImportCmd(),
		channelSendCmd(),
		channelReadCmd(),
	)
	return cmd
}

func channelNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new <channel> <network>",
		Short: "Generate a fresh channel key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			ck, err := wire.Channels.Generate(ks, args[0], args[1])
			if err != nil {
				return err
			}
			if err := saveKeystore(ks); err != nil {
				return err
			}
			fmt.Printf("Channel key created for %s\n", ck.Ref())
			return nil
		},
	}
}

func channelExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <channel> <network> <peer-fingerprint>",
		Short: "Seal the channel key for a peer as a direct envelope",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			ref := domain.ChannelRef{Channel: args[0], Network: args[1]}
			token, err := wire.Channels.Export(ks, ref, domain.Fingerprint(args[2]))
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}

func channelImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <envelope>",
		Short: "Import a channel key received from a peer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			ck, from, err := wire.Channels.Import(ks, args[0])
			if err != nil {
				return err
			}
			if err := saveKeystore(ks); err != nil {
				return err
			}
			fmt.Printf("Channel key for %s imported from peer %s\n", ck.Ref(), from)
			return nil
		},
	}
}

func channelSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <channel> <network> <message>",
		Short: "Seal a channel message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			ref := domain.ChannelRef{Channel: args[0], Network: args[1]}
			token, err := wire.Messages.SealChannel(ks, ref, []byte(args[2]))
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}
}

func channelReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <channel> <network> <envelope>",
		Short: "Open a received channel envelope",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := loadKeystore()
			if err != nil {
				return err
			}
			ref := domain.ChannelRef{Channel: args[0], Network: args[1]}
			plaintext, err := wire.Messages.OpenChannel(ks, ref, args[2])
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", plaintext)
			return nil
		},
	}
}
