package withdrawal

import (
	"github.com/dogechain-lab/blockenv/command/withdrawal/decode"
	"github.com/dogechain-lab/blockenv/command/withdrawal/encode"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	withdrawalCmd := &cobra.Command{
		Use:   "withdrawal",
		Short: "Top level command for encoding and decoding withdrawal records",
	}

	registerSubcommands(withdrawalCmd)

	return withdrawalCmd
}

func registerSubcommands(baseCmd *cobra.Command) {
	baseCmd.AddCommand(
		encode.GetCommand(),
		decode.GetCommand(),
	)
}
