package root

import (
	"fmt"
	"os"

	"github.com/dogechain-lab/blockenv/command"
	"github.com/dogechain-lab/blockenv/command/env"
	"github.com/dogechain-lab/blockenv/command/gas"
	"github.com/dogechain-lab/blockenv/command/version"
	"github.com/dogechain-lab/blockenv/command/withdrawal"
	"github.com/dogechain-lab/blockenv/versioning"
	"github.com/spf13/cobra"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:     "blockenv",
			Short:   "Blockenv computes transaction gas floors, withdrawal encodings and block execution environments",
			Version: versioning.Describe(),
		},
	}

	command.RegisterJSONOutputFlag(rootCommand.baseCmd)
	command.RegisterLogLevelFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		gas.GetCommand(),
		withdrawal.GetCommand(),
		env.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
