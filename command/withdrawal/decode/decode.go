package decode

import (
	"github.com/dogechain-lab/blockenv/command"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	decodeCmd := &cobra.Command{
		Use:     "decode [rlp]",
		Short:   "Decodes an RLP encoded withdrawal record, or a list of records",
		Args:    cobra.ExactArgs(1),
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	decodeCmd.Flags().BoolVar(
		&params.list,
		listFlag,
		false,
		"decode the input as a list of withdrawals",
	)

	return decodeCmd
}

func runPreRun(_ *cobra.Command, args []string) error {
	return params.initRawParams(args)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := params.decode()
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}
