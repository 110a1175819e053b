package encode

import (
	"github.com/dogechain-lab/blockenv/command"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	encodeCmd := &cobra.Command{
		Use:     "encode",
		Short:   "RLP encodes a withdrawal record, or a list of records read from a JSON file",
		Args:    cobra.NoArgs,
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(encodeCmd)

	return encodeCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.indexRaw,
		indexFlag,
		"0",
		"the withdrawal index",
	)

	cmd.Flags().StringVar(
		&params.validatorRaw,
		validatorFlag,
		"0",
		"the validator index",
	)

	cmd.Flags().StringVar(
		&params.addressRaw,
		addressFlag,
		"",
		"the 20 byte recipient address",
	)

	cmd.Flags().StringVar(
		&params.amountRaw,
		amountFlag,
		"0",
		"the withdrawn amount in Gwei",
	)

	cmd.Flags().StringVar(
		&params.file,
		fileFlag,
		"",
		"a JSON file holding a list of withdrawals to encode as a list",
	)
}

func runPreRun(cmd *cobra.Command, _ []string) error {
	fieldsSet := false

	for _, name := range []string{indexFlag, validatorFlag, addressFlag, amountFlag} {
		if cmd.Flags().Changed(name) {
			fieldsSet = true
		}
	}

	return params.validateFlags(fieldsSet)
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	outputter.SetCommandResult(params.encode())
}
