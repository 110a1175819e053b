package gas

import (
	"github.com/dogechain-lab/blockenv/chain"
	"github.com/dogechain-lab/blockenv/command"
	"github.com/dogechain-lab/blockenv/state"
	"github.com/spf13/cobra"
)

func GetCommand() *cobra.Command {
	gasCmd := &cobra.Command{
		Use:     "gas",
		Short:   "Computes the intrinsic and calldata floor gas of a transaction",
		Args:    cobra.NoArgs,
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	command.RegisterChainFlag(gasCmd)
	setFlags(gasCmd)

	return gasCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(
		&params.inputRaw,
		inputFlag,
		"",
		"the hex encoded transaction input",
	)

	cmd.Flags().BoolVar(
		&params.create,
		createFlag,
		false,
		"the transaction deploys a contract",
	)

	cmd.Flags().StringVar(
		&params.toRaw,
		toFlag,
		"",
		"the address the transaction calls",
	)

	cmd.Flags().StringVar(
		&params.numberRaw,
		numberFlag,
		"0",
		"the block number selecting the active rules",
	)

	cmd.Flags().StringVar(
		&params.gasRaw,
		gasFlag,
		"",
		"the transaction gas limit to check against the minimum",
	)
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	chainParams, err := command.GetChainParams(cmd)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(computeGas(chainParams, params))
}

func computeGas(chainParams *chain.Params, p *gasParams) *GasResult {
	tx := p.transaction()
	req := state.MinimumGas(chainParams, p.number, tx)

	result := &GasResult{
		Number:      p.number,
		Create:      tx.IsContractCreation(),
		DataLength:  len(tx.Input),
		Tokens:      state.DataTokens(tx.Input),
		Schedule:    chainParams.ScheduleAt(p.number),
		Intrinsic:   req.Intrinsic,
		Floor:       req.Floor,
		FloorActive: chainParams.Forks.IsPrague(p.number),
		Minimum:     req.Minimum,
	}

	if p.gas != nil {
		err := state.CheckIntrinsicGas(chainParams, p.number, tx)
		sufficient := err == nil
		result.Sufficient = &sufficient
	}

	return result
}
