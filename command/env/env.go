package env

import (
	"github.com/dogechain-lab/blockenv/command"
	"github.com/dogechain-lab/blockenv/helper/kvdb"
	"github.com/dogechain-lab/blockenv/helper/metrics"
	"github.com/dogechain-lab/blockenv/state/runtime"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

const metricsNamespace = "blockenv"

func GetCommand() *cobra.Command {
	envCmd := &cobra.Command{
		Use:     "env",
		Short:   "Assembles the execution environment of a block",
		Args:    cobra.NoArgs,
		PreRunE: runPreRun,
		Run:     runCommand,
	}

	setFlags(envCmd)

	return envCmd
}

func setFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&params.numberRaw, numberFlag, "0", "the block number")
	cmd.Flags().StringVar(&params.parentHashRaw, parentHashFlag, "", "the parent block hash")
	cmd.Flags().StringVar(&params.authorRaw, authorFlag, "", "the block author address")
	cmd.Flags().StringVar(&params.timestampRaw, timestampFlag, "0", "the block timestamp")
	cmd.Flags().StringVar(&params.difficultyRaw, difficultyFlag, "", "the block difficulty")
	cmd.Flags().StringVar(&params.gasLimitRaw, gasLimitFlag, "", "the block gas limit")
	cmd.Flags().StringVar(&params.baseFeeRaw, baseFeeFlag, "", "the block base fee, absent when empty")
	cmd.Flags().StringVar(&params.blobBaseFeeRaw, blobBaseFeeFlag, "", "the blob base fee (at most 128 bits)")
	cmd.Flags().StringVar(&params.mixHashRaw, mixHashFlag, "", "the block mix hash")

	cmd.Flags().StringVar(
		&params.dataDir,
		dataDirFlag,
		"",
		"a leveldb directory holding canonical hashes; ancestor hashes are derived from block numbers when empty",
	)

	cmd.Flags().BoolVar(
		&params.showHashes,
		hashesFlag,
		false,
		"list every ancestor hash",
	)

	cmd.Flags().BoolVar(
		&params.showMetrics,
		metricsFlag,
		false,
		"report the assembler metrics gathered while building",
	)
}

func runPreRun(_ *cobra.Command, _ []string) error {
	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) {
	outputter := command.InitializeOutputter(cmd)
	defer outputter.WriteOutput()

	result, err := buildEnv(command.NewLogger(cmd, "env"), params)
	if err != nil {
		outputter.SetError(err)

		return
	}

	outputter.SetCommandResult(result)
}

func buildEnv(logger hclog.Logger, p *envParams) (*EnvResult, error) {
	var source runtime.AncestorSource

	if p.dataDir != "" {
		db, err := kvdb.NewLevelDBBuilder(logger, p.dataDir).
			SetReadOnly(true).
			Build()
		if err != nil {
			return nil, err
		}

		defer db.Close()

		source = runtime.NewStorageAncestors(db, 0)
	}

	assemblerMetrics := runtime.NilMetrics()

	var registry *prometheus.Registry

	if p.showMetrics {
		registry = prometheus.NewRegistry()
		assemblerMetrics = runtime.GetPrometheusMetrics(registry, metricsNamespace)
	}

	assembler, err := runtime.NewAssembler(logger, source, 1, assemblerMetrics)
	if err != nil {
		return nil, err
	}

	envInfo, err := assembler.Build(p.header)
	if err != nil {
		return nil, err
	}

	result := newEnvResult(envInfo, p.showHashes)

	if registry != nil {
		if result.Metrics, err = metrics.Snapshot(registry); err != nil {
			return nil, err
		}
	}

	return result, nil
}
