package command

import (
	"github.com/dogechain-lab/blockenv/chain"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterLogLevelFlag registers the --log-level setting for all child commands
func RegisterLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		LogLevelFlag,
		DefaultLogLevel,
		"the log level for console output",
	)
}

// RegisterChainFlag registers the --chain params file setting
func RegisterChainFlag(cmd *cobra.Command) {
	cmd.Flags().String(
		ChainFlag,
		"",
		"the chain params file (json or hcl), mainnet params when empty",
	)
}

// NewLogger builds a named console logger from the --log-level flag
func NewLogger(cmd *cobra.Command, name string) hclog.Logger {
	level := DefaultLogLevel

	if flag := cmd.Flag(LogLevelFlag); flag != nil {
		level = flag.Value.String()
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  hclog.LevelFromString(level),
		Output: cmd.ErrOrStderr(),
	})
}

// GetChainParams loads the params file given by --chain, falling back to
// the mainnet params
func GetChainParams(cmd *cobra.Command) (*chain.Params, error) {
	path := ""

	if flag := cmd.Flag(ChainFlag); flag != nil {
		path = flag.Value.String()
	}

	if path == "" {
		return chain.MainnetParams, nil
	}

	return chain.ImportFromFile(path)
}
