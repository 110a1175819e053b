package version

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dogechain-lab/blockenv/command"
	"github.com/dogechain-lab/blockenv/versioning"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionJSON(t *testing.T) {
	versioning.Version = "v1.2.3"

	root := &cobra.Command{Use: "blockenv"}
	command.RegisterJSONOutputFlag(root)
	root.AddCommand(GetCommand())

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetArgs([]string{"version", "--json"})
	require.NoError(t, root.Execute())

	var result VersionResult
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))

	assert.Equal(t, "v1.2.3", result.Version)
	assert.NotEmpty(t, result.GoVersion)
}
