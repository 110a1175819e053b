package env

import (
	"testing"

	"github.com/dogechain-lab/blockenv/helper/kvdb"
	"github.com/dogechain-lab/blockenv/helper/rawdb"
	"github.com/dogechain-lab/blockenv/state/runtime"
	"github.com/dogechain-lab/blockenv/types"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnv_Decimal(t *testing.T) {
	p := &envParams{
		numberRaw:    "300",
		timestampRaw: "1100",
		authorRaw:    "0x000000f00000000f000000000000f00000000f00",
		gasLimitRaw:  "40000",
		baseFeeRaw:   "0x07",
	}
	require.NoError(t, p.validateFlags())

	result, err := buildEnv(hclog.NewNullLogger(), p)
	require.NoError(t, err)

	assert.Equal(t, uint64(300), result.Number)
	assert.Equal(t, "40000", result.GasLimit)
	assert.Equal(t, "0", result.Difficulty)
	assert.Equal(t, "0", result.GasUsed)
	require.NotNil(t, result.BaseFee)
	assert.Equal(t, "7", *result.BaseFee)
	assert.Equal(t, 256, result.LastHashesCount)
	assert.Nil(t, result.LastHashes)

	expected := runtime.DecimalLastHashes(300)
	assert.Equal(t, expected.At(0), *result.Parent)
	assert.Equal(t, expected.At(255), *result.Oldest)

	assert.Contains(t, result.GetOutput(), "Last hashes")
}

func TestBuildEnv_Genesis(t *testing.T) {
	p := &envParams{numberRaw: "0", timestampRaw: "0", showHashes: true}
	require.NoError(t, p.validateFlags())

	result, err := buildEnv(hclog.NewNullLogger(), p)
	require.NoError(t, err)

	assert.Equal(t, 0, result.LastHashesCount)
	assert.Nil(t, result.BaseFee)
	assert.Nil(t, result.Parent)
	assert.Empty(t, result.LastHashes)
}

func TestBuildEnv_DataDir(t *testing.T) {
	dir := t.TempDir()

	db, err := kvdb.NewLevelDBBuilder(hclog.NewNullLogger(), dir).Build()
	require.NoError(t, err)

	hashes := []types.Hash{
		types.StringToHash("0x0a"),
		types.StringToHash("0x0b"),
		types.StringToHash("0x0c"),
	}
	require.NoError(t, rawdb.WriteCanonicalChain(db, 0, hashes))
	require.NoError(t, db.Close())

	p := &envParams{numberRaw: "3", timestampRaw: "0", dataDir: dir, showHashes: true}
	require.NoError(t, p.validateFlags())

	result, err := buildEnv(hclog.NewNullLogger(), p)
	require.NoError(t, err)
	assert.Equal(t, []types.Hash{hashes[2], hashes[1], hashes[0]}, result.LastHashes)

	p = &envParams{numberRaw: "3", timestampRaw: "0", dataDir: dir, parentHashRaw: hashes[2].String()}
	require.NoError(t, p.validateFlags())

	_, err = buildEnv(hclog.NewNullLogger(), p)
	require.NoError(t, err)

	p = &envParams{numberRaw: "3", timestampRaw: "0", dataDir: dir, parentHashRaw: hashes[1].String()}
	require.NoError(t, p.validateFlags())

	_, err = buildEnv(hclog.NewNullLogger(), p)
	assert.ErrorIs(t, err, runtime.ErrNonCanonicalParent)

	p = &envParams{numberRaw: "4", timestampRaw: "0", dataDir: dir}
	require.NoError(t, p.validateFlags())

	_, err = buildEnv(hclog.NewNullLogger(), p)
	assert.ErrorIs(t, err, runtime.ErrMissingAncestor)
}

func TestValidateFlags(t *testing.T) {
	cases := []envParams{
		{numberRaw: "x", timestampRaw: "0"},
		{numberRaw: "0", timestampRaw: "0", authorRaw: "0x01"},
		{numberRaw: "0", timestampRaw: "0", mixHashRaw: "0x01"},
		{numberRaw: "0", timestampRaw: "0", difficultyRaw: "-1"},
	}

	for _, c := range cases {
		p := c
		assert.Error(t, p.validateFlags())
	}
}

func TestBuildEnv_BlobBaseFeeTooLarge(t *testing.T) {
	p := &envParams{
		numberRaw:      "1",
		timestampRaw:   "0",
		blobBaseFeeRaw: "0x100000000000000000000000000000000",
	}
	require.NoError(t, p.validateFlags())

	_, err := buildEnv(hclog.NewNullLogger(), p)
	assert.ErrorIs(t, err, runtime.ErrBlobBaseFeeTooLarge)
}

func TestBuildEnv_Metrics(t *testing.T) {
	p := &envParams{numberRaw: "10", timestampRaw: "0"}
	require.NoError(t, p.validateFlags())

	result, err := buildEnv(hclog.NewNullLogger(), p)
	require.NoError(t, err)
	assert.Nil(t, result.Metrics)

	p = &envParams{numberRaw: "10", timestampRaw: "0", showMetrics: true}
	require.NoError(t, p.validateFlags())

	// every run gets its own registry
	for i := 0; i < 2; i++ {
		result, err = buildEnv(hclog.NewNullLogger(), p)
		require.NoError(t, err)

		assert.Equal(t, float64(1), result.Metrics["blockenv_envinfo_last_hashes_misses"])
		assert.Equal(t, float64(0), result.Metrics["blockenv_envinfo_last_hashes_hits"])
		assert.Equal(t, float64(1), result.Metrics["blockenv_envinfo_cached_windows"])
	}

	output := result.GetOutput()
	assert.Contains(t, output, "[METRICS]")
	assert.Contains(t, output, "blockenv_envinfo_last_hashes_misses")
}
