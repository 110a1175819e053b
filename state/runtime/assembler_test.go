package runtime

import (
	"sync"
	"testing"

	"github.com/dogechain-lab/blockenv/helper/metrics"
	"github.com/dogechain-lab/blockenv/types"
	"github.com/hashicorp/go-hclog"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nullLogger() hclog.Logger {
	return hclog.NewNullLogger()
}

func maxUint256() *uint256.Int {
	return new(uint256.Int).SetAllOne()
}

func newTestAssembler(t *testing.T, src AncestorSource, size int) *Assembler {
	t.Helper()

	assembler, err := NewAssembler(nullLogger(), src, size, NilMetrics())
	require.NoError(t, err)

	return assembler
}

func TestAssembler_SharesLastHashesPerBlock(t *testing.T) {
	t.Parallel()

	assembler := newTestAssembler(t, nil, 4)

	first, err := assembler.Build(testHeader(300))
	require.NoError(t, err)

	second, err := assembler.Build(testHeader(300))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Same(t, first.LastHashes, second.LastHashes)
	assert.Equal(t, DecimalLastHashes(300).Slice(), first.LastHashes.Slice())

	stats := assembler.Stats()
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, 1, stats.Cached)
}

func TestAssembler_SiblingBlocks(t *testing.T) {
	t.Parallel()

	assembler := newTestAssembler(t, nil, 4)

	a := testHeader(10)
	b := testHeader(10)
	b.ParentHash = types.StringToHash("0x0b")

	envA, err := assembler.Build(a)
	require.NoError(t, err)

	envB, err := assembler.Build(b)
	require.NoError(t, err)

	assert.NotSame(t, envA.LastHashes, envB.LastHashes)
	assert.Equal(t, uint64(2), assembler.Stats().Misses)
}

func TestAssembler_Concurrent(t *testing.T) {
	t.Parallel()

	assembler := newTestAssembler(t, nil, 4)

	const workers = 32

	var (
		wg      sync.WaitGroup
		results = make([]*EnvInfo, workers)
		errs    = make([]error, workers)
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			results[i], errs[i] = assembler.Build(testHeader(1_000))
		}(i)
	}

	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Same(t, results[0].LastHashes, results[i].LastHashes)
	}

	stats := assembler.Stats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(workers-1), stats.Hits)
}

func TestAssembler_Eviction(t *testing.T) {
	t.Parallel()

	assembler := newTestAssembler(t, nil, 2)

	for _, number := range []uint64{1, 2, 3} {
		_, err := assembler.Build(testHeader(number))
		require.NoError(t, err)
	}

	assert.Equal(t, 2, assembler.Stats().Cached)

	// block 1 was evicted and is rebuilt
	_, err := assembler.Build(testHeader(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(4), assembler.Stats().Misses)

	assembler.Purge()
	assert.Equal(t, 0, assembler.Stats().Cached)
}

func TestAssembler_WithAncestorSource(t *testing.T) {
	t.Parallel()

	src := chainSource(50)
	assembler := newTestAssembler(t, src, 0)

	env, err := assembler.Build(childHeader(50, src))
	require.NoError(t, err)
	assert.Equal(t, src[49], env.LastHashes.At(0))

	// failures are not cached
	_, err = assembler.Build(testHeader(60))
	assert.ErrorIs(t, err, ErrMissingAncestor)

	_, err = assembler.Build(testHeader(60))
	assert.ErrorIs(t, err, ErrMissingAncestor)
	assert.Equal(t, 1, assembler.Stats().Cached)
	assert.Equal(t, uint64(3), assembler.Stats().Misses)
}

func TestAssembler_SiblingOffCanonicalChain(t *testing.T) {
	t.Parallel()

	src := chainSource(10)
	assembler := newTestAssembler(t, src, 0)

	env, err := assembler.Build(childHeader(10, src))
	require.NoError(t, err)
	assert.Equal(t, src[9], env.LastHashes.At(0))

	sibling := testHeader(10)
	sibling.ParentHash = types.StringToHash("0xbeef")

	for i := 0; i < 2; i++ {
		_, err = assembler.Build(sibling)
		assert.ErrorIs(t, err, ErrNonCanonicalParent)
	}

	stats := assembler.Stats()
	assert.Equal(t, 1, stats.Cached)
	assert.Equal(t, uint64(3), stats.Misses)
	assert.Equal(t, uint64(0), stats.Hits)
}

func TestAssembler_InvalidHeader(t *testing.T) {
	t.Parallel()

	assembler := newTestAssembler(t, nil, 0)

	_, err := assembler.Build(nil)
	assert.ErrorIs(t, err, ErrNilHeader)

	h := testHeader(1)
	h.BlobBaseFee = maxUint256()

	_, err = assembler.Build(h)
	assert.ErrorIs(t, err, ErrBlobBaseFeeTooLarge)
	assert.Equal(t, uint64(0), assembler.Stats().Misses)
}

func TestAssembler_Metrics(t *testing.T) {
	t.Parallel()

	m := newMetrics("test", nil)

	assembler, err := NewAssembler(nil, mapSource{}, 0, m)
	require.NoError(t, err)

	_, err = assembler.Build(testHeader(0))
	require.NoError(t, err)

	_, err = assembler.Build(testHeader(0))
	require.NoError(t, err)

	_, err = assembler.Build(testHeader(1))
	require.Error(t, err)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.lastHashesHits))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.lastHashesMisses))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.buildFailures))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cachedWindows))
}

func TestGetPrometheusMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := GetPrometheusMetrics(reg, "blockenv", "chain", "test")

	assembler, err := NewAssembler(nil, nil, 0, m)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = assembler.Build(testHeader(10))
		require.NoError(t, err)
	}

	values, err := metrics.Snapshot(reg)
	require.NoError(t, err)

	assert.Equal(t, float64(1), values["blockenv_envinfo_last_hashes_hits"])
	assert.Equal(t, float64(1), values["blockenv_envinfo_last_hashes_misses"])
	assert.Equal(t, float64(0), values["blockenv_envinfo_build_failures"])
	assert.Equal(t, float64(1), values["blockenv_envinfo_build_seconds_count"])
	assert.Equal(t, float64(1), values["blockenv_envinfo_cached_windows"])

	// a second set on the same registry collides
	assert.Panics(t, func() {
		GetPrometheusMetrics(reg, "blockenv", "chain", "test")
	})
}
