package runtime

import (
	"errors"
	"strconv"
	"time"

	"github.com/dogechain-lab/blockenv/helper/hex"
	"github.com/dogechain-lab/blockenv/types"
	"github.com/hashicorp/go-hclog"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/atomic"
	"golang.org/x/sync/singleflight"
)

// DefaultWindowCacheSize is the number of hash windows kept by an Assembler
const DefaultWindowCacheSize = 64

var (
	errUnexpectedCacheValue = errors.New("unexpected hash window cache value")
)

// windowKey identifies a hash window. The parent hash tells sibling blocks
// of the same height apart.
type windowKey struct {
	number uint64
	parent types.Hash
}

func (k windowKey) String() string {
	return strconv.FormatUint(k.number, 10) + ":" + hex.EncodeToHex(k.parent[:])
}

// AssemblerStats is a snapshot of the assembler cache counters
type AssemblerStats struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Cached int    `json:"cached"`
}

// Assembler builds EnvInfo values and makes sure the hash window of a block
// is computed once, however many transactions or goroutines ask for it
type Assembler struct {
	logger  hclog.Logger
	metrics *Metrics
	source  AncestorSource

	windows *lru.Cache
	group   singleflight.Group

	hits   *atomic.Uint64
	misses *atomic.Uint64
}

// NewAssembler creates an assembler. A nil source selects the decimal
// derivation rule of DecimalLastHashes.
func NewAssembler(
	logger hclog.Logger,
	source AncestorSource,
	cacheSize int,
	metrics *Metrics,
) (*Assembler, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultWindowCacheSize
	}

	windows, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if metrics == nil {
		metrics = NilMetrics()
	}

	return &Assembler{
		logger:  logger.Named("envinfo"),
		metrics: metrics,
		source:  source,
		windows: windows,
		hits:    atomic.NewUint64(0),
		misses:  atomic.NewUint64(0),
	}, nil
}

// Build returns the environment of the block described by h. Every EnvInfo
// built for the same block shares one LastHashes.
func (a *Assembler) Build(h *EnvHeader) (*EnvInfo, error) {
	if h == nil {
		return nil, ErrNilHeader
	}

	if err := validateHeader(h); err != nil {
		return nil, err
	}

	lastHashes, err := a.lastHashes(windowKey{number: h.Number, parent: h.ParentHash})
	if err != nil {
		return nil, err
	}

	return newEnvInfo(h, lastHashes), nil
}

func (a *Assembler) lastHashes(key windowKey) (*LastHashes, error) {
	if lastHashes, ok := a.cached(key); ok {
		a.hits.Inc()
		a.metrics.LastHashesHitsInc()

		return lastHashes, nil
	}

	ran := false

	v, err, _ := a.group.Do(key.String(), func() (interface{}, error) {
		ran = true

		// a concurrent caller may have filled it in the meantime
		if lastHashes, ok := a.cached(key); ok {
			a.hits.Inc()
			a.metrics.LastHashesHitsInc()

			return lastHashes, nil
		}

		a.misses.Inc()
		a.metrics.LastHashesMissesInc()

		begin := time.Now()

		lastHashes, err := a.buildWindow(key)
		if err != nil {
			a.metrics.BuildFailuresInc()
			a.logger.Warn("failed to build hash window", "number", key.number, "err", err)

			return nil, err
		}

		a.metrics.BuildSecondsObserve(time.Since(begin).Seconds())

		a.windows.Add(key, lastHashes)
		a.metrics.SetCachedWindows(float64(a.windows.Len()))

		a.logger.Debug("hash window built",
			"number", key.number,
			"parent", key.parent,
			"size", lastHashes.Len(),
			"elapsed", time.Since(begin),
		)

		return lastHashes, nil
	})
	if err != nil {
		return nil, err
	}

	if !ran {
		// joined a build started by another caller
		a.hits.Inc()
		a.metrics.LastHashesHitsInc()
	}

	lastHashes, ok := v.(*LastHashes)
	if !ok {
		return nil, errUnexpectedCacheValue
	}

	return lastHashes, nil
}

func (a *Assembler) cached(key windowKey) (*LastHashes, bool) {
	v, ok := a.windows.Get(key)
	if !ok {
		return nil, false
	}

	lastHashes, ok := v.(*LastHashes)

	return lastHashes, ok
}

func (a *Assembler) buildWindow(key windowKey) (*LastHashes, error) {
	if a.source == nil {
		return DecimalLastHashes(key.number), nil
	}

	return AncestorLastHashes(key.number, key.parent, a.source)
}

// Purge drops every cached hash window, for use after a reorg
func (a *Assembler) Purge() {
	a.windows.Purge()
	a.metrics.SetCachedWindows(0)
}

// Stats returns the cache counters
func (a *Assembler) Stats() AssemblerStats {
	return AssemblerStats{
		Hits:   a.hits.Load(),
		Misses: a.misses.Load(),
		Cached: a.windows.Len(),
	}
}
