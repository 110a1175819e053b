package runtime

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dogechain-lab/blockenv/helper/keccak"
	"github.com/dogechain-lab/blockenv/types"
)

// MaxLastHashes is the BLOCKHASH lookback window
const MaxLastHashes = 256

var (
	ErrMissingAncestor    = errors.New("missing canonical ancestor hash")
	ErrNonCanonicalParent = errors.New("parent is not the canonical ancestor")
	ErrNilAncestorSource  = errors.New("nil ancestor source")
)

// LastHashes is the window of ancestor hashes visible to a block, most recent
// ancestor first. It is never mutated once built and may be shared by any
// number of readers.
type LastHashes struct {
	number uint64
	hashes []types.Hash
}

// emptyLastHashes backs DefaultEnvInfo and block 0
var emptyLastHashes = &LastHashes{}

func newLastHashes(number uint64, hashes []types.Hash) *LastHashes {
	if len(hashes) == 0 {
		return &LastHashes{number: number}
	}

	return &LastHashes{number: number, hashes: hashes}
}

// windowSize returns min(number, MaxLastHashes)
func windowSize(number uint64) int {
	if number < MaxLastHashes {
		return int(number)
	}

	return MaxLastHashes
}

// Number returns the block number the window was built for
func (l *LastHashes) Number() uint64 {
	if l == nil {
		return 0
	}

	return l.number
}

// Len returns the number of ancestor hashes
func (l *LastHashes) Len() int {
	if l == nil {
		return 0
	}

	return len(l.hashes)
}

// At returns the i-th entry, where 0 is the parent block. It panics when i is
// out of range, like a slice index.
func (l *LastHashes) At(i int) types.Hash {
	return l.hashes[i]
}

// Get returns the hash of an ancestor by its block number. Only the window
// of ancestors is visible: the block itself and anything older than the
// window report false.
func (l *LastHashes) Get(number uint64) (types.Hash, bool) {
	if l == nil || number >= l.number {
		return types.ZeroHash, false
	}

	distance := l.number - number
	if distance > uint64(len(l.hashes)) {
		return types.ZeroHash, false
	}

	return l.hashes[distance-1], true
}

// Slice returns a copy of the window
func (l *LastHashes) Slice() []types.Hash {
	out := make([]types.Hash, l.Len())
	if l != nil {
		copy(out, l.hashes)
	}

	return out
}

// DecimalLastHashes derives the window for a block at height number by
// hashing the decimal representation of each ancestor's block number. It is
// used when real ancestor hashes are not available, such as for state tests.
func DecimalLastHashes(number uint64) *LastHashes {
	size := windowSize(number)
	hashes := make([]types.Hash, size)

	hasher := keccak.DefaultKeccakPool.Get()
	defer keccak.DefaultKeccakPool.Put(hasher)

	var buf []byte

	for i := 1; i <= size; i++ {
		buf = strconv.AppendUint(buf[:0], number-uint64(i), 10)

		hasher.Reset()
		hasher.Write(buf)
		hasher.Sum(hashes[i-1][:0])
	}

	return newLastHashes(number, hashes)
}

// AncestorLastHashes collects the window for a block at height number from a
// canonical hash source. It fails on the first ancestor the source does not
// know. A non-zero parent must match the canonical hash at number-1.
func AncestorLastHashes(number uint64, parent types.Hash, src AncestorSource) (*LastHashes, error) {
	if src == nil {
		return nil, ErrNilAncestorSource
	}

	size := windowSize(number)
	hashes := make([]types.Hash, size)

	for i := 1; i <= size; i++ {
		ancestor := number - uint64(i)

		hash, ok := src.CanonicalHash(ancestor)
		if !ok {
			return nil, fmt.Errorf("%w: block %d", ErrMissingAncestor, ancestor)
		}

		hashes[i-1] = hash
	}

	if size > 0 && !parent.IsZero() && hashes[0] != parent {
		return nil, fmt.Errorf("%w: block %d parent %s, canonical %s",
			ErrNonCanonicalParent, number, parent, hashes[0])
	}

	return newLastHashes(number, hashes), nil
}
