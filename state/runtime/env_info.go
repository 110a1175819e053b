package runtime

import (
	"errors"
	"fmt"

	"github.com/dogechain-lab/blockenv/types"
	"github.com/holiman/uint256"
)

// maxBlobBaseFeeBits bounds the blob base fee to 128 bits
const maxBlobBaseFeeBits = 128

var (
	ErrNilHeader           = errors.New("nil env header")
	ErrBlobBaseFeeTooLarge = errors.New("blob base fee exceeds 128 bits")
)

// EnvHeader carries the block header fields an EnvInfo is built from.
// Optional fields are nil when the block predates them.
type EnvHeader struct {
	Number     uint64
	ParentHash types.Hash
	Author     types.Address
	Timestamp  uint64
	Difficulty *uint256.Int
	GasLimit   *uint256.Int
	MixHash    types.Hash

	BaseFee     *uint256.Int
	BlobBaseFee *uint256.Int
}

// EnvInfo is the execution environment shared by every transaction of a
// block. Only GasUsed may change after it is built, and only by the caller.
type EnvInfo struct {
	Number     uint64
	Author     types.Address
	Timestamp  uint64
	Difficulty *uint256.Int
	GasLimit   *uint256.Int
	LastHashes *LastHashes
	GasUsed    *uint256.Int
	// BaseFee is nil before the fee market fork
	BaseFee     *uint256.Int
	MixHash     types.Hash
	BlobBaseFee *uint256.Int
}

// DefaultEnvInfo returns an environment with every field zeroed and an
// empty hash window
func DefaultEnvInfo() *EnvInfo {
	return &EnvInfo{
		Difficulty:  new(uint256.Int),
		GasLimit:    new(uint256.Int),
		LastHashes:  emptyLastHashes,
		GasUsed:     new(uint256.Int),
		BlobBaseFee: new(uint256.Int),
	}
}

// NewEnvInfo builds the environment of the block described by h, deriving
// the hash window with DecimalLastHashes
func NewEnvInfo(h *EnvHeader) (*EnvInfo, error) {
	if h == nil {
		return nil, ErrNilHeader
	}

	if err := validateHeader(h); err != nil {
		return nil, err
	}

	return newEnvInfo(h, DecimalLastHashes(h.Number)), nil
}

// NewEnvInfoWithAncestors builds the environment of the block described by
// h with the real canonical ancestor hashes provided by src. The header's
// parent must be the canonical block at Number-1.
func NewEnvInfoWithAncestors(h *EnvHeader, src AncestorSource) (*EnvInfo, error) {
	if h == nil {
		return nil, ErrNilHeader
	}

	if err := validateHeader(h); err != nil {
		return nil, err
	}

	lastHashes, err := AncestorLastHashes(h.Number, h.ParentHash, src)
	if err != nil {
		return nil, err
	}

	return newEnvInfo(h, lastHashes), nil
}

func validateHeader(h *EnvHeader) error {
	if h.BlobBaseFee != nil && h.BlobBaseFee.BitLen() > maxBlobBaseFeeBits {
		return fmt.Errorf("%w: %s", ErrBlobBaseFeeTooLarge, h.BlobBaseFee.Hex())
	}

	return nil
}

func newEnvInfo(h *EnvHeader, lastHashes *LastHashes) *EnvInfo {
	env := &EnvInfo{
		Number:      h.Number,
		Author:      h.Author,
		Timestamp:   h.Timestamp,
		Difficulty:  copyOrZero(h.Difficulty),
		GasLimit:    copyOrZero(h.GasLimit),
		LastHashes:  lastHashes,
		GasUsed:     new(uint256.Int),
		MixHash:     h.MixHash,
		BlobBaseFee: copyOrZero(h.BlobBaseFee),
	}

	if h.BaseFee != nil {
		env.BaseFee = new(uint256.Int).Set(h.BaseFee)
	}

	return env
}

func copyOrZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}

	return new(uint256.Int).Set(v)
}

// Copy returns a deep copy of the environment. The hash window is immutable
// and therefore shared rather than copied.
func (e *EnvInfo) Copy() *EnvInfo {
	cpy := *e

	cpy.Difficulty = copyOrZero(e.Difficulty)
	cpy.GasLimit = copyOrZero(e.GasLimit)
	cpy.GasUsed = copyOrZero(e.GasUsed)
	cpy.BlobBaseFee = copyOrZero(e.BlobBaseFee)

	if e.BaseFee != nil {
		cpy.BaseFee = new(uint256.Int).Set(e.BaseFee)
	}

	return &cpy
}

// HasBaseFee reports whether the block is past the fee market fork
func (e *EnvInfo) HasBaseFee() bool {
	return e.BaseFee != nil
}
