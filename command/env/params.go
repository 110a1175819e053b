package env

import (
	"fmt"

	"github.com/dogechain-lab/blockenv/state/runtime"
	"github.com/dogechain-lab/blockenv/types"
)

const (
	numberFlag      = "number"
	parentHashFlag  = "parent-hash"
	authorFlag      = "author"
	timestampFlag   = "timestamp"
	difficultyFlag  = "difficulty"
	gasLimitFlag    = "gas-limit"
	baseFeeFlag     = "base-fee"
	blobBaseFeeFlag = "blob-base-fee"
	mixHashFlag     = "mix-hash"
	dataDirFlag     = "data-dir"
	hashesFlag      = "hashes"
	metricsFlag     = "metrics"
)

var (
	params = &envParams{}
)

type envParams struct {
	numberRaw      string
	parentHashRaw  string
	authorRaw      string
	timestampRaw   string
	difficultyRaw  string
	gasLimitRaw    string
	baseFeeRaw     string
	blobBaseFeeRaw string
	mixHashRaw     string

	dataDir     string
	showHashes  bool
	showMetrics bool

	header *runtime.EnvHeader
}

func optional(raw string) *string {
	if raw == "" {
		return nil
	}

	return &raw
}

func parseHashFlag(name, raw string) (types.Hash, error) {
	if raw == "" {
		return types.ZeroHash, nil
	}

	hash, err := types.ParseHash(raw)
	if err != nil {
		return types.ZeroHash, fmt.Errorf("invalid %s: %w", name, err)
	}

	return hash, nil
}

func (p *envParams) validateFlags() error {
	var (
		h   = &runtime.EnvHeader{}
		err error
	)

	if h.Number, err = types.ParseUint64orHex(&p.numberRaw); err != nil {
		return fmt.Errorf("invalid %s: %w", numberFlag, err)
	}

	if h.Timestamp, err = types.ParseUint64orHex(&p.timestampRaw); err != nil {
		return fmt.Errorf("invalid %s: %w", timestampFlag, err)
	}

	if p.authorRaw != "" {
		if h.Author, err = types.ParseAddress(p.authorRaw); err != nil {
			return fmt.Errorf("invalid %s: %w", authorFlag, err)
		}
	}

	if h.ParentHash, err = parseHashFlag(parentHashFlag, p.parentHashRaw); err != nil {
		return err
	}

	if h.MixHash, err = parseHashFlag(mixHashFlag, p.mixHashRaw); err != nil {
		return err
	}

	if h.Difficulty, err = types.ParseUint256orHex(optional(p.difficultyRaw)); err != nil {
		return fmt.Errorf("invalid %s: %w", difficultyFlag, err)
	}

	if h.GasLimit, err = types.ParseUint256orHex(optional(p.gasLimitRaw)); err != nil {
		return fmt.Errorf("invalid %s: %w", gasLimitFlag, err)
	}

	if h.BaseFee, err = types.ParseUint256orHex(optional(p.baseFeeRaw)); err != nil {
		return fmt.Errorf("invalid %s: %w", baseFeeFlag, err)
	}

	if h.BlobBaseFee, err = types.ParseUint256orHex(optional(p.blobBaseFeeRaw)); err != nil {
		return fmt.Errorf("invalid %s: %w", blobBaseFeeFlag, err)
	}

	p.header = h

	return nil
}
