package state

import (
	"errors"
	"fmt"

	"github.com/dogechain-lab/blockenv/chain"
	"github.com/dogechain-lab/blockenv/types"
)

var (
	ErrIntrinsicGasTooLow = errors.New("intrinsic gas too low")
)

// GasRequirement is the outcome of the pre-execution gas check of a
// transaction at a given block
type GasRequirement struct {
	// Intrinsic is the legacy intrinsic gas
	Intrinsic uint64
	// Floor is the EIP-7623 floor, zero when the rule is not active
	Floor uint64
	// Minimum is the gas limit the transaction must at least carry
	Minimum uint64
}

// MinimumGas selects the charging rules active at the block and returns the
// gas a transaction must supply before execution. The floor only applies once
// EIP-7623 is active, in which case the higher of both values is required.
func MinimumGas(params *chain.Params, number uint64, tx *types.Transaction) GasRequirement {
	schedule := params.ScheduleAt(number)

	req := GasRequirement{
		Intrinsic: TransactionGasRequired(tx, schedule),
	}
	req.Minimum = req.Intrinsic

	if params.Forks.IsPrague(number) {
		req.Floor = TransactionFloorDataGas(tx, schedule)

		if req.Floor > req.Minimum {
			req.Minimum = req.Floor
		}
	}

	return req
}

// CheckIntrinsicGas returns ErrIntrinsicGasTooLow if the transaction gas limit
// does not cover the minimum gas at the block
func CheckIntrinsicGas(params *chain.Params, number uint64, tx *types.Transaction) error {
	req := MinimumGas(params, number, tx)
	if tx.Gas < req.Minimum {
		return fmt.Errorf("%w: have %d, want %d (intrinsic %d, floor %d)",
			ErrIntrinsicGasTooLow, tx.Gas, req.Minimum, req.Intrinsic, req.Floor)
	}

	return nil
}
