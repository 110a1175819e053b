package state

import (
	"github.com/dogechain-lab/blockenv/chain"
	"github.com/dogechain-lab/blockenv/types"
)

// EIP-7623 protocol constants, fixed by the EIP rather than the schedule
const (
	// StandardTokenCost is the token weight of a non-zero payload byte
	StandardTokenCost = 4
	// TotalCostFloorPerToken is the floor gas charged per payload token
	TotalCostFloorPerToken = 10
)

// GasRequired returns the legacy intrinsic gas of a transaction: the base
// cost of its action plus the per byte payload cost. Overflow is not checked,
// the payload size is bounded upstream.
func GasRequired(action types.Action, data []byte, schedule *chain.Schedule) uint64 {
	cost := schedule.TxGas
	if action == nil || action.IsCreate() {
		cost = schedule.TxCreateGas
	}

	for _, b := range data {
		if b == 0 {
			cost += schedule.TxDataZeroGas
		} else {
			cost += schedule.TxDataNonZeroGas
		}
	}

	return cost
}

// DataTokens returns the EIP-7623 token count of a payload
func DataTokens(data []byte) uint64 {
	z := types.CountZeroBytes(data)
	nz := uint64(len(data)) - z

	return nz*StandardTokenCost + z
}

// GasRequiredFor7623 returns the EIP-7623 floor data gas of a transaction.
// The action does not take part in the formula, creations and calls pay the
// same floor.
func GasRequiredFor7623(_ types.Action, data []byte, schedule *chain.Schedule) uint64 {
	return schedule.TxGas + DataTokens(data)*TotalCostFloorPerToken
}

// TransactionGasRequired is GasRequired applied to a transaction
func TransactionGasRequired(tx *types.Transaction, schedule *chain.Schedule) uint64 {
	return GasRequired(tx.Action, tx.Input, schedule)
}

// TransactionFloorDataGas is GasRequiredFor7623 applied to a transaction
func TransactionFloorDataGas(tx *types.Transaction, schedule *chain.Schedule) uint64 {
	return GasRequiredFor7623(tx.Action, tx.Input, schedule)
}
