package types

import (
	"fmt"

	"github.com/dogechain-lab/blockenv/helper/keccak"
)

// Withdrawal is a validator withdrawal credited to an execution layer
// account. Amount is denominated in Gwei.
type Withdrawal struct {
	Index     uint64  `json:"index"`
	Validator uint64  `json:"validatorIndex"`
	Address   Address `json:"address"`
	Amount    uint64  `json:"amount"`
}

// Copy returns a copy of the withdrawal
func (w *Withdrawal) Copy() *Withdrawal {
	ww := *w

	return &ww
}

func (w *Withdrawal) String() string {
	return fmt.Sprintf("withdrawal(index=%d validator=%d address=%s amount=%d)",
		w.Index, w.Validator, w.Address, w.Amount)
}

// Withdrawals is an ordered list of withdrawals as carried in a block body
type Withdrawals []*Withdrawal

// Copy returns a deep copy of the list
func (ws Withdrawals) Copy() Withdrawals {
	if ws == nil {
		return nil
	}

	cpy := make(Withdrawals, len(ws))
	for i, w := range ws {
		cpy[i] = w.Copy()
	}

	return cpy
}

// WithdrawalsHash returns the keccak256 of the list encoding
func WithdrawalsHash(ws Withdrawals) Hash {
	return BytesToHash(keccak.Keccak256(nil, ws.MarshalRLPTo(nil)))
}
