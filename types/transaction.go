package types

import (
	"math/big"
)

// Action is the target of a transaction: either a contract creation or a
// call to an existing address. The set of variants is closed.
type Action interface {
	// IsCreate reports whether the action deploys a new contract
	IsCreate() bool
	// To returns the call target, false for contract creation
	To() (Address, bool)

	isAction()
}

type createAction struct{}

func (createAction) IsCreate() bool      { return true }
func (createAction) To() (Address, bool) { return ZeroAddress, false }
func (createAction) isAction()           {}
func (createAction) String() string      { return "create" }

type callAction struct {
	to Address
}

func (c callAction) IsCreate() bool      { return false }
func (c callAction) To() (Address, bool) { return c.to, true }
func (c callAction) isAction()           {}
func (c callAction) String() string      { return "call(" + c.to.String() + ")" }

// CreateAction returns the contract creation action
func CreateAction() Action {
	return createAction{}
}

// CallAction returns an action calling the given address
func CallAction(to Address) Action {
	return callAction{to: to}
}

// Transaction carries the fields the pre-execution stage reads. It is never
// mutated once handed over.
type Transaction struct {
	Nonce    uint64
	GasPrice *big.Int
	Gas      uint64
	Action   Action
	Value    *big.Int
	Input    []byte
}

// IsContractCreation reports whether the transaction deploys a contract. A
// transaction without an action is treated as a creation.
func (t *Transaction) IsContractCreation() bool {
	return t.Action == nil || t.Action.IsCreate()
}

// Copy returns a deep copy
func (t *Transaction) Copy() *Transaction {
	tt := &Transaction{
		Nonce:  t.Nonce,
		Gas:    t.Gas,
		Action: t.Action,
	}

	tt.GasPrice = new(big.Int)
	if t.GasPrice != nil {
		tt.GasPrice.Set(t.GasPrice)
	}

	tt.Value = new(big.Int)
	if t.Value != nil {
		tt.Value.Set(t.Value)
	}

	tt.Input = CopyBytes(t.Input)

	return tt
}

// Cost returns gas * gasPrice + value
func (t *Transaction) Cost() *big.Int {
	total := new(big.Int)
	if t.GasPrice != nil {
		total.Mul(t.GasPrice, new(big.Int).SetUint64(t.Gas))
	}

	if t.Value != nil {
		total.Add(total, t.Value)
	}

	return total
}

func (t *Transaction) ExceedsBlockGasLimit(blockGasLimit uint64) bool {
	return t.Gas > blockGasLimit
}
