package chain

// Schedule is the table of gas constants the pre-execution stage charges
// against. A schedule is selected per block by the caller and then shared
// read-only by every calculation in that block.
type Schedule struct {
	// TxGas is the base cost of a message call transaction
	TxGas uint64 `json:"txGas"`
	// TxCreateGas is the base cost of a contract creation transaction
	TxCreateGas uint64 `json:"txCreateGas"`
	// TxDataZeroGas is charged per zero byte of payload
	TxDataZeroGas uint64 `json:"txDataZeroGas"`
	// TxDataNonZeroGas is charged per non-zero byte of payload
	TxDataNonZeroGas uint64 `json:"txDataNonZeroGas"`
}

// Copy returns a copy of the schedule
func (s *Schedule) Copy() *Schedule {
	ss := *s

	return &ss
}

var (
	// FrontierSchedule charged creations the same as calls
	FrontierSchedule = &Schedule{
		TxGas:            21000,
		TxCreateGas:      21000,
		TxDataZeroGas:    4,
		TxDataNonZeroGas: 68,
	}

	// HomesteadSchedule raised the creation cost (EIP-2)
	HomesteadSchedule = &Schedule{
		TxGas:            21000,
		TxCreateGas:      53000,
		TxDataZeroGas:    4,
		TxDataNonZeroGas: 68,
	}

	// IstanbulSchedule lowered the non-zero byte cost (EIP-2028)
	IstanbulSchedule = &Schedule{
		TxGas:            21000,
		TxCreateGas:      53000,
		TxDataZeroGas:    4,
		TxDataNonZeroGas: 16,
	}
)
