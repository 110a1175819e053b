package gas

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/blockenv/chain"
	"github.com/dogechain-lab/blockenv/command/helper"
)

type GasResult struct {
	Number      uint64          `json:"number"`
	Create      bool            `json:"create"`
	DataLength  int             `json:"dataLength"`
	Tokens      uint64          `json:"tokens"`
	Schedule    *chain.Schedule `json:"schedule"`
	Intrinsic   uint64          `json:"intrinsic"`
	Floor       uint64          `json:"floor"`
	FloorActive bool            `json:"floorActive"`
	Minimum     uint64          `json:"minimum"`
	Sufficient  *bool           `json:"sufficient,omitempty"`
}

func (r *GasResult) GetOutput() string {
	var buffer bytes.Buffer

	rows := []string{
		fmt.Sprintf("Block number|%d", r.Number),
		fmt.Sprintf("Contract creation|%t", r.Create),
		fmt.Sprintf("Input length|%d", r.DataLength),
		fmt.Sprintf("Calldata tokens|%d", r.Tokens),
		fmt.Sprintf("Intrinsic gas|%d", r.Intrinsic),
		fmt.Sprintf("Floor active|%t", r.FloorActive),
		fmt.Sprintf("Floor gas|%d", r.Floor),
		fmt.Sprintf("Minimum gas|%d", r.Minimum),
	}

	if r.Sufficient != nil {
		rows = append(rows, fmt.Sprintf("Gas limit sufficient|%t", *r.Sufficient))
	}

	buffer.WriteString("\n[GAS]\n")
	buffer.WriteString(helper.FormatKV(rows))
	buffer.WriteString("\n\n[SCHEDULE]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Tx gas|%d", r.Schedule.TxGas),
		fmt.Sprintf("Tx create gas|%d", r.Schedule.TxCreateGas),
		fmt.Sprintf("Tx data zero gas|%d", r.Schedule.TxDataZeroGas),
		fmt.Sprintf("Tx data non zero gas|%d", r.Schedule.TxDataNonZeroGas),
	}))
	buffer.WriteString("\n")

	return buffer.String()
}
