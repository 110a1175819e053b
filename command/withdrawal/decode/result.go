package decode

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/blockenv/command/helper"
	"github.com/dogechain-lab/blockenv/types"
)

type DecodeResult struct {
	List        bool              `json:"list"`
	Withdrawals types.Withdrawals `json:"withdrawals"`
	Hash        string            `json:"hash,omitempty"`
}

func (r *DecodeResult) GetOutput() string {
	var buffer bytes.Buffer

	if r.List {
		buffer.WriteString("\n[WITHDRAWALS]\n")
		buffer.WriteString(helper.FormatKV([]string{
			fmt.Sprintf("Records|%d", len(r.Withdrawals)),
			fmt.Sprintf("Hash|%s", r.Hash),
		}))
		buffer.WriteString("\n")
	}

	for i, w := range r.Withdrawals {
		buffer.WriteString(fmt.Sprintf("\n[WITHDRAWAL %d]\n", i))
		buffer.WriteString(helper.FormatKV([]string{
			fmt.Sprintf("Index|%d", w.Index),
			fmt.Sprintf("Validator|%d", w.Validator),
			fmt.Sprintf("Address|%s", w.Address),
			fmt.Sprintf("Amount|%d", w.Amount),
		}))
		buffer.WriteString("\n")
	}

	return buffer.String()
}
