package encode

import (
	"bytes"
	"fmt"

	"github.com/dogechain-lab/blockenv/command/helper"
)

type EncodeResult struct {
	List  bool   `json:"list"`
	Count int    `json:"count"`
	RLP   string `json:"rlp"`
	Hash  string `json:"hash,omitempty"`
}

func (r *EncodeResult) GetOutput() string {
	var buffer bytes.Buffer

	rows := []string{
		fmt.Sprintf("List|%t", r.List),
		fmt.Sprintf("Records|%d", r.Count),
		fmt.Sprintf("RLP|%s", r.RLP),
	}

	if r.Hash != "" {
		rows = append(rows, fmt.Sprintf("Hash|%s", r.Hash))
	}

	buffer.WriteString("\n[WITHDRAWAL RLP]\n")
	buffer.WriteString(helper.FormatKV(rows))
	buffer.WriteString("\n")

	return buffer.String()
}
