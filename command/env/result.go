package env

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/dogechain-lab/blockenv/command/helper"
	"github.com/dogechain-lab/blockenv/state/runtime"
	"github.com/dogechain-lab/blockenv/types"
)

type EnvResult struct {
	Number      uint64        `json:"number"`
	Author      types.Address `json:"author"`
	Timestamp   uint64        `json:"timestamp"`
	Difficulty  string        `json:"difficulty"`
	GasLimit    string        `json:"gasLimit"`
	GasUsed     string        `json:"gasUsed"`
	BaseFee     *string       `json:"baseFee"`
	MixHash     types.Hash    `json:"mixHash"`
	BlobBaseFee string        `json:"blobBaseFee"`

	LastHashesCount int          `json:"lastHashesCount"`
	LastHashes      []types.Hash `json:"lastHashes,omitempty"`
	Parent          *types.Hash  `json:"parent,omitempty"`
	Oldest          *types.Hash  `json:"oldest,omitempty"`

	Metrics map[string]float64 `json:"metrics,omitempty"`
}

func newEnvResult(env *runtime.EnvInfo, showHashes bool) *EnvResult {
	r := &EnvResult{
		Number:          env.Number,
		Author:          env.Author,
		Timestamp:       env.Timestamp,
		Difficulty:      env.Difficulty.Dec(),
		GasLimit:        env.GasLimit.Dec(),
		GasUsed:         env.GasUsed.Dec(),
		MixHash:         env.MixHash,
		BlobBaseFee:     env.BlobBaseFee.Dec(),
		LastHashesCount: env.LastHashes.Len(),
	}

	if env.BaseFee != nil {
		baseFee := env.BaseFee.Dec()
		r.BaseFee = &baseFee
	}

	if n := env.LastHashes.Len(); n > 0 {
		parent, oldest := env.LastHashes.At(0), env.LastHashes.At(n-1)
		r.Parent, r.Oldest = &parent, &oldest
	}

	if showHashes {
		r.LastHashes = env.LastHashes.Slice()
	}

	return r
}

func (r *EnvResult) GetOutput() string {
	var buffer bytes.Buffer

	baseFee := ""
	if r.BaseFee != nil {
		baseFee = *r.BaseFee
	}

	buffer.WriteString("\n[ENV INFO]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Number|%d", r.Number),
		fmt.Sprintf("Author|%s", r.Author),
		fmt.Sprintf("Timestamp|%d", r.Timestamp),
		fmt.Sprintf("Difficulty|%s", r.Difficulty),
		fmt.Sprintf("Gas limit|%s", r.GasLimit),
		fmt.Sprintf("Gas used|%s", r.GasUsed),
		fmt.Sprintf("Base fee|%s", baseFee),
		fmt.Sprintf("Mix hash|%s", r.MixHash),
		fmt.Sprintf("Blob base fee|%s", r.BlobBaseFee),
		fmt.Sprintf("Last hashes|%d", r.LastHashesCount),
	}))
	buffer.WriteString("\n")

	if len(r.LastHashes) > 0 {
		rows := make([]string, len(r.LastHashes))
		for i, hash := range r.LastHashes {
			rows[i] = fmt.Sprintf("%d|%s", r.Number-uint64(i)-1, hash)
		}

		buffer.WriteString("\n[LAST HASHES]\n")
		buffer.WriteString(helper.FormatList(rows))
		buffer.WriteString("\n")
	} else if r.Parent != nil {
		buffer.WriteString("\n[LAST HASHES]\n")
		buffer.WriteString(helper.FormatKV([]string{
			fmt.Sprintf("Parent|%s", r.Parent),
			fmt.Sprintf("Oldest|%s", r.Oldest),
		}))
		buffer.WriteString("\n")
	}

	if len(r.Metrics) > 0 {
		names := make([]string, 0, len(r.Metrics))
		for name := range r.Metrics {
			names = append(names, name)
		}

		sort.Strings(names)

		rows := make([]string, len(names))
		for i, name := range names {
			rows[i] = fmt.Sprintf("%s|%g", name, r.Metrics[name])
		}

		buffer.WriteString("\n[METRICS]\n")
		buffer.WriteString(helper.FormatKV(rows))
		buffer.WriteString("\n")
	}

	return buffer.String()
}
