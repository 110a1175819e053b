package decode

import (
	"github.com/dogechain-lab/blockenv/helper/hex"
	"github.com/dogechain-lab/blockenv/types"
)

const (
	listFlag = "list"
)

var (
	params = &decodeParams{}
)

type decodeParams struct {
	list  bool
	input []byte
}

func (p *decodeParams) initRawParams(args []string) error {
	input, err := hex.DecodeHex(args[0])
	if err != nil {
		return err
	}

	p.input = input

	return nil
}

func (p *decodeParams) decode() (*DecodeResult, error) {
	if !p.list {
		w, err := types.DecodeWithdrawal(p.input)
		if err != nil {
			return nil, err
		}

		return &DecodeResult{Withdrawals: types.Withdrawals{w}}, nil
	}

	ws, err := types.DecodeWithdrawals(p.input)
	if err != nil {
		return nil, err
	}

	return &DecodeResult{
		List:        true,
		Withdrawals: ws,
		Hash:        types.WithdrawalsHash(ws).String(),
	}, nil
}
