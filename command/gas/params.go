package gas

import (
	"errors"

	"github.com/dogechain-lab/blockenv/helper/hex"
	"github.com/dogechain-lab/blockenv/types"
)

const (
	inputFlag  = "input"
	createFlag = "create"
	toFlag     = "to"
	numberFlag = "number"
	gasFlag    = "gas"
)

var (
	params = &gasParams{}
)

var (
	errCreateWithTo = errors.New("--create and --to are mutually exclusive")
	errNoAction     = errors.New("one of --create or --to is required")
)

type gasParams struct {
	inputRaw  string
	numberRaw string
	toRaw     string
	gasRaw    string
	create    bool

	input  []byte
	number uint64
	action types.Action
	gas    *uint64
}

func (p *gasParams) validateFlags() error {
	var err error

	if p.input, err = hex.DecodeHex(p.inputRaw); err != nil {
		return err
	}

	if p.number, err = types.ParseUint64orHex(&p.numberRaw); err != nil {
		return err
	}

	p.gas = nil

	if p.gasRaw != "" {
		gas, parseErr := types.ParseUint64orHex(&p.gasRaw)
		if parseErr != nil {
			return parseErr
		}

		p.gas = &gas
	}

	switch {
	case p.create && p.toRaw != "":
		return errCreateWithTo
	case p.create:
		p.action = types.CreateAction()
	case p.toRaw != "":
		to, parseErr := types.ParseAddress(p.toRaw)
		if parseErr != nil {
			return parseErr
		}

		p.action = types.CallAction(to)
	default:
		return errNoAction
	}

	return nil
}

func (p *gasParams) transaction() *types.Transaction {
	tx := &types.Transaction{
		Action: p.action,
		Input:  p.input,
	}

	if p.gas != nil {
		tx.Gas = *p.gas
	}

	return tx
}
