package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dogechain-lab/blockenv/helper/hex"
	"github.com/dogechain-lab/blockenv/types"
)

const (
	indexFlag     = "index"
	validatorFlag = "validator"
	addressFlag   = "address"
	amountFlag    = "amount"
	fileFlag      = "file"
)

var (
	params = &encodeParams{}
)

var (
	errFileWithFields = errors.New("--file can not be combined with record flags")
	errNoAddress      = errors.New("--address is required")
)

type encodeParams struct {
	indexRaw     string
	validatorRaw string
	addressRaw   string
	amountRaw    string
	file         string

	withdrawal  *types.Withdrawal
	withdrawals types.Withdrawals
}

// validateFlags parses either the record flags or the list file. fieldsSet
// reports whether any record flag was given explicitly.
func (p *encodeParams) validateFlags(fieldsSet bool) error {
	if p.file != "" {
		if fieldsSet {
			return errFileWithFields
		}

		return p.readFile()
	}

	w := &types.Withdrawal{}

	var err error

	if w.Index, err = types.ParseUint64orHex(&p.indexRaw); err != nil {
		return fmt.Errorf("invalid %s: %w", indexFlag, err)
	}

	if w.Validator, err = types.ParseUint64orHex(&p.validatorRaw); err != nil {
		return fmt.Errorf("invalid %s: %w", validatorFlag, err)
	}

	if p.addressRaw == "" {
		return errNoAddress
	}

	if w.Address, err = types.ParseAddress(p.addressRaw); err != nil {
		return fmt.Errorf("invalid %s: %w", addressFlag, err)
	}

	if w.Amount, err = types.ParseUint64orHex(&p.amountRaw); err != nil {
		return fmt.Errorf("invalid %s: %w", amountFlag, err)
	}

	p.withdrawal = w

	return nil
}

func (p *encodeParams) readFile() error {
	data, err := os.ReadFile(p.file)
	if err != nil {
		return err
	}

	withdrawals := types.Withdrawals{}
	if err := json.Unmarshal(data, &withdrawals); err != nil {
		return fmt.Errorf("failed to parse %s: %w", p.file, err)
	}

	p.withdrawals = withdrawals

	return nil
}

func (p *encodeParams) encode() *EncodeResult {
	if p.withdrawal != nil {
		return &EncodeResult{
			Count: 1,
			RLP:   hex.EncodeToHex(p.withdrawal.MarshalRLP()),
		}
	}

	return &EncodeResult{
		List:  true,
		Count: len(p.withdrawals),
		RLP:   hex.EncodeToHex(p.withdrawals.MarshalRLPTo(nil)),
		Hash:  types.WithdrawalsHash(p.withdrawals).String(),
	}
}
