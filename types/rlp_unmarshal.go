package types

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/dogechain-lab/fastrlp"
)

type RLPUnmarshaler interface {
	UnmarshalRLP(input []byte) error
}

// withdrawalFields is the fixed number of items in a withdrawal record
const withdrawalFields = 4

var (
	errEmptyInput      = errors.New("empty input, at least the list header is required")
	errNonCanonicalInt = errors.New("integer with leading zero bytes")
	errTrailingBytes   = errors.New("trailing bytes after rlp value")
	errNonCanonical    = errors.New("non-canonical rlp encoding")
)

var withdrawalParserPool fastrlp.ParserPool

type unmarshalRLPFunc func(v *fastrlp.Value) error

func unmarshalRlp(obj unmarshalRLPFunc, input []byte) error {
	if len(input) == 0 {
		return newDecodeError(KindIncorrectListLen, -1, "", errEmptyInput)
	}

	p := withdrawalParserPool.Get()
	defer withdrawalParserPool.Put(p)

	v, err := p.Parse(input)
	if err != nil {
		return newDecodeError(KindMalformedItem, -1, "", err)
	}

	if raw := p.Raw(v); len(raw) != len(input) {
		return newDecodeError(KindMalformedItem, -1, "",
			fmt.Errorf("%w: %d of %d bytes consumed", errTrailingBytes, len(raw), len(input)))
	}

	return obj(v)
}

// checkCanonical requires the decoded value to re-encode to the exact input
func checkCanonical(enc, input []byte) error {
	if !bytes.Equal(enc, input) {
		return newDecodeError(KindMalformedItem, -1, "", errNonCanonical)
	}

	return nil
}

func (w *Withdrawal) UnmarshalRLP(input []byte) error {
	var dec Withdrawal

	if err := unmarshalRlp(func(v *fastrlp.Value) error {
		return dec.unmarshalRLPFrom(v, -1)
	}, input); err != nil {
		return err
	}

	if err := checkCanonical(dec.MarshalRLP(), input); err != nil {
		return err
	}

	*w = dec

	return nil
}

func (w *Withdrawal) unmarshalRLPFrom(v *fastrlp.Value, index int) error {
	if v.Type() != fastrlp.TypeArray {
		return newDecodeError(KindNotList, index, "", nil)
	}

	elems, err := v.GetElems()
	if err != nil {
		return newDecodeError(KindNotList, index, "", err)
	}

	if len(elems) != withdrawalFields {
		return newDecodeError(KindIncorrectListLen, index, "",
			fmt.Errorf("expected %d fields, found %d", withdrawalFields, len(elems)))
	}

	var dec Withdrawal

	if dec.Index, err = getCanonicalUint64(elems[0]); err != nil {
		return newDecodeError(KindMalformedItem, index, "index", err)
	}

	if dec.Validator, err = getCanonicalUint64(elems[1]); err != nil {
		return newDecodeError(KindMalformedItem, index, "validator", err)
	}

	if err = elems[2].GetAddr(dec.Address[:]); err != nil {
		return newDecodeError(KindMalformedItem, index, "address", err)
	}

	if dec.Amount, err = getCanonicalUint64(elems[3]); err != nil {
		return newDecodeError(KindMalformedItem, index, "amount", err)
	}

	*w = dec

	return nil
}

// getCanonicalUint64 reads a big-endian minimal length integer
func getCanonicalUint64(v *fastrlp.Value) (uint64, error) {
	n, err := v.GetUint64()
	if err != nil {
		return 0, err
	}

	if b := v.Raw(); len(b) > 0 && b[0] == 0 {
		return 0, errNonCanonicalInt
	}

	return n, nil
}

// UnmarshalRLP decodes a list of withdrawals, replacing the receiver content
func (ws *Withdrawals) UnmarshalRLP(input []byte) error {
	var dec Withdrawals

	if err := unmarshalRlp(dec.unmarshalRLPFrom, input); err != nil {
		return err
	}

	if err := checkCanonical(dec.MarshalRLPTo(nil), input); err != nil {
		return err
	}

	*ws = dec

	return nil
}

func (ws *Withdrawals) unmarshalRLPFrom(v *fastrlp.Value) error {
	if v.Type() != fastrlp.TypeArray {
		return newDecodeError(KindNotList, -1, "", nil)
	}

	elems, err := v.GetElems()
	if err != nil {
		return newDecodeError(KindNotList, -1, "", err)
	}

	out := make(Withdrawals, 0, len(elems))

	for i, elem := range elems {
		w := new(Withdrawal)
		if err := w.unmarshalRLPFrom(elem, i); err != nil {
			return err
		}

		out = append(out, w)
	}

	*ws = out

	return nil
}

// DecodeWithdrawal decodes a single withdrawal record
func DecodeWithdrawal(input []byte) (*Withdrawal, error) {
	w := new(Withdrawal)
	if err := w.UnmarshalRLP(input); err != nil {
		return nil, err
	}

	return w, nil
}

// DecodeWithdrawals decodes a list of withdrawal records. An empty list
// decodes to an empty, non-nil slice.
func DecodeWithdrawals(input []byte) (Withdrawals, error) {
	var ws Withdrawals
	if err := ws.UnmarshalRLP(input); err != nil {
		return nil, err
	}

	return ws, nil
}
