package types

import (
	"github.com/dogechain-lab/fastrlp"
)

type RLPMarshaler interface {
	MarshalRLPTo(dst []byte) []byte
}

type marshalRLPFunc func(ar *fastrlp.Arena) *fastrlp.Value

func MarshalRLPTo(obj marshalRLPFunc, dst []byte) []byte {
	ar := fastrlp.DefaultArenaPool.Get()
	dst = obj(ar).MarshalTo(dst)
	fastrlp.DefaultArenaPool.Put(ar)

	return dst
}

func (w *Withdrawal) MarshalRLP() []byte {
	return w.MarshalRLPTo(nil)
}

func (w *Withdrawal) MarshalRLPTo(dst []byte) []byte {
	return MarshalRLPTo(w.MarshalRLPWith, dst)
}

// MarshalRLPWith encodes the withdrawal as [index, validator, address, amount]
func (w *Withdrawal) MarshalRLPWith(ar *fastrlp.Arena) *fastrlp.Value {
	vv := ar.NewArray()

	vv.Set(ar.NewUint(w.Index))
	vv.Set(ar.NewUint(w.Validator))
	vv.Set(ar.NewCopyBytes(w.Address.Bytes()))
	vv.Set(ar.NewUint(w.Amount))

	return vv
}

func (ws Withdrawals) MarshalRLPTo(dst []byte) []byte {
	return MarshalRLPTo(ws.MarshalRLPWith, dst)
}

func (ws Withdrawals) MarshalRLPWith(ar *fastrlp.Arena) *fastrlp.Value {
	if len(ws) == 0 {
		return ar.NewNullArray()
	}

	vv := ar.NewArray()
	for _, w := range ws {
		vv.Set(w.MarshalRLPWith(ar))
	}

	return vv
}
