package rawdb

import (
	"errors"

	"github.com/dogechain-lab/blockenv/helper/kvdb"
	"github.com/dogechain-lab/blockenv/types"
)

var ErrNotFound = errors.New("not found")

func readRLP(db kvdb.KVReader, key []byte, raw types.RLPUnmarshaler) error {
	data, ok, err := db.Get(key)
	if err != nil {
		return err
	} else if !ok {
		return ErrNotFound
	}

	return raw.UnmarshalRLP(data)
}

func writeRLP(db kvdb.KVWriter, key []byte, raw types.RLPMarshaler) error {
	return db.Set(key, raw.MarshalRLPTo(nil))
}
