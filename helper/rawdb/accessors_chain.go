package rawdb

import (
	"github.com/dogechain-lab/blockenv/helper/kvdb"
	"github.com/dogechain-lab/blockenv/types"
)

func ReadCanonicalHash(db kvdb.KVReader, number uint64) (types.Hash, bool) {
	data, ok, err := db.Get(canonicalHashKey(number))
	if err != nil || !ok || len(data) != types.HashLength {
		return types.Hash{}, false
	}

	return types.BytesToHash(data), true
}

func WriteCanonicalHash(db kvdb.KVWriter, number uint64, hash types.Hash) error {
	return db.Set(canonicalHashKey(number), hash.Bytes())
}

// ReadHeadNumber returns the highest canonical number written by WriteCanonicalChain
func ReadHeadNumber(db kvdb.KVReader) (uint64, bool) {
	data, ok, err := db.Get(headNumberKey)
	if err != nil || !ok || len(data) != 8 {
		return 0, false
	}

	return decodeUint(data), true
}

func WriteHeadNumber(db kvdb.KVWriter, number uint64) error {
	return db.Set(headNumberKey, encodeUint(number))
}

// WriteCanonicalChain stores hashes[i] as the canonical hash of block from+i
// and moves the head number, in a single batch
func WriteCanonicalChain(db kvdb.KVBatchStorage, from uint64, hashes []types.Hash) error {
	if len(hashes) == 0 {
		return nil
	}

	batch := db.NewBatch()

	for i, hash := range hashes {
		if err := WriteCanonicalHash(batch, from+uint64(i), hash); err != nil {
			return err
		}
	}

	if err := WriteHeadNumber(batch, from+uint64(len(hashes))-1); err != nil {
		return err
	}

	return batch.Write()
}

func ReadWithdrawals(db kvdb.KVReader, hash types.Hash) (types.Withdrawals, error) {
	withdrawals := types.Withdrawals{}
	if err := readRLP(db, withdrawalsKey(hash), &withdrawals); err != nil {
		return nil, err
	}

	return withdrawals, nil
}

func WriteWithdrawals(db kvdb.KVWriter, hash types.Hash, withdrawals types.Withdrawals) error {
	return writeRLP(db, withdrawalsKey(hash), withdrawals)
}
