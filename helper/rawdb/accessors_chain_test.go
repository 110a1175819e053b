package rawdb

import (
	"testing"

	"github.com/dogechain-lab/blockenv/helper/kvdb"
	"github.com/dogechain-lab/blockenv/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHash(t *testing.T) {
	t.Parallel()

	db := kvdb.NewMemoryStorage()
	defer db.Close()

	hash := types.StringToHash("0x1234")

	_, ok := ReadCanonicalHash(db, 10)
	assert.False(t, ok)

	require.NoError(t, WriteCanonicalHash(db, 10, hash))

	got, ok := ReadCanonicalHash(db, 10)
	assert.True(t, ok)
	assert.Equal(t, hash, got)

	_, ok = ReadCanonicalHash(db, 11)
	assert.False(t, ok)
}

func TestCanonicalHashIgnoresCorruptValue(t *testing.T) {
	t.Parallel()

	db := kvdb.NewMemoryStorage()
	defer db.Close()

	require.NoError(t, db.Set(canonicalHashKey(3), []byte{0x01, 0x02}))

	_, ok := ReadCanonicalHash(db, 3)
	assert.False(t, ok)
}

func TestWriteCanonicalChain(t *testing.T) {
	t.Parallel()

	db := kvdb.NewMemoryStorage()
	defer db.Close()

	hashes := []types.Hash{
		types.StringToHash("0x01"),
		types.StringToHash("0x02"),
		types.StringToHash("0x03"),
	}

	require.NoError(t, WriteCanonicalChain(db, 5, hashes))

	for i, hash := range hashes {
		got, ok := ReadCanonicalHash(db, 5+uint64(i))
		assert.True(t, ok)
		assert.Equal(t, hash, got)
	}

	head, ok := ReadHeadNumber(db)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), head)

	// empty chain is a no-op
	require.NoError(t, WriteCanonicalChain(db, 100, nil))

	head, _ = ReadHeadNumber(db)
	assert.Equal(t, uint64(7), head)
}

func TestWithdrawals(t *testing.T) {
	t.Parallel()

	db := kvdb.NewMemoryStorage()
	defer db.Close()

	blockHash := types.StringToHash("0xabcd")
	withdrawals := types.Withdrawals{
		{Index: 7, Validator: 42, Address: types.StringToAddress("0x01"), Amount: 1000000},
		{Index: 8, Validator: 43, Address: types.StringToAddress("0x02"), Amount: 1},
	}

	_, err := ReadWithdrawals(db, blockHash)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, WriteWithdrawals(db, blockHash, withdrawals))

	got, err := ReadWithdrawals(db, blockHash)
	require.NoError(t, err)
	assert.Equal(t, withdrawals, got)
}

func TestWithdrawalsEmpty(t *testing.T) {
	t.Parallel()

	db := kvdb.NewMemoryStorage()
	defer db.Close()

	blockHash := types.StringToHash("0xef")

	require.NoError(t, WriteWithdrawals(db, blockHash, types.Withdrawals{}))

	got, err := ReadWithdrawals(db, blockHash)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestWithdrawalsCorrupt(t *testing.T) {
	t.Parallel()

	db := kvdb.NewMemoryStorage()
	defer db.Close()

	blockHash := types.StringToHash("0xee")

	require.NoError(t, db.Set(withdrawalsKey(blockHash), []byte{0x05}))

	_, err := ReadWithdrawals(db, blockHash)
	assert.True(t, types.IsShapeError(err))
}
