package rawdb

import (
	"encoding/binary"

	"github.com/dogechain-lab/blockenv/types"
)

// blockchain key prefix
var (
	// canonicalPrefix is the prefix for the canonical chain numbers
	canonicalPrefix = []byte("c")
	// withdrawalsPrefix is the prefix for block withdrawals
	withdrawalsPrefix = []byte("w")
)

// blockchain keys
var (
	// headNumberKey tracks the latest known canonical number
	headNumberKey = []byte("onumber")
)

func encodeUint(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b[:], n)

	return b[:]
}

func decodeUint(b []byte) uint64 {
	return binary.BigEndian.Uint64(b[:])
}

func prefixKey(prefix, key []byte) []byte {
	k := make([]byte, 0, len(prefix)+len(key))

	return append(append(k, prefix...), key...)
}

// canonicalHashKey = canonicalPrefix + num (uint64 big endian)
func canonicalHashKey(number uint64) []byte {
	return prefixKey(canonicalPrefix, encodeUint(number))
}

// withdrawalsKey = withdrawalsPrefix + hash
func withdrawalsKey(hash types.Hash) []byte {
	return prefixKey(withdrawalsPrefix, hash.Bytes())
}
