package runtime

import (
	"encoding/binary"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/dogechain-lab/blockenv/helper/kvdb"
	"github.com/dogechain-lab/blockenv/helper/rawdb"
	"github.com/dogechain-lab/blockenv/types"
)

// DefaultAncestorCacheSize is the fastcache budget of StorageAncestors
const DefaultAncestorCacheSize = 4 * 1024 * 1024

// AncestorSource resolves canonical block hashes by number
type AncestorSource interface {
	CanonicalHash(number uint64) (types.Hash, bool)
}

// StorageAncestors reads canonical hashes from chain storage, keeping the
// hot window in memory
type StorageAncestors struct {
	db    kvdb.KVReader
	cache *fastcache.Cache
}

// NewStorageAncestors creates an ancestor source over db. cacheSize is in
// bytes, DefaultAncestorCacheSize is used when it is not positive.
func NewStorageAncestors(db kvdb.KVReader, cacheSize int) *StorageAncestors {
	if cacheSize <= 0 {
		cacheSize = DefaultAncestorCacheSize
	}

	return &StorageAncestors{
		db:    db,
		cache: fastcache.New(cacheSize),
	}
}

func numberKey(number uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, number)

	return key
}

func (s *StorageAncestors) CanonicalHash(number uint64) (types.Hash, bool) {
	key := numberKey(number)

	if enc, ok := s.cache.HasGet(nil, key); ok && len(enc) == types.HashLength {
		return types.BytesToHash(enc), true
	}

	hash, ok := rawdb.ReadCanonicalHash(s.db, number)
	if !ok {
		return types.ZeroHash, false
	}

	s.cache.Set(key, hash.Bytes())

	return hash, true
}

// Invalidate drops the cached hash of number, for use after a reorg
// rewrote it
func (s *StorageAncestors) Invalidate(number uint64) {
	s.cache.Del(numberKey(number))
}

// Reset drops every cached hash
func (s *StorageAncestors) Reset() {
	s.cache.Reset()
}
