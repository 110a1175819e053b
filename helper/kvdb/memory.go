package kvdb

import (
	"sync"

	"github.com/dogechain-lab/blockenv/helper/hex"
)

// memoryKV is an in memory implementation of the kv storage
type memoryKV struct {
	lock   sync.RWMutex
	db     map[string][]byte
	closed bool
}

// NewMemoryStorage creates an in memory storage, mostly used by tests and
// short lived tools
func NewMemoryStorage() KVBatchStorage {
	return &memoryKV{db: map[string][]byte{}}
}

func (m *memoryKV) Set(p []byte, v []byte) error {
	m.lock.Lock()
	defer m.lock.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.db[hex.EncodeToHex(p)] = append([]byte(nil), v...)

	return nil
}

func (m *memoryKV) Has(p []byte) (bool, error) {
	_, ok, err := m.Get(p)

	return ok, err
}

func (m *memoryKV) Get(p []byte) ([]byte, bool, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	if m.closed {
		return nil, false, ErrClosed
	}

	v, ok := m.db[hex.EncodeToHex(p)]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), v...), true, nil
}

func (m *memoryKV) NewBatch() Batch {
	return &memoryBatch{db: m}
}

func (m *memoryKV) Close() error {
	m.lock.Lock()
	defer m.lock.Unlock()

	m.closed = true

	return nil
}

type memoryBatch struct {
	db     *memoryKV
	keys   [][]byte
	values [][]byte
}

func (b *memoryBatch) Set(k, v []byte) error {
	b.keys = append(b.keys, append([]byte(nil), k...))
	b.values = append(b.values, append([]byte(nil), v...))

	return nil
}

func (b *memoryBatch) Write() error {
	for i := range b.keys {
		if err := b.db.Set(b.keys[i], b.values[i]); err != nil {
			return err
		}
	}

	b.keys, b.values = nil, nil

	return nil
}
