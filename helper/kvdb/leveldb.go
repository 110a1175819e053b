package kvdb

import (
	"errors"

	"github.com/syndtr/goleveldb/leveldb"
)

var ErrClosed = errors.New("database closed")

type levelBatch struct {
	db    *leveldb.DB
	batch *leveldb.Batch
}

func (b *levelBatch) Set(k, v []byte) error {
	b.batch.Put(k, v)

	return nil
}

func (b *levelBatch) Write() error {
	return b.db.Write(b.batch, nil)
}

// levelDBKV is the leveldb implementation of the kv storage
type levelDBKV struct {
	db *leveldb.DB
}

func (kv *levelDBKV) NewBatch() Batch {
	return &levelBatch{db: kv.db, batch: &leveldb.Batch{}}
}

// Set sets the key-value pair in leveldb storage
func (kv *levelDBKV) Set(p []byte, v []byte) error {
	return kv.db.Put(p, v, nil)
}

// Has reports whether the key exists
func (kv *levelDBKV) Has(p []byte) (bool, error) {
	ok, err := kv.db.Has(p, nil)
	if errors.Is(err, leveldb.ErrClosed) {
		return false, ErrClosed
	}

	return ok, err
}

// Get retrieves the key-value pair in leveldb storage
func (kv *levelDBKV) Get(p []byte) ([]byte, bool, error) {
	data, err := kv.db.Get(p, nil)
	if err != nil {
		switch {
		case errors.Is(err, leveldb.ErrNotFound):
			return nil, false, nil
		case errors.Is(err, leveldb.ErrClosed):
			return nil, false, ErrClosed
		default:
			return nil, false, err
		}
	}

	return data, true, nil
}

// Close closes the leveldb storage instance
func (kv *levelDBKV) Close() error {
	return kv.db.Close()
}
