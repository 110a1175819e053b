package kvdb

import "io"

// KVReader wraps the Get method of a backing data store.
type KVReader interface {
	// Has retrieves if a key is present in the key-value data store.
	Has(key []byte) (bool, error)
	// Get retrieves the given key if it's present in the key-value data store.
	Get(key []byte) (value []byte, exists bool, err error)
}

// KVWriter wraps the Set method of a backing data store.
type KVWriter interface {
	// Set inserts the given value into the key-value data store.
	Set(k, v []byte) error
}

// Batch buffers writes until Write is called
type Batch interface {
	KVWriter

	// Write flushes any accumulated data to disk.
	Write() error
}

// KVBatchStorage is a k/v storage on memory or leveldb with batch writes
type KVBatchStorage interface {
	KVReader
	KVWriter
	io.Closer

	NewBatch() Batch
}
