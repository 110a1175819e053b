package kvdb

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

const (
	// minLevelDBCache is the minimum memory allocate to leveldb
	minLevelDBCache = 8 // 8 MiB

	// minLevelDBHandles is the minimum number of files handles to leveldb open files
	minLevelDBHandles = 16

	DefaultLevelDBCache        = 64  // 64 MiB
	DefaultLevelDBHandles      = 128 // files handles to leveldb open files
	DefaultLevelDBBloomKeyBits = 10  // canonical hash lookups are point reads
	DefaultLevelDBNoSync       = false
)

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

type LevelDBBuilder interface {
	// set cache size
	SetCacheSize(int) LevelDBBuilder

	// set handles
	SetHandles(int) LevelDBBuilder

	// set bloom key bits
	SetBloomKeyBits(int) LevelDBBuilder

	// set no sync
	SetNoSync(bool) LevelDBBuilder

	// set read only
	SetReadOnly(bool) LevelDBBuilder

	// build the storage
	Build() (KVBatchStorage, error)
}

type leveldbBuilder struct {
	logger  hclog.Logger
	path    string
	options *opt.Options
}

func (builder *leveldbBuilder) SetCacheSize(cacheSize int) LevelDBBuilder {
	cacheSize = max(cacheSize, minLevelDBCache)

	builder.options.BlockCacheCapacity = cacheSize * opt.MiB

	builder.logger.Debug("leveldb",
		"BlockCacheCapacity", fmt.Sprintf("%d Mib", cacheSize),
	)

	return builder
}

func (builder *leveldbBuilder) SetHandles(handles int) LevelDBBuilder {
	builder.options.OpenFilesCacheCapacity = max(handles, minLevelDBHandles)

	builder.logger.Debug("leveldb",
		"OpenFilesCacheCapacity", builder.options.OpenFilesCacheCapacity,
	)

	return builder
}

func (builder *leveldbBuilder) SetBloomKeyBits(bloomKeyBits int) LevelDBBuilder {
	builder.options.Filter = filter.NewBloomFilter(bloomKeyBits)

	builder.logger.Debug("leveldb",
		"BloomFilter bits", bloomKeyBits,
	)

	return builder
}

func (builder *leveldbBuilder) SetNoSync(noSync bool) LevelDBBuilder {
	builder.options.NoSync = noSync

	builder.logger.Debug("leveldb",
		"NoSync", noSync,
	)

	return builder
}

func (builder *leveldbBuilder) SetReadOnly(readOnly bool) LevelDBBuilder {
	builder.options.ReadOnly = readOnly

	builder.logger.Debug("leveldb",
		"ReadOnly", readOnly,
	)

	return builder
}

func (builder *leveldbBuilder) Build() (KVBatchStorage, error) {
	db, err := leveldb.OpenFile(builder.path, builder.options)
	if err != nil {
		return nil, err
	}

	builder.logger.Info("leveldb opened", "path", builder.path)

	return &levelDBKV{db: db}, nil
}

// NewLevelDBBuilder creates the new leveldb storage builder
func NewLevelDBBuilder(logger hclog.Logger, path string) LevelDBBuilder {
	return &leveldbBuilder{
		logger: logger,
		path:   path,
		options: &opt.Options{
			OpenFilesCacheCapacity: DefaultLevelDBHandles,
			BlockCacheCapacity:     DefaultLevelDBCache * opt.MiB,
			Filter:                 filter.NewBloomFilter(DefaultLevelDBBloomKeyBits),
			NoSync:                 DefaultLevelDBNoSync,
		},
	}
}
