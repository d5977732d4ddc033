package kvstore

import (
	"errors"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/bloom"
	"github.com/cockroachdb/pebble/vfs"
)

func init() {
	kvImpls["pebble"] = pebbleDBFactory{}
	kvImpls["pebbledb"] = pebbleDBFactory{}
}

type pebbleDBFactory struct{}

func (pebbleDBFactory) New(dbdir string, inMem bool) (KVStore, error) {
	return NewPebbleDB(dbdir, inMem)
}

// PebbleDB implements KVStore on a pebble database.
type PebbleDB struct {
	db *pebble.DB
	wo *pebble.WriteOptions
}

// pebbleOptions sizes pebble for a store of a few thousand small records:
// admin lists, asset configuration and one index per (user, asset).
func pebbleOptions(inMem bool) *pebble.Options {
	cache := pebble.NewCache(8 << 20)
	opts := &pebble.Options{
		Cache:                       cache,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       64,
		LBaseMaxBytes:               4 << 20,
		Levels:                      make([]pebble.LevelOptions, 4),
		MaxConcurrentCompactions:    func() int { return 1 },
		MemTableSize:                2 << 20,
		MemTableStopWritesThreshold: 2,
	}
	for i := range opts.Levels {
		l := &opts.Levels[i]
		l.BlockSize = 4 << 10
		l.FilterPolicy = bloom.FilterPolicy(10)
		l.FilterType = pebble.TableFilter
		l.EnsureDefaults()
	}
	if inMem {
		opts.FS = vfs.NewMem()
	}
	return opts
}

// NewPebbleDB opens a PebbleDB at dbdir with a ".pebbledb" suffix. inMem
// keeps everything in memory and skips fsync.
func NewPebbleDB(dbdir string, inMem bool) (*PebbleDB, error) {
	opts := pebbleOptions(inMem)
	defer opts.Cache.Unref()
	db, err := pebble.Open(dbdir+".pebbledb", opts)
	if err != nil {
		return nil, err
	}
	return &PebbleDB{db: db, wo: &pebble.WriteOptions{Sync: !inMem}}, nil
}

// Close closes the database
func (p *PebbleDB) Close() error { return p.db.Close() }

// Get returns a copy of the value stored under key, or ErrNotFound.
func (p *PebbleDB) Get(key []byte) ([]byte, error) {
	val, closer, err := p.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer closer.Close()
	return append([]byte(nil), val...), nil
}

// Set a key to value
func (p *PebbleDB) Set(key, value []byte) error { return p.db.Set(key, value, p.wo) }

type pebbleBatch struct {
	wb *pebble.Batch
	wo *pebble.WriteOptions
}

// NewBatch creates a batch writer
func (p *PebbleDB) NewBatch() BatchWriter { return &pebbleBatch{wb: p.db.NewBatch(), wo: p.wo} }

func (b *pebbleBatch) Set(key, value []byte) error { return b.wb.Set(key, value, nil) }
func (b *pebbleBatch) Cancel()                     { b.wb.Close() }

func (b *pebbleBatch) Commit() error {
	defer b.wb.Close()
	return b.wb.Commit(b.wo)
}

type pebbleIterator struct {
	iter *pebble.Iterator
}

// NewIterator scans [start, end). Either bound may be nil.
func (p *PebbleDB) NewIterator(start, end []byte) Iterator {
	iter := p.db.NewIter(&pebble.IterOptions{LowerBound: start, UpperBound: end})
	iter.First()
	return &pebbleIterator{iter: iter}
}

func (i *pebbleIterator) Next()       { i.iter.Next() }
func (i *pebbleIterator) Valid() bool { return i.iter.Valid() }
func (i *pebbleIterator) Close()      { i.iter.Close() }

func (i *pebbleIterator) Key() []byte {
	return append([]byte(nil), i.iter.Key()...)
}

func (i *pebbleIterator) Value() ([]byte, error) {
	return append([]byte(nil), i.iter.Value()...), nil
}
