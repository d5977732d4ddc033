package kvstore

import (
	"bytes"
	"errors"

	"github.com/dgraph-io/badger/v3"
)

func init() {
	kvImpls["badger"] = badgerDBFactory{}
	kvImpls["badgerdb"] = badgerDBFactory{}
}

type badgerDBFactory struct{}

func (badgerDBFactory) New(dbdir string, inMem bool) (KVStore, error) {
	return NewBadgerDB(dbdir, inMem)
}

// BadgerDB implements KVStore
type BadgerDB struct {
	bdb *badger.DB
}

// NewBadgerDB opens a BadgerDB in the specified directory
func NewBadgerDB(dbdir string, inMem bool) (*BadgerDB, error) {
	var opts badger.Options
	if inMem {
		// badger refuses a directory in disk-less mode
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dbdir + ".badgerdb").WithSyncWrites(true)
	}
	opts = opts.WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &BadgerDB{bdb: db}, nil
}

// Close closes the database
func (b *BadgerDB) Close() error {
	return b.bdb.Close()
}

// Get a key
func (b *BadgerDB) Get(key []byte) ([]byte, error) {
	var ret []byte
	err := b.bdb.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		ret, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return ret, err
}

// Set a key to value
func (b *BadgerDB) Set(key, value []byte) error {
	return b.bdb.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// badgerTxn is a batch of writes using the badger.Txn API
type badgerTxn struct {
	txn *badger.Txn
}

// NewBatch creates a batch writer
func (b *BadgerDB) NewBatch() BatchWriter {
	return &badgerTxn{txn: b.bdb.NewTransaction(true)}
}

func (t *badgerTxn) Set(key, value []byte) error { return t.txn.Set(key, value) }
func (t *badgerTxn) Commit() error               { return t.txn.Commit() }
func (t *badgerTxn) Cancel()                     { t.txn.Discard() }

type badgerIterator struct {
	txn  *badger.Txn
	iter *badger.Iterator
	end  []byte
}

// NewIterator scans a range: start and end are optional (set to nil/empty otherwise)
func (b *BadgerDB) NewIterator(start, end []byte) Iterator {
	txn := b.bdb.NewTransaction(false)
	iter := txn.NewIterator(badger.DefaultIteratorOptions)
	iter.Rewind()
	if len(start) != 0 {
		iter.Seek(start)
	}
	return &badgerIterator{txn: txn, iter: iter, end: end}
}

func (i *badgerIterator) Next()                  { i.iter.Next() }
func (i *badgerIterator) Key() []byte            { return i.iter.Item().KeyCopy(nil) }
func (i *badgerIterator) Value() ([]byte, error) { return i.iter.Item().ValueCopy(nil) }

func (i *badgerIterator) Close() {
	i.iter.Close()
	i.txn.Discard()
}

func (i *badgerIterator) Valid() bool {
	if !i.iter.Valid() {
		return false
	}
	if len(i.end) != 0 {
		if bytes.Compare(i.iter.Item().Key(), i.end) >= 0 {
			return false
		}
	}
	return true
}
