package kvstore

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned by Get when the key is absent, whatever the backend.
var ErrNotFound = errors.New("kvstore: key not found")

// KVStore is a simple KV API
type KVStore interface {
	Get([]byte) ([]byte, error)
	Set([]byte, []byte) error

	NewIterator(start, end []byte) Iterator

	NewBatch() BatchWriter
	Close() error
}

// BatchWriter is a set of mutations applied atomically on Commit
type BatchWriter interface {
	Set(key, value []byte) error

	Commit() error
	Cancel()
}

// Iterator scans a range of KVs
type Iterator interface {
	Next()
	Key() []byte
	Value() ([]byte, error)
	Valid() bool
	Close()
}

type kvFactory interface {
	New(dbdir string, inMem bool) (KVStore, error)
}

var kvImpls = make(map[string]kvFactory)

// NewKVStore returns a KVStore implementation matching the provided implementation name
func NewKVStore(impl string, dbdir string, inMem bool) (KVStore, error) {
	factory, ok := kvImpls[impl]
	if !ok {
		return nil, fmt.Errorf("KVStore impl %s not found", impl)
	}
	return factory.New(dbdir, inMem)
}

// Implementations lists the registered backend names in sorted order.
func Implementations() []string {
	names := make([]string, 0, len(kvImpls))
	for name := range kvImpls {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Registered reports whether impl names a registered backend.
func Registered(impl string) bool {
	_, ok := kvImpls[impl]
	return ok
}

// PrefixEnd returns the smallest key greater than every key that starts with prefix,
// or nil when no such key exists (prefix is all 0xff).
func PrefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
