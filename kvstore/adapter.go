// Package kvstore adapts a go-ethereum ethdb.KeyValueStore onto the
// narrower, spec-shaped vocabulary (Get/Set/Delete/Contains) the chain-head
// indexing subsystem is written against. It is deliberately a thin
// pass-through, in the same spirit as mive's core/rawdb accessors wrapping
// ethdb.KeyValueWriter/Reader calls one-for-one.
package kvstore

import (
	"github.com/ethereum/go-ethereum/ethdb"
)

// Store is the opaque byte->byte persistent map the chain-head subsystem is
// built on. An ethdb.KeyValueStore (ethdb/memorydb.New() in tests, or any
// on-disk ethdb.Database) satisfies it through Wrap.
type Store interface {
	Get(key []byte) ([]byte, error)
	Set(key []byte, value []byte) error
	Delete(key []byte) error
	Contains(key []byte) (bool, error)
}

// Adapter renames an ethdb.KeyValueStore's methods onto the Store
// vocabulary used throughout this module.
type Adapter struct {
	db ethdb.KeyValueStore
}

// Wrap returns a Store backed by db.
func Wrap(db ethdb.KeyValueStore) *Adapter {
	return &Adapter{db: db}
}

func (a *Adapter) Get(key []byte) ([]byte, error) {
	ok, err := a.db.Has(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return a.db.Get(key)
}

func (a *Adapter) Set(key []byte, value []byte) error {
	return a.db.Put(key, value)
}

func (a *Adapter) Delete(key []byte) error {
	return a.db.Delete(key)
}

func (a *Adapter) Contains(key []byte) (bool, error) {
	return a.db.Has(key)
}

// Underlying returns the wrapped ethdb.KeyValueStore, for callers that need
// the richer interface directly.
func (a *Adapter) Underlying() ethdb.KeyValueStore {
	return a.db
}
