package bintrie

import "github.com/heliosprotocol/go-helios/kvstore"

// DirectStore is a NodeStore that writes through to a kvstore.Store
// immediately, with no buffering. Trie nodes are keyed directly by their
// 32-byte hash, sharing the underlying store's keyspace with the
// chain-head subsystem's own reserved keys the same way go-ethereum shares
// one physical database between its hash-keyed trie nodes and its
// prefix-keyed rawdb accessors: the reserved keys in core/rawdb are never 32 bytes
// long, so the two keyspaces cannot collide.
type DirectStore struct {
	s kvstore.Store
}

// NewDirectStore wraps s for unbuffered trie node storage.
func NewDirectStore(s kvstore.Store) *DirectStore {
	return &DirectStore{s: s}
}

func (d *DirectStore) GetNode(h Hash) ([]byte, error) {
	return d.s.Get(h.Bytes())
}

func (d *DirectStore) PutNode(h Hash, data []byte) error {
	return d.s.Set(h.Bytes(), data)
}
