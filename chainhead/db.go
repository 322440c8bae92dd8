// Package chainhead implements the chain-head indexing subsystem: a
// persistent, versioned map from wallet address to the hash of that
// wallet's most recent block, a rolling historical ring of that map's
// roots, and a chronological index of block hashes per retained time
// window. It plays the role mive's core/headerchain.go plays for a single
// chain's header history, generalized to one independent chain per
// wallet address and indexed by wall-clock window instead of by block
// number.
package chainhead

import (
	"github.com/heliosprotocol/go-helios/bintrie"
	"github.com/heliosprotocol/go-helios/core/rawdb"
	ctypes "github.com/heliosprotocol/go-helios/core/types"
	"github.com/heliosprotocol/go-helios/kvstore"
)

// DB is a live handle onto a chain-head snapshot: a mutable root pointer
// plus a write buffer, mirroring mive's HeaderChain holding its current
// header behind an atomic.Value while delegating storage to chainDb.
type DB struct {
	store kvstore.Store
	trie  *bintrie.Cached
	root  ctypes.RootHash
	clock Clock
}

// Open creates a handle over an existing (or, if root is bintrie.BlankHash,
// empty) snapshot backed by store.
func Open(store kvstore.Store, root ctypes.RootHash, clock Clock) *DB {
	return &DB{
		store: store,
		trie:  bintrie.NewCached(store),
		root:  root,
		clock: clock,
	}
}

// Root returns the handle's current root hash.
func (h *DB) Root() ctypes.RootHash {
	return h.root
}

// SetHead buffers address -> blockHash in the snapshot trie. The write is
// visible to subsequent reads through this handle immediately, and to
// every other handle only once Commit succeeds.
func (h *DB) SetHead(address []byte, blockHash []byte) error {
	addr, err := validateAddress(address)
	if err != nil {
		return err
	}
	hash, err := validateHashBytes(blockHash)
	if err != nil {
		return err
	}
	newRoot, err := bintrie.Put(h.trie, h.root, addr.Bytes(), hash.Bytes())
	if err != nil {
		return wrapError(CorruptStore, "writing snapshot leaf", err)
	}
	h.root = newRoot
	return nil
}

// GetHead returns address's current head hash in this handle's snapshot,
// or found=false if the wallet has no recorded head yet.
func (h *DB) GetHead(address []byte) (hash ctypes.Hash, found bool, err error) {
	addr, err := validateAddress(address)
	if err != nil {
		return ctypes.Hash{}, false, err
	}
	data, ok, err := bintrie.Get(h.trie, h.root, addr.Bytes())
	if err != nil {
		return ctypes.Hash{}, false, wrapError(CorruptStore, "reading snapshot leaf", err)
	}
	if !ok {
		return ctypes.Hash{}, false, nil
	}
	hash.SetBytes(data)
	return hash, true, nil
}

// Commit flushes buffered trie writes to the store. If saveCurrent is
// set, it also records the resulting root as the current chain-head root
// and promotes it into the historical ring.
func (h *DB) Commit(saveCurrent bool) error {
	if err := h.trie.Commit(false); err != nil {
		return err
	}
	if !saveCurrent {
		return nil
	}
	if err := rawdb.WriteCurrentRootHash(h.store, h.root); err != nil {
		return err
	}
	return promoteCurrentToRing(h.store, h.clock, h.root)
}

// LoadLastPersisted opens a handle at the persisted current root, or at
// an empty snapshot if none has ever been written.
func LoadLastPersisted(store kvstore.Store, clock Clock) (*DB, error) {
	root, found, err := rawdb.ReadCurrentRootHash(store)
	if err != nil {
		return nil, err
	}
	if !found {
		root = bintrie.BlankHash
	}
	return Open(store, root, clock), nil
}

// GetHeadAt returns address's head hash as of the snapshot whose window
// equals timestamp (or, if no entry covers that exact window, as of the
// latest retained snapshot), or found=false if no ring entry is old
// enough to answer the query at all.
func GetHeadAt(store kvstore.Store, clock Clock, address []byte, timestamp ctypes.Timestamp) (hash ctypes.Hash, found bool, err error) {
	now := clock.Now()
	if err := validateTimestamp(timestamp, now); err != nil {
		return ctypes.Hash{}, false, err
	}
	ring, err := rawdb.ReadHistoricalRing(store)
	if err != nil {
		return ctypes.Hash{}, false, err
	}
	if len(ring) == 0 || timestamp < ring[0].Window {
		return ctypes.Hash{}, false, nil
	}
	entry := ring[len(ring)-1]
	for _, e := range ring {
		if e.Window == timestamp {
			entry = e
			break
		}
	}
	addr, err := validateAddress(address)
	if err != nil {
		return ctypes.Hash{}, false, err
	}
	direct := bintrie.NewDirectStore(store)
	data, ok, err := bintrie.Get(direct, entry.Root, addr.Bytes())
	if err != nil {
		return ctypes.Hash{}, false, wrapError(CorruptStore, "reading historical snapshot leaf", err)
	}
	if !ok {
		return ctypes.Hash{}, false, nil
	}
	hash.SetBytes(data)
	return hash, true, nil
}

// --- Exposed surface: the nine functions upstream components consume. ---

// SetChainHeadHash sets address's head to headHash on handle h and commits
// it as the new current root.
func SetChainHeadHash(h *DB, address []byte, headHash []byte) error {
	if err := h.SetHead(address, headHash); err != nil {
		return err
	}
	return h.Commit(true)
}

// GetChainHeadHash returns address's current head hash from the persisted
// snapshot.
func GetChainHeadHash(store kvstore.Store, clock Clock, address []byte) (ctypes.Hash, bool, error) {
	h, err := LoadLastPersisted(store, clock)
	if err != nil {
		return ctypes.Hash{}, false, err
	}
	return h.GetHead(address)
}

// GetChainHeadHashAtTimestamp is the exposed-surface name for GetHeadAt.
func GetChainHeadHashAtTimestamp(store kvstore.Store, clock Clock, address []byte, ts ctypes.Timestamp) (ctypes.Hash, bool, error) {
	return GetHeadAt(store, clock, address, ts)
}

// SaveCurrentRootHash promotes the persisted current root into the
// historical ring without changing it.
func SaveCurrentRootHash(store kvstore.Store, clock Clock) error {
	root, found, err := rawdb.ReadCurrentRootHash(store)
	if err != nil {
		return err
	}
	if !found {
		root = bintrie.BlankHash
	}
	return promoteCurrentToRing(store, clock, root)
}

// LoadFromSavedRootHash is the exposed-surface name for LoadLastPersisted.
func LoadFromSavedRootHash(store kvstore.Store, clock Clock) (*DB, error) {
	return LoadLastPersisted(store, clock)
}

// GetHistoricalRootHashes returns the persisted ring as (window, root)
// pairs, or found=false if no ring has ever been written.
func GetHistoricalRootHashes(store kvstore.Store) (entries []rawdb.RingEntry, found bool, err error) {
	ring, err := rawdb.ReadHistoricalRing(store)
	if err != nil {
		return nil, false, err
	}
	return ring, ring != nil, nil
}

// GetLatestTimestamp returns the ring's last (current, in-progress)
// window, or zero if no ring has ever been written.
func GetLatestTimestamp(store kvstore.Store) (ctypes.Timestamp, error) {
	ring, err := rawdb.ReadHistoricalRing(store)
	if err != nil {
		return 0, err
	}
	if len(ring) == 0 {
		return 0, nil
	}
	return ring[len(ring)-1].Window, nil
}
