// Package rawdb implements the reserved-key accessors the chain-head
// indexing subsystem persists its non-trie state under: the current root
// pointer, the historical ring, and the chronological window index. It
// plays the same role here that mive's core/rawdb played for headers:
// a thin, byte-exact translation between Go values and KV store entries,
// with RLP doing the canonical encoding on either side.
package rawdb

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"

	ctypes "github.com/heliosprotocol/go-helios/core/types"
	"github.com/heliosprotocol/go-helios/kvstore"
)

// ErrMalformedValue is returned when a reserved key decodes to something
// other than the shape this package itself wrote. Per the failure model,
// this is always fatal: it means the store holds data this subsystem
// produced, but cannot make sense of it anymore.
var ErrMalformedValue = errors.New("rawdb: malformed chain-head value")

var (
	currentRootKey    = []byte("v1:current_chain_head_root")
	historicalRingKey = []byte("v1:historical_chain_head_roots")
	windowKeyPrefix   = []byte("v1:chronological_block_window:")
)

// chronologicalWindowKey formats the reserved key for a given window's
// chronological index, byte-exactly: the prefix followed by the window's
// big-endian uint64 encoding.
func chronologicalWindowKey(window ctypes.Window) []byte {
	key := make([]byte, len(windowKeyPrefix)+8)
	copy(key, windowKeyPrefix)
	binary.BigEndian.PutUint64(key[len(windowKeyPrefix):], window)
	return key
}

// RingEntry is one (window, root) pair of the historical ring, in its
// canonical RLP shape: a uint64 encodes big-endian with no leading zero
// bytes, matching the integer encoding the reserved-key scheme requires.
type RingEntry struct {
	Window ctypes.Window
	Root   ctypes.RootHash
}

// WindowEntry is one (timestamp, block hash) pair of a chronological
// window, in its canonical RLP shape.
type WindowEntry struct {
	Timestamp ctypes.Timestamp
	Hash      ctypes.Hash
}

// ReadCurrentRootHash returns the persisted current chain-head root, or
// found=false if the key has never been written.
func ReadCurrentRootHash(db kvstore.Store) (root ctypes.RootHash, found bool, err error) {
	data, err := db.Get(currentRootKey)
	if err != nil {
		return ctypes.RootHash{}, false, err
	}
	if data == nil {
		return ctypes.RootHash{}, false, nil
	}
	if len(data) != len(ctypes.RootHash{}) {
		return ctypes.RootHash{}, false, fmt.Errorf("%w: current root has length %d", ErrMalformedValue, len(data))
	}
	root.SetBytes(data)
	return root, true, nil
}

// WriteCurrentRootHash persists root as the current chain-head root.
func WriteCurrentRootHash(db kvstore.Store, root ctypes.RootHash) error {
	return db.Set(currentRootKey, root.Bytes())
}

// ReadHistoricalRing returns the persisted ring in ascending-window order,
// or nil, nil if it has never been written.
func ReadHistoricalRing(db kvstore.Store) ([]RingEntry, error) {
	data, err := db.Get(historicalRingKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var ring []RingEntry
	if err := rlp.DecodeBytes(data, &ring); err != nil {
		return nil, fmt.Errorf("%w: historical ring: %v", ErrMalformedValue, err)
	}
	return ring, nil
}

// WriteHistoricalRing persists ring, which must already be in ascending
// window order; this accessor does not sort.
func WriteHistoricalRing(db kvstore.Store, ring []RingEntry) error {
	data, err := rlp.EncodeToBytes(ring)
	if err != nil {
		log.Crit("Failed to RLP encode historical ring", "err", err)
	}
	return db.Set(historicalRingKey, data)
}

// ReadChronologicalWindow returns the ordered (timestamp, hash) pairs
// recorded for window, or nil, nil if that window has no entries.
func ReadChronologicalWindow(db kvstore.Store, window ctypes.Window) ([]WindowEntry, error) {
	data, err := db.Get(chronologicalWindowKey(window))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	var entries []WindowEntry
	if err := rlp.DecodeBytes(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: chronological window %d: %v", ErrMalformedValue, window, err)
	}
	return entries, nil
}

// WriteChronologicalWindow persists entries under window, which must
// already be sorted ascending by timestamp.
func WriteChronologicalWindow(db kvstore.Store, window ctypes.Window, entries []WindowEntry) error {
	data, err := rlp.EncodeToBytes(entries)
	if err != nil {
		log.Crit("Failed to RLP encode chronological window", "err", err)
	}
	return db.Set(chronologicalWindowKey(window), data)
}

// DeleteChronologicalWindow removes window's chronological index entirely,
// called once its window falls out of the retained ring.
func DeleteChronologicalWindow(db kvstore.Store, window ctypes.Window) error {
	return db.Delete(chronologicalWindowKey(window))
}
