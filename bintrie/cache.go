package bintrie

import (
	"github.com/ethereum/go-ethereum/common/lru"

	"github.com/heliosprotocol/go-helios/kvstore"
)

// defaultCacheSize bounds the read-through node cache, the same way
// mive's HeaderChain bounds its header and number caches rather than
// letting either grow unboundedly.
const defaultCacheSize = 2048

// Cached is a NodeStore that buffers writes in memory until Commit flushes
// them to the underlying store, and memoizes reads of both buffered and
// already-persisted nodes behind a small LRU. It is the batched/cached
// trie wrapper: callers build up a root via repeated Put calls against a
// single Cached instance, then Commit once to persist every node touched
// along the way in one pass.
type Cached struct {
	store   kvstore.Store
	pending map[Hash][]byte
	cache   *lru.Cache[Hash, []byte]
}

// NewCached returns a Cached wrapper over store.
func NewCached(store kvstore.Store) *Cached {
	return &Cached{
		store:   store,
		pending: make(map[Hash][]byte),
		cache:   lru.NewCache[Hash, []byte](defaultCacheSize),
	}
}

func (c *Cached) GetNode(h Hash) ([]byte, error) {
	if data, ok := c.cache.Get(h); ok {
		return data, nil
	}
	if data, ok := c.pending[h]; ok {
		c.cache.Add(h, data)
		return data, nil
	}
	data, err := c.store.Get(h.Bytes())
	if err != nil {
		return nil, err
	}
	if data != nil {
		c.cache.Add(h, data)
	}
	return data, nil
}

func (c *Cached) PutNode(h Hash, data []byte) error {
	c.pending[h] = data
	c.cache.Add(h, data)
	return nil
}

// Pending reports how many node writes are buffered and not yet committed.
func (c *Cached) Pending() int {
	return len(c.pending)
}

// Commit flushes every buffered node write to the underlying store.
// applyDeletes mirrors the commit(apply_deletes) signature the cached trie
// wrapper is specified with; the trie never deletes a node once written
// (old roots stay addressable for the historical ring), so there is
// nothing for it to do yet. It is kept as a parameter rather than dropped
// so a future pruning pass has a place to hang its flag without changing
// every call site.
func (c *Cached) Commit(applyDeletes bool) error {
	for h, data := range c.pending {
		if err := c.store.Set(h.Bytes(), data); err != nil {
			return err
		}
	}
	c.pending = make(map[Hash][]byte)
	return nil
}

// Reset discards buffered writes and invalidates the read cache. Callers
// reopening the wrapper at a different root call this first, so stale
// entries from the previous root's subtree can't leak into the new one.
func (c *Cached) Reset() {
	c.pending = make(map[Hash][]byte)
	c.cache = lru.NewCache[Hash, []byte](defaultCacheSize)
}
