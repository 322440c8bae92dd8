// Package indexer wires the chain-head indexing subsystem into a running
// node: it owns the on-disk database handle and the single live
// ChainHeadDB writer, the way mive.Mive owned the chain database and
// handed out access to it. Everything EVM-, p2p-, and RPC-shaped that
// mive's backend also carried is out of scope here; this is strictly the
// chain-head subsystem's lifecycle.
package indexer

import (
	"github.com/ethereum/go-ethereum/ethdb/leveldb"
	"github.com/ethereum/go-ethereum/log"

	"github.com/heliosprotocol/go-helios/chainhead"
	"github.com/heliosprotocol/go-helios/indexer/indexerconfig"
	"github.com/heliosprotocol/go-helios/kvstore"
)

// Indexer owns the chain-head database for a running node. Per the
// concurrency model, exactly one goroutine is expected to drive mutation
// through it at a time; Indexer does not itself enforce that with a lock,
// the same documentation-only discipline mive's BlockChain.chainmu
// describes.
type Indexer struct {
	config  indexerconfig.Config
	store   kvstore.Store
	closeDB func() error
	clock   chainhead.Clock
}

// New opens (or creates) the chain-head database under config.DataDir.
func New(config indexerconfig.Config) (*Indexer, error) {
	db, err := leveldb.New(config.DataDir, config.DatabaseCache, config.DatabaseHandles, "chainhead", false)
	if err != nil {
		return nil, err
	}
	return &Indexer{
		config:  config,
		store:   kvstore.Wrap(db),
		closeDB: db.Close,
		clock:   chainhead.SystemClock{},
	}, nil
}

// Start performs startup repair: promote_current_to_ring is idempotent
// with respect to a stale ring tail, so running it once here repairs any
// ring left pointing at a prior root by a crash between a snapshot commit
// and the ring update (see the cancellation note in the concurrency
// model).
func (idx *Indexer) Start() error {
	log.Info("Starting chain-head indexer", "datadir", idx.config.DataDir)
	return chainhead.SaveCurrentRootHash(idx.store, idx.clock)
}

// Stop closes the underlying database.
func (idx *Indexer) Stop() error {
	log.Info("Stopping chain-head indexer")
	return idx.closeDB()
}

// Store returns the indexer's underlying KV store, for callers (such as
// the synchronizer) that need direct access to the exposed chain-head
// surface in package chainhead.
func (idx *Indexer) Store() kvstore.Store {
	return idx.store
}

// Clock returns the indexer's wall clock.
func (idx *Indexer) Clock() chainhead.Clock {
	return idx.clock
}

// OpenHead opens a live, mutable handle onto the persisted chain-head
// snapshot, ready for SetHead/Commit calls by the single writer.
func (idx *Indexer) OpenHead() (*chainhead.DB, error) {
	return chainhead.LoadLastPersisted(idx.store, idx.clock)
}
