// Package types defines the primitive value types shared by the chain-head
// indexing subsystem: wallet addresses, block/trie hashes, and the
// wall-clock types used to key the historical ring and chronological window
// index.
package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// Address identifies a wallet, and therefore the chain it owns. Every
// wallet address owns exactly one chain; Address is the trie key the
// chain-head snapshot is built over.
type Address = common.Address

// Hash is a 32-byte content hash: a block hash when it values a chain head,
// or a trie node hash when it addresses trie storage.
type Hash = common.Hash

// RootHash identifies a snapshot trie by its root node hash.
type RootHash = common.Hash

// Timestamp is seconds since the UNIX epoch.
type Timestamp = uint64

// Window is a Timestamp aligned down to a WindowSeconds boundary.
type Window = uint64

// BlankHash is the sentinel root of an empty trie. It is the zero Hash, and
// is never produced by hashing any node this trie ever writes, since no
// node encodes to the empty byte string.
var BlankHash = Hash{}
