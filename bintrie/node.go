// Package bintrie implements the radix-2 (binary) authenticated trie
// described by the chain-head indexing subsystem: a content-addressed map
// keyed by fixed-width bit strings, whose root uniquely identifies the
// contents. Nodes are stored under the keccak-256 hash of their canonical
// (RLP) encoding, mirroring the node-hash addressing go-ethereum's own
// trie.Database uses, generalized here to a plain two-way branch instead of
// a 16-ary hex trie.
package bintrie

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"

	ctypes "github.com/heliosprotocol/go-helios/core/types"
)

// Hash is a trie node hash, or a trie root.
type Hash = ctypes.Hash

// BlankHash is the root of an empty trie.
var BlankHash = ctypes.BlankHash

// ErrCorruptNode is wrapped into a descriptive error whenever a node hash
// referenced by a trie (a branch child, or a root) cannot be resolved to
// stored bytes. Per the failure model, this is always fatal: a referenced
// node is presumed reachable, and a missing one means the store has lost
// data this trie depends on.
var ErrCorruptNode = errors.New("bintrie: missing or malformed trie node")

type nodeKind byte

const (
	kindBranch nodeKind = 0
	kindLeaf   nodeKind = 1
)

// bitPath is a packed sequence of Len bits, MSB-first, used both to
// represent the bits of a key still to be matched at a given trie depth and
// to store a leaf's key suffix.
type bitPath struct {
	Len   uint16
	Bytes []byte
}

func bitAt(bytesVal []byte, i int) int {
	byteIdx := i / 8
	return int((bytesVal[byteIdx] >> uint(7-i%8)) & 1)
}

// sliceBits extracts the `count` bits of key starting at bit offset
// `offset` (0 = most significant bit of key[0]) into a fresh bitPath.
func sliceBits(key []byte, offset, count int) bitPath {
	out := make([]byte, (count+7)/8)
	for i := 0; i < count; i++ {
		srcBit := offset + i
		byteIdx := srcBit / 8
		if byteIdx >= len(key) {
			continue
		}
		if (key[byteIdx]>>uint(7-srcBit%8))&1 != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return bitPath{Len: uint16(count), Bytes: out}
}

func (p bitPath) bitAt(i int) int {
	return bitAt(p.Bytes, i)
}

// dropFirst returns the bitPath with the first n bits removed.
func (p bitPath) dropFirst(n int) bitPath {
	newLen := int(p.Len) - n
	out := make([]byte, (newLen+7)/8)
	for i := 0; i < newLen; i++ {
		if p.bitAt(n+i) != 0 {
			out[i/8] |= 1 << uint(7-i%8)
		}
	}
	return bitPath{Len: uint16(newLen), Bytes: out}
}

func bitPathEqual(a, b bitPath) bool {
	return a.Len == b.Len && bytes.Equal(a.Bytes, b.Bytes)
}

// commonPrefixLen returns how many leading bits a and b share.
func commonPrefixLen(a, b bitPath) int {
	n := int(a.Len)
	if int(b.Len) < n {
		n = int(b.Len)
	}
	i := 0
	for i < n && a.bitAt(i) == b.bitAt(i) {
		i++
	}
	return i
}

type leafNode struct {
	Suffix bitPath
	Value  []byte
}

type branchNode struct {
	Left  Hash
	Right Hash
}

// leafPayload/branchPayload are the RLP wire shapes; a one-byte kind
// discriminant is prepended ahead of the RLP encoding itself so decoding
// doesn't need a length-sniffing heuristic to tell the two node types apart.
type leafPayload struct {
	SuffixLen uint16
	Suffix    []byte
	Value     []byte
}

type branchPayload struct {
	Left  Hash
	Right Hash
}

func encodeLeaf(n *leafNode) ([]byte, error) {
	enc, err := rlp.EncodeToBytes(&leafPayload{
		SuffixLen: n.Suffix.Len,
		Suffix:    n.Suffix.Bytes,
		Value:     n.Value,
	})
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(kindLeaf)}, enc...), nil
}

func encodeBranch(n *branchNode) ([]byte, error) {
	enc, err := rlp.EncodeToBytes(&branchPayload{Left: n.Left, Right: n.Right})
	if err != nil {
		return nil, err
	}
	return append([]byte{byte(kindBranch)}, enc...), nil
}

func decodeNode(data []byte) (interface{}, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty node encoding", ErrCorruptNode)
	}
	switch nodeKind(data[0]) {
	case kindLeaf:
		var p leafPayload
		if err := rlp.DecodeBytes(data[1:], &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptNode, err)
		}
		return &leafNode{Suffix: bitPath{Len: p.SuffixLen, Bytes: p.Suffix}, Value: p.Value}, nil
	case kindBranch:
		var p branchPayload
		if err := rlp.DecodeBytes(data[1:], &p); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptNode, err)
		}
		return &branchNode{Left: p.Left, Right: p.Right}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node kind %d", ErrCorruptNode, data[0])
	}
}

func hashOf(data []byte) Hash {
	return crypto.Keccak256Hash(data)
}

// NodeReader resolves a node hash to its stored encoding. A nil, nil
// return means the hash is unknown to the store.
type NodeReader interface {
	GetNode(h Hash) ([]byte, error)
}

// NodeWriter persists a node's encoding under its hash.
type NodeWriter interface {
	PutNode(h Hash, data []byte) error
}

// NodeStore is the full read/write surface a trie mutation needs.
type NodeStore interface {
	NodeReader
	NodeWriter
}

func loadNode(s NodeReader, h Hash) (interface{}, error) {
	data, err := s.GetNode(h)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %x", ErrCorruptNode, h)
	}
	return decodeNode(data)
}

func storeLeaf(s NodeWriter, suffix bitPath, value []byte) (Hash, error) {
	n := &leafNode{Suffix: suffix, Value: value}
	enc, err := encodeLeaf(n)
	if err != nil {
		return Hash{}, err
	}
	h := hashOf(enc)
	if err := s.PutNode(h, enc); err != nil {
		return Hash{}, err
	}
	return h, nil
}

func storeBranch(s NodeWriter, left, right Hash) (Hash, error) {
	n := &branchNode{Left: left, Right: right}
	enc, err := encodeBranch(n)
	if err != nil {
		return Hash{}, err
	}
	h := hashOf(enc)
	if err := s.PutNode(h, enc); err != nil {
		return Hash{}, err
	}
	return h, nil
}
