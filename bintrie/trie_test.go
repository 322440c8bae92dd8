package bintrie

import (
	"testing"

	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/stretchr/testify/require"

	"github.com/heliosprotocol/go-helios/kvstore"
)

func newDirect(t *testing.T) *DirectStore {
	t.Helper()
	return NewDirectStore(kvstore.Wrap(memorydb.New()))
}

func TestGetOnEmptyTrie(t *testing.T) {
	s := newDirect(t)
	_, ok, err := Get(s, BlankHash, []byte("alice"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestPutAndGetSingleKey(t *testing.T) {
	s := newDirect(t)
	root, err := Put(s, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)
	require.NotEqual(t, BlankHash, root)

	got, ok, err := Get(s, root, []byte("alice"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v1"), got)
}

func TestOverwriteIsDeterministic(t *testing.T) {
	s := newDirect(t)
	root, err := Put(s, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)
	root2, err := Put(s, root, []byte("alice"), []byte("v2"))
	require.NoError(t, err)

	got, ok, err := Get(s, root2, []byte("alice"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v2"), got)

	// Writing the same key/value pair again from the blank root reproduces
	// the same root hash: the trie is a pure function of its contents.
	rootAgain, err := Put(s, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)
	require.Equal(t, root, rootAgain)
}

func TestTwoKeysDiverge(t *testing.T) {
	s := newDirect(t)
	root, err := Put(s, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)
	root, err = Put(s, root, []byte("bob"), []byte("v2"))
	require.NoError(t, err)

	got, ok, err := Get(s, root, []byte("alice"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v1"), got)

	got, ok, err = Get(s, root, []byte("bob"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v2"), got)

	_, ok, err = Get(s, root, []byte("carol"))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInsertionOrderIndependence(t *testing.T) {
	s := newDirect(t)
	keys := [][2][]byte{
		{[]byte("alice"), []byte("v1")},
		{[]byte("bob"), []byte("v2")},
		{[]byte("carol"), []byte("v3")},
	}

	rootA := BlankHash
	var err error
	for _, kv := range keys {
		rootA, err = Put(s, rootA, kv[0], kv[1])
		require.NoError(t, err)
	}

	s2 := newDirect(t)
	rootB := BlankHash
	for i := len(keys) - 1; i >= 0; i-- {
		rootB, err = Put(s2, rootB, keys[i][0], keys[i][1])
		require.NoError(t, err)
	}

	require.Equal(t, rootA, rootB)
}

func TestRootExists(t *testing.T) {
	s := newDirect(t)
	ok, err := RootExists(s, BlankHash)
	require.NoError(t, err)
	require.True(t, ok)

	root, err := Put(s, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)

	ok, err = RootExists(s, root)
	require.NoError(t, err)
	require.True(t, ok)

	var bogus Hash
	bogus[0] = 0xff
	ok, err = RootExists(s, bogus)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGetOnCorruptStoreIsFatal(t *testing.T) {
	s := newDirect(t)
	root, err := Put(s, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)
	root, err = Put(s, root, []byte("bob"), []byte("v2"))
	require.NoError(t, err)

	// Corrupting the store by deleting the root node must surface as an
	// error from Get, not as a false "not found".
	require.NoError(t, s.s.Delete(root.Bytes()))

	_, _, err = Get(s, root, []byte("alice"))
	require.Error(t, err)
}
