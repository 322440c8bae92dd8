package bintrie

import (
	"testing"

	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/stretchr/testify/require"

	"github.com/heliosprotocol/go-helios/kvstore"
)

func TestCachedBuffersUntilCommit(t *testing.T) {
	backing := kvstore.Wrap(memorydb.New())
	c := NewCached(backing)

	root, err := Put(c, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)
	require.Greater(t, c.Pending(), 0)

	// Not yet committed: the underlying store has nothing.
	ok, err := backing.Contains(root.Bytes())
	require.NoError(t, err)
	require.False(t, ok)

	// But reads through the cache still see the buffered write.
	got, found, err := Get(c, root, []byte("alice"))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("v1"), got)

	require.NoError(t, c.Commit(false))
	require.Equal(t, 0, c.Pending())

	ok, err = backing.Contains(root.Bytes())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestCachedResetInvalidatesBufferAndCache(t *testing.T) {
	backing := kvstore.Wrap(memorydb.New())
	c := NewCached(backing)

	root, err := Put(c, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)

	c.Reset()
	require.Equal(t, 0, c.Pending())

	// The node was never committed, and the buffer/cache were wiped, so it
	// is gone even though we still hold its hash.
	_, found, err := Get(c, root, []byte("alice"))
	require.Error(t, err)
	require.False(t, found)
}

func TestCachedReadThroughToStore(t *testing.T) {
	backing := kvstore.Wrap(memorydb.New())
	direct := NewDirectStore(backing)
	root, err := Put(direct, BlankHash, []byte("alice"), []byte("v1"))
	require.NoError(t, err)

	c := NewCached(backing)
	got, found, err := Get(c, root, []byte("alice"))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, []byte("v1"), got)
}
