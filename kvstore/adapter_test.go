package kvstore

import (
	"testing"

	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/stretchr/testify/require"
)

func TestAdapterRoundTrip(t *testing.T) {
	s := Wrap(memorydb.New())

	ok, err := s.Contains([]byte("k"))
	require.NoError(t, err)
	require.False(t, ok)

	got, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Set([]byte("k"), []byte("v")))

	ok, err = s.Contains([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)

	got, err = s.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), got)

	require.NoError(t, s.Delete([]byte("k")))

	got, err = s.Get([]byte("k"))
	require.NoError(t, err)
	require.Nil(t, got)
}
