package chainhead

import (
	"testing"

	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/stretchr/testify/require"

	"github.com/heliosprotocol/go-helios/kvstore"
)

// Invariant 6: every retained window's entries fall in [w, w+W) and stay
// sorted ascending by timestamp.
func TestChronologicalWindowBoundsAndOrder(t *testing.T) {
	store := kvstore.Wrap(memorydb.New())
	clock := NewFakeClock(10_000)

	require.NoError(t, AddBlockHashToChronologicalWindow(store, clock, hashN(1), 11_000))
	require.NoError(t, AddBlockHashToChronologicalWindow(store, clock, hashN(2), 11_999))
	require.NoError(t, AddBlockHashToChronologicalWindow(store, clock, hashN(3), 11_500))

	entries, found, err := LoadChronologicalWindow(store, 11_000)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, entries, 3)
	for _, e := range entries {
		require.GreaterOrEqual(t, e.Timestamp, uint64(11_000))
		require.Less(t, e.Timestamp, uint64(12_000))
	}
	for i := 1; i < len(entries); i++ {
		require.LessOrEqual(t, entries[i-1].Timestamp, entries[i].Timestamp)
	}
}

func TestChronologicalWindowTooOldIsIgnored(t *testing.T) {
	store := kvstore.Wrap(memorydb.New())
	clock := NewFakeClock(10_000)

	// now - HISTORY_LEN*W = 10_000 - 20_000, so any non-negative timestamp
	// here is within retention; use a clock far enough forward instead.
	clock.Set(100_000)
	require.NoError(t, AddBlockHashToChronologicalWindow(store, clock, hashN(1), 1_000))

	_, found, err := LoadChronologicalWindow(store, 1_000)
	require.NoError(t, err)
	require.False(t, found)
}

func TestChronologicalWindowDeletedOnRetentionRollover(t *testing.T) {
	store := kvstore.Wrap(memorydb.New())
	clock := NewFakeClock(1_000)

	require.NoError(t, AddBlockHashToChronologicalWindow(store, clock, hashN(1), 1_000))
	require.NoError(t, SaveCurrentRootHash(store, clock))

	entries, found, err := LoadChronologicalWindow(store, 1_000)
	require.NoError(t, err)
	require.True(t, found)
	require.Len(t, entries, 1)

	clock.Set(1_000 + (HistoryLen+2)*WindowSeconds)
	require.NoError(t, SaveCurrentRootHash(store, clock))

	_, found, err = LoadChronologicalWindow(store, 1_000)
	require.NoError(t, err)
	require.False(t, found)
}

func TestWindowAlignmentValidation(t *testing.T) {
	store := kvstore.Wrap(memorydb.New())
	_, _, err := LoadChronologicalWindow(store, 1_001)
	require.Error(t, err)
	require.True(t, IsKind(err, InvalidHeadRootTimestamp))

	err = DeleteChronologicalWindow(store, 1_001)
	require.Error(t, err)
	require.True(t, IsKind(err, InvalidHeadRootTimestamp))
}
