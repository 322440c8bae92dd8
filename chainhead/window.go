package chainhead

import (
	"github.com/heliosprotocol/go-helios/core/rawdb"
	ctypes "github.com/heliosprotocol/go-helios/core/types"
	"github.com/heliosprotocol/go-helios/kvstore"
)

// AddBlockHashToChronologicalWindow records (ts, blockHash) in the
// chronological index for ts's window, keeping the window's entries
// sorted ascending by timestamp. Windows older than the retention horizon
// are silently ignored: they can no longer affect any retained historical
// query.
func AddBlockHashToChronologicalWindow(store kvstore.Store, clock Clock, blockHash []byte, ts ctypes.Timestamp) error {
	hash, err := validateHashBytes(blockHash)
	if err != nil {
		return err
	}
	now := clock.Now()
	if ts+HistoryLen*WindowSeconds <= now {
		return nil
	}
	w := (ts / WindowSeconds) * WindowSeconds

	entries, err := rawdb.ReadChronologicalWindow(store, w)
	if err != nil {
		return err
	}
	entries = insertSortedByTimestamp(entries, rawdb.WindowEntry{Timestamp: ts, Hash: hash})

	windowSizeGauge.Update(int64(len(entries)))
	return rawdb.WriteChronologicalWindow(store, w, entries)
}

// insertSortedByTimestamp inserts e keeping entries sorted ascending by
// timestamp, tie-breaking equal timestamps by insertion order. Scans from
// the tail since most insertions are for recent timestamps arriving near
// the end of the list.
func insertSortedByTimestamp(entries []rawdb.WindowEntry, e rawdb.WindowEntry) []rawdb.WindowEntry {
	i := len(entries)
	for i > 0 && entries[i-1].Timestamp > e.Timestamp {
		i--
	}
	entries = append(entries, rawdb.WindowEntry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = e
	return entries
}

// LoadChronologicalWindow returns window w's entries, or found=false if it
// has none (or has been deleted).
func LoadChronologicalWindow(store kvstore.Store, w ctypes.Window) (entries []rawdb.WindowEntry, found bool, err error) {
	if w%WindowSeconds != 0 {
		return nil, false, newError(InvalidHeadRootTimestamp, "window is not aligned to WindowSeconds")
	}
	entries, err = rawdb.ReadChronologicalWindow(store, w)
	if err != nil {
		return nil, false, err
	}
	return entries, entries != nil, nil
}

// DeleteChronologicalWindow removes window w's chronological index.
func DeleteChronologicalWindow(store kvstore.Store, w ctypes.Window) error {
	if w%WindowSeconds != 0 {
		return newError(InvalidHeadRootTimestamp, "window is not aligned to WindowSeconds")
	}
	return rawdb.DeleteChronologicalWindow(store, w)
}
