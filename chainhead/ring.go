package chainhead

import (
	"github.com/heliosprotocol/go-helios/bintrie"
	"github.com/heliosprotocol/go-helios/core/rawdb"
	ctypes "github.com/heliosprotocol/go-helios/core/types"
	"github.com/heliosprotocol/go-helios/kvstore"
)

// promoteCurrentToRing advances the persisted historical ring so its tail
// covers the caller's current in-progress window with root, synthesizing
// any skipped windows along the way, then prunes chronological windows
// that fell out of retention. It is the single place ring-shape invariants
// are enforced: strictly increasing windows spaced by WindowSeconds,
// length bounded by HistoryLen+1, tail window always floor(now/W)*W + W.
func promoteCurrentToRing(store kvstore.Store, clock Clock, root ctypes.RootHash) error {
	now := clock.Now()
	lastFinished := (now / WindowSeconds) * WindowSeconds
	current := lastFinished + WindowSeconds

	ring, err := rawdb.ReadHistoricalRing(store)
	if err != nil {
		return err
	}

	hadPriorRing := len(ring) > 0
	var oldOldest ctypes.Window
	if hadPriorRing {
		oldOldest = ring[0].Window
	}

	switch {
	case len(ring) == 0:
		ring = []rawdb.RingEntry{{Window: current, Root: root}}

	default:
		latest := ring[len(ring)-1].Window
		switch {
		case latest > lastFinished:
			// Still inside the same in-progress window: overwrite the tail
			// rather than append, per the canonical resolution of the
			// overwrite-vs-append ambiguity.
			ring[len(ring)-1].Root = root

		case latest+HistoryLen*WindowSeconds < now:
			// Offline longer than retention: the old ring carries no
			// window close enough to be useful, so discard it and densely
			// synthesize fresh coverage back HistoryLen windows.
			tailRoot := ring[len(ring)-1].Root
			start := lastFinished - (HistoryLen-1)*WindowSeconds
			ring = make([]rawdb.RingEntry, 0, int(HistoryLen)+1)
			for w := start; w <= lastFinished; w += WindowSeconds {
				ring = append(ring, rawdb.RingEntry{Window: w, Root: tailRoot})
			}
			ring = append(ring, rawdb.RingEntry{Window: current, Root: root})

		default:
			tailRoot := ring[len(ring)-1].Root
			for w := latest + WindowSeconds; w <= lastFinished; w += WindowSeconds {
				ring = append(ring, rawdb.RingEntry{Window: w, Root: tailRoot})
			}
			ring = append(ring, rawdb.RingEntry{Window: current, Root: root})
			if len(ring) > int(HistoryLen)+1 {
				ring = ring[len(ring)-(int(HistoryLen)+1):]
			}
		}
	}

	if hadPriorRing {
		// Chronological window w holds the blocks of the snapshot the ring
		// records at window w+WindowSeconds, so dropping ring windows
		// [oldOldest, newOldest) drops chronological windows one step earlier.
		newOldest := ring[0].Window
		for w := oldOldest - WindowSeconds; w < newOldest-WindowSeconds; w += WindowSeconds {
			if err := rawdb.DeleteChronologicalWindow(store, w); err != nil {
				return err
			}
		}
	}

	ringLenGauge.Update(int64(len(ring)))
	latestWindowGauge.Update(int64(ring[len(ring)-1].Window))

	return rawdb.WriteHistoricalRing(store, ring)
}

// AddBlockHashToTimestamp retroactively rewrites every retained historical
// snapshot from ts's window forward to reflect address's new head, for a
// block whose own timestamp places it in an already-finalized window. The
// current (in-progress) entry is left untouched; callers are expected to
// have already called SetChainHeadHash for it.
func AddBlockHashToTimestamp(store kvstore.Store, clock Clock, address []byte, headHash []byte, ts ctypes.Timestamp) error {
	now := clock.Now()
	if err := validateTimestamp(ts, now); err != nil {
		return err
	}
	addr, err := validateAddress(address)
	if err != nil {
		return err
	}
	hash, err := validateHashBytes(headHash)
	if err != nil {
		return err
	}

	// The ring must be current before we can locate ts within it.
	current, found, err := rawdb.ReadCurrentRootHash(store)
	if err != nil {
		return err
	}
	if !found {
		current = bintrie.BlankHash
	}
	if err := promoteCurrentToRing(store, clock, current); err != nil {
		return err
	}

	ring, err := rawdb.ReadHistoricalRing(store)
	if err != nil {
		return err
	}
	if len(ring) == 0 {
		return nil
	}

	lastFinished := (now / WindowSeconds) * WindowSeconds

	// The source notes that this index computation is ambiguous for
	// ts < ring[0].Window; per the canonical resolution we floor and
	// clamp the starting window to the ring's oldest retained window.
	startTs := ts
	if startTs < ring[0].Window {
		startTs = ring[0].Window
	}

	for i := range ring {
		w := ring[i].Window
		if w < startTs || w > lastFinished {
			continue
		}
		direct := bintrie.NewDirectStore(store)
		newRoot, err := bintrie.Put(direct, ring[i].Root, addr.Bytes(), hash.Bytes())
		if err != nil {
			return wrapError(CorruptStore, "rewriting historical snapshot", err)
		}
		ring[i].Root = newRoot
	}

	return rawdb.WriteHistoricalRing(store, ring)
}
