package indexer

import (
	"github.com/heliosprotocol/go-helios/core/rawdb"
	ctypes "github.com/heliosprotocol/go-helios/core/types"
)

// DivergencePoint compares two nodes' historical rings, given in ascending
// window order, and returns the most recent window both agree on (same
// root hash), the way a synchronizer uses this subsystem to find where
// two fleets' chain-head views last matched before walking forward to
// resync. found is false if no window present in both rings carries the
// same root in both.
func DivergencePoint(local, remote []rawdb.RingEntry) (window ctypes.Window, found bool) {
	remoteByWindow := make(map[ctypes.Window]ctypes.RootHash, len(remote))
	for _, e := range remote {
		remoteByWindow[e.Window] = e.Root
	}

	for i := len(local) - 1; i >= 0; i-- {
		e := local[i]
		if remoteRoot, ok := remoteByWindow[e.Window]; ok && remoteRoot == e.Root {
			return e.Window, true
		}
	}
	return 0, false
}
