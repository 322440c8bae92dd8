// Package params holds the compile-time, consensus-level constants the
// chain-head indexing subsystem is built against. Unlike mive's runtime
// node configuration, these are not flags: every node on a network must
// agree on them, and changing either is a hard fork.
package params

const (
	// WindowSeconds is the width of a chronological window and the spacing
	// between consecutive historical-ring entries.
	WindowSeconds = 1000

	// HistoryLen is the number of finalized historical roots retained
	// behind the current, in-progress window.
	HistoryLen = 20
)
