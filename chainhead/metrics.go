package chainhead

import "github.com/ethereum/go-ethereum/metrics"

// These gauges mirror the block of metrics.NewRegisteredGauge calls mive's
// core/blockchain.go registers for its own head/state counters: named,
// package-level, updated from the hot path rather than sampled out of
// band.
var (
	ringLenGauge      = metrics.NewRegisteredGauge("chainhead/ringlen", nil)
	latestWindowGauge = metrics.NewRegisteredGauge("chainhead/latestwindow", nil)
	windowSizeGauge   = metrics.NewRegisteredGauge("chainhead/window/size", nil)
)
