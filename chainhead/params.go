package chainhead

import (
	ctypes "github.com/heliosprotocol/go-helios/core/types"
	"github.com/heliosprotocol/go-helios/params"
)

// WindowSeconds and HistoryLen mirror the compile-time protocol constants
// in package params. They are package-level variables rather than Go
// consts purely so the scenario tests in this package can exercise the
// specification's own small worked-example numbers (W=1000, HISTORY_LEN=4)
// instead of the production retention window; production code has no
// reason to, and never does, change them after process start.
var (
	WindowSeconds = ctypes.Timestamp(params.WindowSeconds)
	HistoryLen    = ctypes.Timestamp(params.HistoryLen)
)
