package params

import "fmt"

// Version identifies the wire/storage format this build's chain-head
// subsystem implements. It exists for the same reason mive's ChainConfig
// carries a chain ID: two nodes must agree on it before their historical
// rings and trie encodings can be compared at all.
const Version = "chainhead/1"

// Description returns a human-readable summary of the protocol constants
// this build was compiled with, the way mive's ChainConfig.Description
// summarizes a network's fork schedule.
func Description() string {
	return fmt.Sprintf("%s (window=%ds, history=%d windows)", Version, WindowSeconds, HistoryLen)
}
