package chainhead

import (
	"github.com/holiman/uint256"

	ctypes "github.com/heliosprotocol/go-helios/core/types"
)

// validateAddress fails with InvalidAddress unless addr is exactly 20
// bytes. common.Address is a fixed-size array, so this only matters for
// call sites that build one from an untrusted byte slice first; it exists
// so that boundary is checked in one place.
func validateAddress(addr []byte) (ctypes.Address, error) {
	var out ctypes.Address
	if len(addr) != len(out) {
		return out, newError(InvalidAddress, "address must be 20 bytes")
	}
	copy(out[:], addr)
	return out, nil
}

// validateHashBytes fails with InvalidBytes unless h is exactly 32 bytes.
func validateHashBytes(h []byte) (ctypes.Hash, error) {
	var out ctypes.Hash
	if len(h) != len(out) {
		return out, newError(InvalidBytes, "hash must be 32 bytes")
	}
	copy(out[:], h)
	return out, nil
}

// validateTimestamp fails with InvalidHeadRootTimestamp unless ts is not
// in the future and is aligned to WindowSeconds.
func validateTimestamp(ts, now ctypes.Timestamp) error {
	if ts > now {
		return newError(InvalidHeadRootTimestamp, "timestamp is in the future")
	}
	if ts%WindowSeconds != 0 {
		return newError(InvalidHeadRootTimestamp, "timestamp is not aligned to WindowSeconds")
	}
	return nil
}

// ParseUint256Timestamp parses a decimal or 0x-prefixed hex string into a
// Timestamp, failing with InvalidUint256 if it does not fit in 256 bits or
// overflows a uint64 once validated. This is the operator CLI's entry
// point for a user-supplied timestamp argument, the same defensive
// boundary-parsing role go-ethereum's own CLI flags give hexutil.Big.
func ParseUint256Timestamp(s string) (ctypes.Timestamp, error) {
	var v uint256.Int
	if err := v.SetFromDecimal(s); err != nil {
		if parsed, perr := parseUint256Hex(s); perr == nil {
			v = parsed
		} else {
			return 0, wrapError(InvalidUint256, "could not parse integer", err)
		}
	}
	if !v.IsUint64() {
		return 0, newError(InvalidUint256, "value exceeds a 64-bit timestamp")
	}
	return ctypes.Timestamp(v.Uint64()), nil
}

func parseUint256Hex(s string) (uint256.Int, error) {
	var v uint256.Int
	err := v.SetFromHex(s)
	return v, err
}
