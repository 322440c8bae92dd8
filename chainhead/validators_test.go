package chainhead

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUint256TimestampDecimal(t *testing.T) {
	ts, err := ParseUint256Timestamp("11000")
	require.NoError(t, err)
	require.EqualValues(t, 11000, ts)
}

func TestParseUint256TimestampHex(t *testing.T) {
	ts, err := ParseUint256Timestamp("0x2af8")
	require.NoError(t, err)
	require.EqualValues(t, 11000, ts)
}

func TestParseUint256TimestampOverflows64Bits(t *testing.T) {
	huge := "1" + strings.Repeat("0", 20) // far bigger than a uint64
	_, err := ParseUint256Timestamp(huge)
	require.Error(t, err)
	require.True(t, IsKind(err, InvalidUint256))
}

func TestParseUint256TimestampExceeds256Bits(t *testing.T) {
	huge := strings.Repeat("9", 90) // far bigger than 2^256
	_, err := ParseUint256Timestamp(huge)
	require.Error(t, err)
	require.True(t, IsKind(err, InvalidUint256))
}
