package literal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseU64Hex(t *testing.T) {
	v, err := ParseU64("0x1_0000_0000")
	require.NoError(t, err)
	require.Equal(t, uint64(0x100000000), v)
}

func TestParseU32Overflow(t *testing.T) {
	v, err := ParseU32("0x1_0000_0000")
	require.Error(t, err)
	require.Contains(t, err.Error(), "integer literal is too large")
	require.Equal(t, uint32(math.MaxUint32), v)
}

func TestParseI32(t *testing.T) {
	v, err := ParseI32("-42")
	require.NoError(t, err)
	require.Equal(t, int32(-42), v)

	v, err = ParseI32("42")
	require.NoError(t, err)
	require.Equal(t, int32(42), v)
}

func TestParseF32NaNPayload(t *testing.T) {
	f, err := ParseF32("nan:0x200000")
	require.NoError(t, err)
	bits := math.Float32bits(f)
	require.Equal(t, uint32(0x200000), bits&0x7fffff)
	require.True(t, math.IsNaN(float64(f)))
}

func TestParseF32NaNZeroPayloadIsError(t *testing.T) {
	f, err := ParseF32("nan:0x0")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NaN significand must be non-zero")
	bits := math.Float32bits(f)
	require.Equal(t, uint32(1), bits&0x7fffff)
}

func TestParseF32Inf(t *testing.T) {
	f, err := ParseF32("inf")
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(f), 1))

	f, err = ParseF32("-inf")
	require.NoError(t, err)
	require.True(t, math.IsInf(float64(f), -1))
}

func TestParseF64Decimal(t *testing.T) {
	f, err := ParseF64("3.14159")
	require.NoError(t, err)
	require.InDelta(t, 3.14159, f, 1e-9)
}

func TestParseV128I32x4(t *testing.T) {
	v, err := ParseV128(LaneI32x4, []string{"1", "2", "3", "4"})
	require.NoError(t, err)
	b := v.Bytes()
	require.Equal(t, byte(1), b[0])
	require.Equal(t, byte(2), b[4])
	require.Equal(t, byte(3), b[8])
	require.Equal(t, byte(4), b[12])
}

func TestParseV128WrongLaneCount(t *testing.T) {
	_, err := ParseV128(LaneI32x4, []string{"1", "2"})
	require.Error(t, err)
}
