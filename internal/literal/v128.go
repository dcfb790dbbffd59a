package literal

import (
	"fmt"
	"math"
)

// V128 holds a 128-bit vector literal's bit pattern, exposed via whichever
// lane view the token declared.
type V128 struct {
	bytes [16]byte
}

// Bytes returns the raw 16-byte little-endian representation.
func (v V128) Bytes() [16]byte { return v.bytes }

// LaneKind names a V128 literal's lane width/type tag.
type LaneKind int

const (
	LaneI8x16 LaneKind = iota
	LaneI16x8
	LaneI32x4
	LaneI64x2
	LaneF32x4
	LaneF64x2
)

// laneCount is the number of lanes for each LaneKind.
func (k LaneKind) laneCount() int {
	switch k {
	case LaneI8x16:
		return 16
	case LaneI16x8:
		return 8
	case LaneI32x4, LaneF32x4:
		return 4
	case LaneI64x2, LaneF64x2:
		return 2
	default:
		return 0
	}
}

// ParseV128 parses kind's lane count worth of lane tokens into a V128.
func ParseV128(kind LaneKind, laneTokens []string) (V128, error) {
	n := kind.laneCount()
	if n == 0 {
		return V128{}, newError(fmt.Sprintf("%d", kind), "unknown v128 lane kind")
	}
	if len(laneTokens) != n {
		return V128{}, newError(laneTokens[0], fmt.Sprintf("expected %d lane literals, got %d", n, len(laneTokens)))
	}

	var v V128
	var firstErr error
	record := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	switch kind {
	case LaneI8x16:
		for i, tok := range laneTokens {
			u, _, err := ParseSigned(tok, 1<<7, 0xff>>1)
			record(err)
			v.bytes[i] = byte(u)
		}
	case LaneI16x8:
		for i, tok := range laneTokens {
			u, _, err := ParseSigned(tok, 1<<15, 0xffff>>1)
			record(err)
			putLE(v.bytes[i*2:], uint64(u), 2)
		}
	case LaneI32x4:
		for i, tok := range laneTokens {
			u, _, err := ParseSigned(tok, 1<<31, 0xffffffff>>1)
			record(err)
			putLE(v.bytes[i*4:], uint64(u), 4)
		}
	case LaneI64x2:
		for i, tok := range laneTokens {
			u, _, err := ParseSigned(tok, 1<<63, (^uint64(0))>>1)
			record(err)
			putLE(v.bytes[i*8:], u, 8)
		}
	case LaneF32x4:
		for i, tok := range laneTokens {
			f, err := ParseF32(tok)
			record(err)
			putLE(v.bytes[i*4:], uint64(math.Float32bits(f)), 4)
		}
	case LaneF64x2:
		for i, tok := range laneTokens {
			f, err := ParseF64(tok)
			record(err)
			putLE(v.bytes[i*8:], math.Float64bits(f), 8)
		}
	}
	return v, firstErr
}

func putLE(dst []byte, v uint64, n int) {
	for i := 0; i < n; i++ {
		dst[i] = byte(v >> (8 * i))
	}
}
