package codegen

import "github.com/wasmkit/rtcore/internal/intset"

// Lane-width feature indices into a Target's SIMDLaneWidths set: each
// member marks one of the four lane widths a V128 literal can carry
// (spec.md §2, "DenseIntSet ... used to track feature and lane sets";
// grounded on WAVM's DenseStaticIntSet.h, whose getSmallestNonMember this
// mirrors directly for "smallest missing lane width supported").
const (
	LaneWidth8 = iota
	LaneWidth16
	LaneWidth32
	LaneWidth64
	numLaneWidths
)

var laneWidthBits = [numLaneWidths]int{8, 16, 32, 64}

// AllLaneWidths returns a set with every lane width supported, the
// default a Target falls back to when SIMDLaneWidths is nil.
func AllLaneWidths() *intset.Dense {
	s := intset.New(numLaneWidths)
	s.AddRange(0, numLaneWidths-1)
	return s
}

// legalizationThresholdBits reports the width, in bits, of the narrowest
// lane the target's vector unit cannot operate on natively — the point
// at which emitModule must fall back to a scalarized sequence instead of
// a single SIMD instruction. A target with every width covered reports 0
// (nothing needs legalizing).
func legalizationThresholdBits(supported *intset.Dense) int {
	missing := supported.SmallestNonMember()
	if missing >= numLaneWidths {
		return 0
	}
	return laneWidthBits[missing]
}
