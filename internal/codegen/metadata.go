package codegen

import "math"

// BranchWeights is a metadata tuple attached to a conditional branch to
// hint which successor is likely taken (spec.md §4.1, "Branch-weight and
// FP metadata").
type BranchWeights struct {
	TrueWeight  int32
	FalseWeight int32
}

// Shared module-wide metadata tuples (spec.md §4.1): prepared once and
// reused across every emitted branch and floating-point operation in the
// module.
var (
	LikelyTrueBranchWeights  = BranchWeights{TrueWeight: math.MaxInt32, FalseWeight: 0}
	LikelyFalseBranchWeights = BranchWeights{TrueWeight: 0, FalseWeight: math.MaxInt32}
)

// FPConstrainedIntrinsicTags names the two fixed floating-point
// constrained-intrinsic tags every module shares (spec.md §4.1).
type FPConstrainedIntrinsicTags struct {
	RoundingMode      string
	ExceptionBehavior string
}

// DefaultFPTags is the module-wide constrained-intrinsic tag pair: round
// to nearest, strict exceptions.
var DefaultFPTags = FPConstrainedIntrinsicTags{
	RoundingMode:      "round.tonearest",
	ExceptionBehavior: "fpexcept.strict",
}
