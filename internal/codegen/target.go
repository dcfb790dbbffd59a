// Package codegen translates an IR module into a native code image
// plus a manifest of external symbols a loader (out of scope) must
// resolve before execution, grounded on WAVM's Lib/LLVMJIT/EmitModule.cpp
// and built atop golang-asm the way wazero's internal/asm/golang_asm
// adapts it.
package codegen

import "github.com/wasmkit/rtcore/internal/intset"

// Target describes the host triple and tuning flags emitModule targets
// (spec.md §4.1, Public contract).
type Target struct {
	// Triple is the host target triple, e.g. "x86_64-unknown-linux-gnu".
	Triple string
	// WindowsSEH selects the Windows structured-exception-handling
	// personality and type-descriptor emission path (spec.md §4.1, steps
	// 1 and 4).
	WindowsSEH bool
	// GOARCH names the golang-asm builder architecture to use for the
	// per-function entry stub ("amd64", "arm64", ...).
	GOARCH string
	// SIMDLaneWidths is the set of V128 lane widths (LaneWidth8 ..
	// LaneWidth64) this target's vector unit handles natively. nil means
	// every width is native (spec.md §2, DenseIntSet "used to track
	// feature and lane sets").
	SIMDLaneWidths *intset.Dense
}

// LegalizationThresholdBits reports the narrowest lane width, in bits,
// this target cannot operate on with a single native instruction — the
// point above which emitModule must legalize a SIMD op into a scalarized
// sequence instead. 0 means the target natively covers every lane width
// spec.md §3's V128 literal grammar can produce.
func (t Target) LegalizationThresholdBits() int {
	widths := t.SIMDLaneWidths
	if widths == nil {
		widths = AllLaneWidths()
	}
	return legalizationThresholdBits(widths)
}

// HostPersonality returns the external personality function name this
// target attaches to every defined function (spec.md §4.1, step 1).
func (t Target) HostPersonality() string {
	if t.WindowsSEH {
		return "__CxxFrameHandler3"
	}
	return "__gxx_personality_v0"
}

// TypeDescriptorSymbol is the fixed mangled name of the Windows SEH type
// descriptor emitted in a link-once/ODR group (spec.md §4.1 step 4; §6,
// "External symbol manifest").
const TypeDescriptorSymbol = "??_R0PEAUException@Runtime@WAVM@@@8"
