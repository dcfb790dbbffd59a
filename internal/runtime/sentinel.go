package runtime

import "unsafe"

// oobSentinelObj and uninitializedSentinelObj are the two process-wide
// singleton identities spec.md §9 ("Sentinels as process-wide singletons")
// requires: their addresses, not their contents, carry the meaning. They
// are allocated once and never mutated, so their addresses are stable for
// the process lifetime.
var (
	oobSentinelObj           = &Object{Kind: objectKindSentinelOOB}
	uninitializedSentinelObj = &Object{Kind: objectKindSentinelUninitialized}
)

// oobSentinelAddr is B in spec.md §3: the fixed address whose biased value
// is therefore zero, so a freshly reserved, never-committed (all-zero)
// table page decodes as "out-of-bounds" without an explicit write.
var oobSentinelAddr = uintptr(unsafe.Pointer(oobSentinelObj))

// biasedUninitialized is U−B in spec.md §3.
var biasedUninitialized = bias(uintptr(unsafe.Pointer(uninitializedSentinelObj)))

func bias(addr uintptr) uintptr   { return addr - oobSentinelAddr }
func unbias(biased uintptr) uintptr { return biased + oobSentinelAddr }

// encode converts obj into the biased cell value to store: nil is
// translated to the uninitialized sentinel, matching the null ⇄
// uninitialized translation the public Table wrappers perform (spec.md
// §4.2, Read/write: "Public wrappers translate null on input/output to the
// uninitialized sentinel").
func encode(obj *Object) uintptr {
	if obj == nil {
		return biasedUninitialized
	}
	return bias(uintptr(unsafe.Pointer(obj)))
}

// decode is the inverse of encode, additionally reporting which sentinel
// (if any) the cell held.
func decode(biased uintptr) (obj *Object, isOOB, isUninitialized bool) {
	switch biased {
	case 0:
		return nil, true, false
	case biasedUninitialized:
		return nil, false, true
	default:
		return (*Object)(unsafe.Pointer(unbias(biased))), false, false
	}
}
