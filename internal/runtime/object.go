// Package runtime implements the Tables subsystem: a fixed-layout,
// concurrently-readable, grow-only array of references sized to permit
// indexing by an untrusted 32-bit value without per-access software
// bounds checks on 64-bit hosts.
package runtime

import (
	"github.com/wasmkit/rtcore/api"
	"github.com/wasmkit/rtcore/internal/ir"
)

// ObjectKind tags what a table cell decodes to once unbiased.
type ObjectKind uint8

const (
	objectKindSentinelOOB ObjectKind = iota
	objectKindSentinelUninitialized
	// ObjectKindFunction marks an Object identifying a typed function,
	// callable through the indirect-call trampoline.
	ObjectKindFunction
	// ObjectKindHostRef marks an Object identifying an opaque host
	// reference.
	ObjectKindHostRef
)

// Object is the tagged variant every live table cell decodes to (spec.md
// §9, "Polymorphism": elements are polymorphic over the capability set
// {callable as a typed function, identifiable as a host reference}). The
// core only needs pointer identity and RefType; it never calls through
// Func or Host itself, so both are left opaque to the caller's domain.
type Object struct {
	Kind ObjectKind

	// RefType is the object's reference type. CreateTable checks an initial
	// element's RefType against the table's element type (it must be a
	// subtype); element writes through Set, FillTable, CopyTable, and
	// InitElemSegment do not check it.
	RefType api.ValueType

	// SignatureEncoding is the object's function type encoding, meaningful
	// only when Kind is ObjectKindFunction; callIndirectFail compares it
	// against the call site's expected encoding.
	SignatureEncoding ir.Encoding

	// Func and Host are opaque payloads the caller's domain attaches;
	// this package never dereferences through them.
	Func interface{}
	Host interface{}
}

// isSubtypeOf reports whether sub may be stored where super is expected,
// per spec.md §4.2 Creation ("The initial element's reference type must be
// a subtype of the table's element type"). nullref is a subtype of every
// reference type; otherwise subtyping is identity.
func isSubtypeOf(sub, super api.ValueType) bool {
	if sub == super {
		return true
	}
	if sub == api.ValueTypeNullRef {
		return api.IsRefType(super)
	}
	return false
}
