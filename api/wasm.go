// Package api includes value-type and reference-type constants shared by
// the code generator and the runtime.
package api

import "fmt"

// ValueType classifies a WebAssembly value. Function parameters, results,
// locals, and table/global element types are all defined in terms of it.
//
// Note: This is a type alias as it is easier to encode and pack alongside
// other small integer fields.
type ValueType = byte

const (
	// ValueTypeAny is a sentinel with no debug type: it never appears as the
	// declared type of a local, parameter, or table element, only as a
	// placeholder used internally by the code generator's debug-type table.
	ValueTypeAny ValueType = iota
	ValueTypeI32
	ValueTypeI64
	ValueTypeF32
	ValueTypeF64
	ValueTypeV128
	// ValueTypeAnyRef, ValueTypeFuncRef, and ValueTypeNullRef are reference
	// types. Their runtime representation is a pointer, but debug info
	// describes them as opaque 8-bit address-kind types (see
	// internal/codegen/debugtypes.go).
	ValueTypeAnyRef
	ValueTypeFuncRef
	ValueTypeNullRef
)

// IsRefType returns true if t is one of the reference types.
func IsRefType(t ValueType) bool {
	return t == ValueTypeAnyRef || t == ValueTypeFuncRef || t == ValueTypeNullRef
}

// ValueTypeName returns the human-readable name of t, for diagnostics.
func ValueTypeName(t ValueType) string {
	switch t {
	case ValueTypeAny:
		return "any"
	case ValueTypeI32:
		return "i32"
	case ValueTypeI64:
		return "i64"
	case ValueTypeF32:
		return "f32"
	case ValueTypeF64:
		return "f64"
	case ValueTypeV128:
		return "v128"
	case ValueTypeAnyRef:
		return "anyref"
	case ValueTypeFuncRef:
		return "funcref"
	case ValueTypeNullRef:
		return "nullref"
	default:
		return fmt.Sprintf("unknown(%#x)", t)
	}
}

// ExternType classifies imports and the objects a module instance owns.
type ExternType = byte

const (
	ExternTypeFunc ExternType = iota
	ExternTypeTable
	ExternTypeMemory
	ExternTypeGlobal
	ExternTypeException
)
