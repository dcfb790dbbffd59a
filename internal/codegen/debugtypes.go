package codegen

import "github.com/wasmkit/rtcore/api"

// DebugType is a basic debug-info type descriptor, created once per
// concrete value type and reused (spec.md §4.1, "Debug types").
type DebugType struct {
	Name           string
	SizeBits       uint8
	IsAddressKind  bool
}

// DebugTypes caches the basic debug type for every concrete value type.
// any maps to no debug type; reference types are described as 8-bit
// address-kind basic types because their runtime representation is a
// pointer but the debug size is deliberately left opaque (spec.md §4.1).
type DebugTypes struct {
	byType map[api.ValueType]*DebugType
}

// NewDebugTypes builds and caches every concrete value type's debug type.
func NewDebugTypes() *DebugTypes {
	d := &DebugTypes{byType: make(map[api.ValueType]*DebugType)}
	for vt, bits := range map[api.ValueType]uint8{
		api.ValueTypeI32: 32,
		api.ValueTypeI64: 64,
		api.ValueTypeF32: 32,
		api.ValueTypeF64: 64,
		api.ValueTypeV128: 128,
	} {
		d.byType[vt] = &DebugType{Name: api.ValueTypeName(vt), SizeBits: bits}
	}
	for _, vt := range []api.ValueType{api.ValueTypeAnyRef, api.ValueTypeFuncRef, api.ValueTypeNullRef} {
		d.byType[vt] = &DebugType{Name: api.ValueTypeName(vt), SizeBits: 8, IsAddressKind: true}
	}
	return d
}

// For returns vt's cached debug type, or nil for api.ValueTypeAny, which
// has none.
func (d *DebugTypes) For(vt api.ValueType) *DebugType {
	return d.byType[vt]
}
