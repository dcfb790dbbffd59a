package codegen

import "encoding/binary"

// FunctionPrefix is the fixed header codegen places immediately before a
// defined function's entry point: a pointer to a per-function mutable
// data block, the module-instance id, and the function's type id
// (spec.md §4.1, step 6). Stack-walkers and indirect-call trampolines
// consult it directly, so its layout is part of the calling convention,
// not an implementation detail.
type FunctionPrefix struct {
	MutableDataPtr   uintptr
	ModuleInstanceID uint64
	TypeID           uint64
}

// prefixSize is the prefix's on-disk size: three 8-byte fields, whatever
// the host's word size.
const prefixSize = 24

// Encode serializes p in little-endian order ahead of a function's
// machine code, mirroring the unsafe.Pointer/encoding/binary layout
// wazero's module_engine.go uses for its own per-function headers.
func (p FunctionPrefix) Encode() []byte {
	buf := make([]byte, prefixSize)
	binary.LittleEndian.PutUint64(buf[0:8], uint64(p.MutableDataPtr))
	binary.LittleEndian.PutUint64(buf[8:16], p.ModuleInstanceID)
	binary.LittleEndian.PutUint64(buf[16:24], p.TypeID)
	return buf
}
