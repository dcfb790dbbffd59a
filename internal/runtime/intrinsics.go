package runtime

import (
	"context"
	"fmt"

	"github.com/wasmkit/rtcore/api"
	"github.com/wasmkit/rtcore/internal/ir"
	"github.com/wasmkit/rtcore/internal/logging"
)

// Intrinsic names one JIT-callable entry point: its WebAssembly-visible
// signature and which receiver parameters (context, module-id, table-id)
// the generator must pass ahead of the declared operands (spec.md §4.3).
type Intrinsic struct {
	Name          string
	Params        []api.ValueType
	Results       []api.ValueType
	NeedsModuleID bool
	NeedsTableID  bool
}

// TableIntrinsics is the fixed registry the Tables subsystem exposes to
// JIT code (spec.md §4.3).
var TableIntrinsics = []Intrinsic{
	{Name: "table.grow", Params: []api.ValueType{api.ValueTypeFuncRef, api.ValueTypeI32}, Results: []api.ValueType{api.ValueTypeI32}, NeedsTableID: true},
	{Name: "table.size", Results: []api.ValueType{api.ValueTypeI32}, NeedsTableID: true},
	{Name: "table.get", Params: []api.ValueType{api.ValueTypeI32}, Results: []api.ValueType{api.ValueTypeFuncRef}, NeedsTableID: true},
	{Name: "table.set", Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeFuncRef}, NeedsTableID: true},
	{Name: "table.init", Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32}, NeedsModuleID: true, NeedsTableID: true},
	{Name: "elem.drop", NeedsModuleID: true},
	{Name: "table.copy", Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32, api.ValueTypeI32}, NeedsTableID: true},
	{Name: "table.fill", Params: []api.ValueType{api.ValueTypeI32, api.ValueTypeFuncRef, api.ValueTypeI32}, NeedsTableID: true},
	{Name: "callIndirectFail"},
}

// SymbolResolver resolves a native instruction pointer to a human-readable
// symbol for callIndirectFail's diagnostic log line.
// internal/codegen.SymbolManifest implements this (spec.md §3 SUPPLEMENTED
// FEATURES, "describeInstructionPointer-style symbol resolution").
type SymbolResolver interface {
	Describe(addr uintptr) string
}

// CallIndirectFail implements the callIndirectFail intrinsic: classify
// why an indirect call's target didn't match the expected signature and
// trap accordingly (spec.md §4.2, Indirect-call failure).
func CallIndirectFail(ctx context.Context, resolver SymbolResolver, t *Table, index uint32, callerIP uintptr, expected ir.Encoding) error {
	if uintptr(index) >= t.numReservedElements {
		return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: index}
	}
	biased := t.cellAt(saturateIndex(uintptr(index), t.numReservedElements)).Load()
	obj, isOOB, isUninitialized := decode(biased)
	switch {
	case isOOB:
		return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: index}
	case isUninitialized:
		return &TableTrap{Kind: ErrUninitializedTableElement, Table: t, Index: index}
	default:
		resolved := "<unknown>"
		if resolver != nil {
			resolved = resolver.Describe(callerIP)
		}
		logging.Log(ctx, logging.LevelWarn,
			"indirect call signature mismatch at %s: expected %s, got %s",
			resolved, fmt.Sprintf("%#x", uint64(expected)), fmt.Sprintf("%#x", uint64(obj.SignatureEncoding)))
		return &TableTrap{Kind: ErrIndirectCallSignatureMismatch, Table: t, Index: index}
	}
}
