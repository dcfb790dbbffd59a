package codegen

import "github.com/wasmkit/rtcore/internal/ir"

// NativeImage is emitModule's output: one externally-named native
// function per IR function, plus the manifest of external symbols the
// loader must resolve (spec.md §4.1, Public contract).
type NativeImage struct {
	Target   Target
	Manifest *SymbolManifest
	Debug    *DebugTypes

	Personality string
	// TypeDescriptor holds the link-once/ODR Windows SEH type descriptor
	// bytes, non-nil only when Target.WindowsSEH is set (spec.md §4.1,
	// step 4).
	TypeDescriptor []byte

	// Functions maps each emitted function's symbol name
	// (functionImport[i] or functionDef[j]) to its machine code.
	Functions map[string][]byte

	// DefaultTable and DefaultMemory name the symbols tables[0]/memories[0]
	// bind to; empty when the module has none (spec.md §4.1, step 3 and
	// "Failure semantics": consumers must not index an absent default).
	DefaultTable  string
	DefaultMemory string

	// LegalizedLaneWidthBits is target.LegalizationThresholdBits(),
	// carried on the image so a caller inspecting a compiled module can
	// tell whether any V128 op was scalarized rather than emitted as a
	// single vector instruction.
	LegalizedLaneWidthBits int
}

// EmitModule translates mod into a NativeImage for target, following the
// nine-step emission algorithm of spec.md §4.1 in order.
//
// Emission is deterministic given the same mod and target: every step
// below derives its output solely from mod's ordered lists and target, so
// emitting the same IR twice produces byte-identical manifests (spec.md
// §8, "CodeGen determinism"). EmitModule itself never fails on malformed
// IR — that is a caller precondition (spec.md §4.1, "Failure semantics");
// the only error path is a golang-asm builder failure for an unsupported
// GOARCH.
func EmitModule(mod *ir.Module, target Target) (*NativeImage, error) {
	img := &NativeImage{
		Target:                 target,
		Debug:                  NewDebugTypes(),
		Personality:            target.HostPersonality(), // step 1
		Functions:              make(map[string][]byte),
		LegalizedLaneWidthBits: target.LegalizationThresholdBits(),
	}

	img.Manifest = NewSymbolManifest( // step 2
		len(mod.Types),
		len(mod.Tables),
		len(mod.Memories),
		len(mod.Globals),
		len(mod.ExceptionTypes),
		len(mod.Functions.Imports),
		len(mod.Functions.Defs),
		target.WindowsSEH,
	)

	if len(mod.Tables) > 0 { // step 3
		img.DefaultTable = img.Manifest.TableOffset[0]
	}
	if len(mod.Memories) > 0 {
		img.DefaultMemory = img.Manifest.MemoryOffset[0]
	}

	if target.WindowsSEH { // step 4
		img.TypeDescriptor = encodeTypeDescriptor()
	}

	for i := range mod.Functions.Imports { // step 5, import trampolines
		stub, err := assembleEntryStub(target.GOARCH, img.Personality) // step 7
		if err != nil {
			return nil, err
		}
		img.Functions[img.Manifest.FunctionImport[i]] = stub
	}

	for j, def := range mod.Functions.Defs { // steps 5-8, defs
		prefix := FunctionPrefix{TypeID: uint64(def.TypeIndex)} // step 6;
		// ModuleInstanceID and MutableDataPtr are patched in by the loader
		// via biasedModuleInstanceId / functionDefMutableDatas[j].

		stub, err := assembleEntryStub(target.GOARCH, img.Personality) // step 7
		if err != nil {
			return nil, err
		}

		// The opaque per-function body emitter (step 8) would append its
		// own instructions after the stub; it is out of scope here.
		img.Functions[img.Manifest.FunctionDef[j]] = append(prefix.Encode(), stub...)
	}

	// Step 9, finalizing debug information, is already complete: img.Debug
	// was populated up front since every concrete value type's debug type
	// is created once and reused regardless of which types the module uses.

	return img, nil
}

// encodeTypeDescriptor returns the compile-time copy of the runtime
// exception's type descriptor embedded under TypeDescriptorSymbol in a
// link-once/ODR group (spec.md §4.1, step 4).
func encodeTypeDescriptor() []byte {
	return []byte(TypeDescriptorSymbol)
}
