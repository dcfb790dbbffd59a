package codegen

import (
	"fmt"
	"hash/fnv"
	"sort"
	"sync"

	"github.com/wasmkit/rtcore/internal/hashindex"
)

func hashSymbolName(name string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return h.Sum64()
}

// SymbolManifest names every external symbol the loader must resolve
// before the image is executable (spec.md §6, "External symbol
// manifest"). Every entry's name is drawn from the closed `family[index]`
// set spec.md §3 invariant 6 requires.
type SymbolManifest struct {
	TypeID                  []string
	TableOffset             []string
	MemoryOffset            []string
	Global                  []string
	BiasedExceptionTypeID   []string
	FunctionImport          []string
	FunctionDef             []string
	FunctionDefMutableDatas []string

	BiasedModuleInstanceID string
	TableReferenceBias     string
	RuntimeExceptionTypeInfo string // empty on Windows-SEH targets (spec.md §6)

	mu        sync.RWMutex
	addresses *hashindex.Index[string, uintptr]
}

func indexed(family string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s[%d]", family, i)
	}
	return out
}

// NewSymbolManifest builds the fixed symbol set for a module with the
// given counts (spec.md §4.1, step 2, and §6).
func NewSymbolManifest(numTypes, numTables, numMemories, numGlobals, numExceptionTypes, numFunctionImports, numFunctionDefs int, windowsSEH bool) *SymbolManifest {
	m := &SymbolManifest{
		TypeID:                  indexed("typeId", numTypes),
		TableOffset:             indexed("tableOffset", numTables),
		MemoryOffset:            indexed("memoryOffset", numMemories),
		Global:                  indexed("global", numGlobals),
		BiasedExceptionTypeID:   indexed("biasedExceptionTypeId", numExceptionTypes),
		FunctionImport:          indexed("functionImport", numFunctionImports),
		FunctionDef:             indexed("functionDef", numFunctionDefs),
		FunctionDefMutableDatas: indexed("functionDefMutableDatas", numFunctionDefs),
		BiasedModuleInstanceID:  "biasedModuleInstanceId",
		TableReferenceBias:      "tableReferenceBias",
		addresses:               hashindex.New[string, uintptr](hashSymbolName),
	}
	if !windowsSEH {
		m.RuntimeExceptionTypeInfo = "runtimeExceptionTypeInfo"
	}
	return m
}

// Bind records the address the loader resolved name to, so later
// SymbolManifest.Describe calls can map an instruction pointer back to a
// symbol.
func (m *SymbolManifest) Bind(name string, addr uintptr) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.addresses.Set(name, addr)
}

// Describe resolves addr to the bound symbol whose address is closest to
// (at or below) it, giving callIndirectFail's diagnostic log line a
// human-readable symbol the way WAVM's describeInstructionPointer does
// (spec.md §3 SUPPLEMENTED FEATURES).
func (m *SymbolManifest) Describe(addr uintptr) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, m.addresses.Len())
	m.addresses.Range(func(name string, _ uintptr) bool {
		names = append(names, name)
		return true
	})
	addrOf := func(name string) uintptr { return m.addresses.At(name) }
	sort.Slice(names, func(i, j int) bool { return addrOf(names[i]) < addrOf(names[j]) })

	best := ""
	for _, name := range names {
		if addrOf(name) > addr {
			break
		}
		best = name
	}
	if best == "" {
		return fmt.Sprintf("<unresolved %#x>", addr)
	}
	return fmt.Sprintf("%s+%#x", best, addr-addrOf(best))
}
