package runtime

import "sync"

// globalRegistry is the flat, mutex-protected list of every live table
// (spec.md §5, "Shared-resource policy"; §9, "Global registry scan": "the
// registry is deliberately a flat vector; membership checks are infrequent
// ... and the cost is justified by constant memory layout").
var globalRegistry = struct {
	mu     sync.Mutex
	tables []*Table
}{}

func registerGlobal(t *Table) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.tables = append(globalRegistry.tables, t)
}

func unregisterGlobal(t *Table) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	for i, existing := range globalRegistry.tables {
		if existing == t {
			globalRegistry.tables = append(globalRegistry.tables[:i], globalRegistry.tables[i+1:]...)
			return
		}
	}
}

// IsAddressOwnedByTable implements the address-ownership query used by the
// signal-translation layer to turn a faulting load into a precise table
// trap (spec.md §4.2, "Address-ownership query"). A hit requires addr to
// fall within [elements, elements+numReservedBytes) of some live table.
func IsAddressOwnedByTable(addr uintptr) (table *Table, index uint32, ok bool) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	for _, t := range globalRegistry.tables {
		base := uintptr(t.elements)
		if addr >= base && addr < base+t.numReservedBytes {
			return t, uint32((addr - base) / elementSize), true
		}
	}
	return nil, 0, false
}
