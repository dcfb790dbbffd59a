package runtime

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/wasmkit/rtcore/internal/compartment"
	"github.com/wasmkit/rtcore/internal/ir"
	"github.com/wasmkit/rtcore/internal/platform"
)

// elementSize is the width of one table cell: a platform word, wide enough
// to hold a biased pointer (spec.md §3, "Element entry").
const elementSize = unsafe.Sizeof(uintptr(0))

// guardPages is G in spec.md §3: at least one platform page appended past
// a table's reserved elements, never committed, so a saturated access one
// element past numReservedElements still faults rather than reading
// adjacent memory.
const guardPages = 1

// maxTableElems is the implementation-defined ceiling spec.md §3 invariant
// 1 refers to.
const maxTableElems = ir.MaxTableElems

// reservedElementCount is C in spec.md §4.2, Creation: 2^32 elements on
// 64-bit hosts, so any 32-bit index is representable without overflow;
// ~4e6 on 32-bit hosts, where that reservation may itself fail (spec.md §9,
// Open question).
func reservedElementCount() uintptr {
	if platform.Is32BitHost {
		return 4_000_000
	}
	return uintptr(1) << 32
}

// Table is a mutable record owning one indirect-reference table's storage
// (spec.md §3, "Table").
type Table struct {
	typ       ir.TableType
	debugName string

	region              *platform.Region
	elements            unsafe.Pointer
	numReservedElements uintptr
	numReservedBytes    uintptr

	numElements atomic.Uint32

	resizingMutex sync.Mutex
	quota         *ResourceQuota

	comp *compartment.Compartment
	id   uint32
}

// ID returns t's identity within its owning compartment.
func (t *Table) ID() uint32 { return t.id }

// Type returns t's element type and size bounds.
func (t *Table) Type() ir.TableType { return t.typ }

// DebugName returns t's diagnostic name.
func (t *Table) DebugName() string { return t.debugName }

// NumElements atomically loads t's current logical length.
func (t *Table) NumElements() uint32 { return t.numElements.Load() }

// NumReservedElements returns the fixed capacity of t's virtual reservation.
func (t *Table) NumReservedElements() uintptr { return t.numReservedElements }

func (t *Table) cellAt(i uintptr) *atomic.Uintptr {
	return (*atomic.Uintptr)(unsafe.Pointer(uintptr(t.elements) + i*elementSize))
}

// reserveTable allocates a table's backing virtual memory without
// registering it anywhere; shared by createTable and cloneTable.
func reserveTable(typ ir.TableType, debugName string, quota *ResourceQuota) (*Table, error) {
	numReserved := reservedElementCount()
	reservedBytes := numReserved * elementSize
	numPages := platform.NumPlatformPages(reservedBytes) + guardPages

	region, err := platform.ReservePages(numPages)
	if err != nil {
		return nil, err
	}
	return &Table{
		typ:                 typ,
		debugName:           debugName,
		region:              region,
		elements:            unsafe.Pointer(&region.Bytes()[0]),
		numReservedElements: numReserved,
		numReservedBytes:    reservedBytes,
		quota:               quota,
	}, nil
}

// CreateTable implements createTable (spec.md §4.2, Creation): reserve
// storage, register globally, grow to type.size.min initializing with
// initial, then register into comp and publish the base pointer.
func CreateTable(comp *compartment.Compartment, typ ir.TableType, initial *Object, debugName string, quota *ResourceQuota) (*Table, error) {
	if initial != nil && !isSubtypeOf(initial.RefType, typ.ElementType) {
		return nil, ErrInvalidArgument
	}

	t, err := reserveTable(typ, debugName, quota)
	if err != nil {
		return nil, err
	}

	registerGlobal(t)

	var oldLen uint32
	if err := t.grow(typ.Size.Min, &oldLen, initial, true); err != nil {
		unregisterGlobal(t)
		_ = t.region.Release()
		return nil, err
	}

	t.comp = comp
	t.id = comp.RegisterTable(t, uintptr(t.elements))
	return t, nil
}

// addUint32Checked reports a+b and whether that addition overflowed
// uint32, matching spec.md §4.2's "using arithmetic that cannot underflow".
func addUint32Checked(a, b uint32) (sum uint32, overflow bool) {
	sum = a + b
	return sum, sum < a
}

// grow is the shared implementation behind GrowTable and CreateTable's
// initial grow to type.size.min (spec.md §4.2, Growth).
func (t *Table) grow(delta uint32, outOld *uint32, initial *Object, initializeNewElements bool) error {
	if delta == 0 {
		// Pure query: never touches resizingMutex (spec.md §3
		// SUPPLEMENTED FEATURES, "zero-delta fast path").
		*outOld = t.numElements.Load()
		return nil
	}

	t.resizingMutex.Lock()
	defer t.resizingMutex.Unlock()

	oldLen := t.numElements.Load()
	limit := maxTableElems
	if t.typ.Size.Max != nil && *t.typ.Size.Max < limit {
		limit = *t.typ.Size.Max
	}
	newLen, overflow := addUint32Checked(oldLen, delta)
	if overflow || newLen > limit {
		return errGrowRejected
	}

	if t.quota != nil && !t.quota.Allocate(uint64(delta)) {
		return errGrowRejected
	}

	newBytes := uintptr(newLen) * elementSize
	if err := t.region.CommitRange(0, newBytes); err != nil {
		if t.quota != nil {
			t.quota.Free(uint64(delta))
		}
		return errGrowRejected
	}

	if initializeNewElements {
		biased := encode(initial)
		for i := oldLen; i < newLen; i++ {
			t.cellAt(uintptr(i)).Store(biased)
		}
	}

	t.numElements.Store(newLen)
	*outOld = oldLen
	return nil
}

// GrowTable implements the table.grow intrinsic. It returns false without
// effect when the growth would exceed type.size.max, overflow, or the
// resource quota — a Rejection per spec.md §7, not a Trap.
func (t *Table) GrowTable(delta uint32, initial *Object) (oldLen uint32, ok bool) {
	err := t.grow(delta, &oldLen, initial, true)
	return oldLen, err == nil
}

// CloneTable implements cloneTable (spec.md §4.2, Cloning): stabilize t's
// length under resizingMutex, create a same-typed table in newComp, grow
// it without initialization to the same length, copy every cell, and
// register it under t's own id via a non-allocating insert.
func CloneTable(t *Table, newComp *compartment.Compartment, quota *ResourceQuota) (*Table, error) {
	t.resizingMutex.Lock()
	n := t.numElements.Load()
	t.resizingMutex.Unlock()

	clone, err := reserveTable(t.typ, t.debugName, quota)
	if err != nil {
		return nil, err
	}

	var oldLen uint32
	if err := clone.grow(n, &oldLen, nil, false); err != nil {
		_ = clone.region.Release()
		return nil, err
	}

	for i := uintptr(0); i < uintptr(n); i++ {
		clone.cellAt(i).Store(t.cellAt(i).Load())
	}

	registerGlobal(clone)
	clone.comp = newComp
	clone.id = t.id
	newComp.RegisterTableWithID(t.id, clone, uintptr(clone.elements))
	return clone, nil
}

// Destroy implements table destruction (spec.md §4.2, Destruction): remove
// from the compartment, clear the runtime-data entry, remove from the
// global registry, release the virtual reservation, and return unused
// quota — accounted by numElements, not reserved capacity (spec.md §3
// SUPPLEMENTED FEATURES).
func (t *Table) Destroy() error {
	if t.comp != nil {
		t.comp.UnregisterTable(t.id)
	}
	unregisterGlobal(t)
	if t.quota != nil {
		t.quota.Free(uint64(t.numElements.Load()))
	}
	return t.region.Release()
}
