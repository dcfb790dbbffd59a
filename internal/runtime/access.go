package runtime

import "math/bits"

// setElement is the hot-path write primitive (spec.md §4.2, Read/write).
// A nil obj is stored as the uninitialized sentinel: encode performs that
// translation, so Set, FillTable, and InitElemSegment may all pass nil.
func (t *Table) setElement(i uint32, obj *Object) error {
	if uintptr(i) >= t.numReservedElements {
		return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: i}
	}
	cell := t.cellAt(saturateIndex(uintptr(i), t.numReservedElements))
	newBiased := encode(obj)
	for {
		cur := cell.Load()
		if cur == 0 {
			return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: i}
		}
		if cell.CompareAndSwap(cur, newBiased) {
			return nil
		}
	}
}

// getElement is the hot-path read primitive.
func (t *Table) getElement(i uint32) (*Object, error) {
	if uintptr(i) >= t.numReservedElements {
		return nil, &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: i}
	}
	biased := t.cellAt(saturateIndex(uintptr(i), t.numReservedElements)).Load()
	obj, isOOB, isUninitialized := decode(biased)
	if isOOB {
		return nil, &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: i}
	}
	if isUninitialized {
		return nil, nil
	}
	return obj, nil
}

// saturateIndex clamps i to numReserved-1 via a mask instead of a
// data-dependent branch, so speculative execution past the bounds check
// above is harmless (spec.md §4.2, Read/write).
func saturateIndex(i, numReserved uintptr) uintptr {
	max := numReserved - 1
	// gt is 1 when max < i (unsigned), read from the sign bit of a
	// branch-free comparison expression; mask is then all ones or zero.
	gt := ((^max & i) | ((^max | i) & (max - i))) >> (bits.UintSize - 1)
	mask := -gt
	return (i &^ mask) | (max & mask)
}

// Get implements the table.get intrinsic: the uninitialized sentinel is
// observed as a nil Object (spec.md §4.2, "Public wrappers translate...
// return null when the observed value is that sentinel").
func (t *Table) Get(i uint32) (*Object, error) {
	return t.getElement(i)
}

// Set implements the table.set intrinsic: a nil obj is translated to the
// uninitialized sentinel on write.
func (t *Table) Set(i uint32, obj *Object) error {
	return t.setElement(i, obj)
}
