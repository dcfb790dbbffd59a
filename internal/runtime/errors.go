package runtime

import (
	"errors"
	"fmt"
)

// Trap taxonomy (spec.md §6, "Trap taxonomy"). Callers match on these via
// errors.Is against the structured trap types below, which Unwrap to one
// of these sentinels.
var (
	ErrOutOfBoundsTableAccess        = errors.New("out of bounds table access")
	ErrUninitializedTableElement     = errors.New("uninitialized table element")
	ErrIndirectCallSignatureMismatch = errors.New("indirect call signature mismatch")
	ErrOutOfBoundsElemSegmentAccess  = errors.New("out of bounds element segment access")
	ErrInvalidArgument               = errors.New("invalid argument")
)

// errGrowRejected marks a growTable failure that spec.md §7 classifies as
// a Rejection, not a Trap: it never crosses the intrinsic boundary as an
// error value, only as GrowTable's boolean return.
var errGrowRejected = errors.New("table growth rejected")

// TableTrap is raised by the table read/write intrinsics; it carries the
// offending table and index, as spec.md §7 requires ("Traps ... include
// the offending table and index").
type TableTrap struct {
	Kind  error
	Table *Table
	Index uint32
}

func (t *TableTrap) Error() string {
	return fmt.Sprintf("%v: table %d, index %d", t.Kind, t.Table.id, t.Index)
}

func (t *TableTrap) Unwrap() error { return t.Kind }

// ElemSegmentTrap is raised by InitElemSegment; it carries the module,
// segment, and index (spec.md §6: "module + segment + index").
type ElemSegmentTrap struct {
	Kind     error
	ModuleID uint32
	SegIndex uint32
	Index    uint32
}

func (e *ElemSegmentTrap) Error() string {
	return fmt.Sprintf("%v: module %d, segment %d, index %d", e.Kind, e.ModuleID, e.SegIndex, e.Index)
}

func (e *ElemSegmentTrap) Unwrap() error { return e.Kind }
