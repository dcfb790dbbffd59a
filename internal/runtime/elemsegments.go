package runtime

import (
	"sync"

	"github.com/wasmkit/rtcore/internal/ir"
)

// ElementSegments owns one module instance's element segments, letting
// elem.drop release a segment's backing vector and table.init read from
// whichever segments remain (spec.md §4.3).
type ElementSegments struct {
	mu       sync.Mutex
	segments map[uint32][]ir.Elem
}

// NewElementSegments copies mod's element segments into a fresh,
// independently droppable map.
func NewElementSegments(mod *ir.Module) *ElementSegments {
	s := &ElementSegments{segments: make(map[uint32][]ir.Elem, len(mod.Elements))}
	for i, seg := range mod.Elements {
		s.segments[uint32(i)] = seg.Elems
	}
	return s
}

// Drop atomically releases segIdx's shared vector under the segments
// mutex. It is idempotent as a side effect of the map delete: dropping an
// already-dropped segment is a no-op, and any subsequent InitElemSegment
// against it fails the lookup the same way an out-of-range index would
// (spec.md §4.3; §3 SUPPLEMENTED FEATURES, "elem.drop idempotency").
func (s *ElementSegments) Drop(segIdx uint32) {
	s.mu.Lock()
	delete(s.segments, segIdx)
	s.mu.Unlock()
}

// segment copies out the shared vector under the lock and releases it
// before the caller iterates, so element writes — which may themselves
// acquire other locks — never happen while this mutex is held (spec.md §5,
// Shared-resource policy).
func (s *ElementSegments) segment(segIdx uint32) ([]ir.Elem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	elems, ok := s.segments[segIdx]
	return elems, ok
}

// InitElemSegment implements table.init: copy n entries from segment
// segIdx starting at srcOff into t starting at destOff, resolving each
// ref_func entry against fns, the calling module instance's function
// objects indexed by function index (spec.md §4.2, Element-segment init).
//
// A srcIdx at or beyond the segment's length traps
// outOfBoundsElemSegmentAccess; cells before the offending entry have
// already been written, matching spec.md §8 scenario 5.
//
// srcOff+i and destOff+i are both added with addUint32Checked before
// either side is touched, so an untrusted offset/n pair near UINT32_MAX
// traps instead of wrapping into a small, in-bounds index (the same
// overflow class CopyTable and FillTable guard against).
func InitElemSegment(segs *ElementSegments, moduleID, segIdx uint32, fns []*Object, t *Table, destOff, srcOff, n uint32) error {
	segVec, ok := segs.segment(segIdx)
	if !ok {
		return ErrInvalidArgument
	}
	for i := uint32(0); i < n; i++ {
		srcIdx, overflow := addUint32Checked(srcOff, i)
		if overflow || uintptr(srcIdx) >= uintptr(len(segVec)) {
			return &ElemSegmentTrap{Kind: ErrOutOfBoundsElemSegmentAccess, ModuleID: moduleID, SegIndex: segIdx, Index: srcOff}
		}
		elem := segVec[srcIdx]
		var obj *Object
		if elem.Kind == ir.ElemRefFunc {
			if uintptr(elem.FuncIndex) >= uintptr(len(fns)) {
				return ErrInvalidArgument
			}
			obj = fns[elem.FuncIndex]
		}
		destIdx, overflow := addUint32Checked(destOff, i)
		if overflow {
			return &TableTrap{Kind: ErrOutOfBoundsTableAccess, Table: t, Index: destOff}
		}
		if err := t.setElement(destIdx, obj); err != nil {
			return err
		}
	}
	return nil
}
