package runtime

import "sync"

// ResourceQuota is the external accumulator tables consult when growing
// and return to when destroyed (spec.md §6, "Resource quota").
type ResourceQuota struct {
	mu        sync.Mutex
	limit     uint64
	allocated uint64
}

// NewResourceQuota returns a quota that permits at most limit elements
// allocated across every table that shares it.
func NewResourceQuota(limit uint64) *ResourceQuota {
	return &ResourceQuota{limit: limit}
}

// Allocate reserves n units, leaving the quota unchanged and returning
// false if doing so would exceed the limit.
func (q *ResourceQuota) Allocate(n uint64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.allocated+n > q.limit {
		return false
	}
	q.allocated += n
	return true
}

// Free returns n units previously allocated.
func (q *ResourceQuota) Free(n uint64) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n > q.allocated {
		n = q.allocated
	}
	q.allocated -= n
}

// Allocated reports how many units are currently accounted for.
func (q *ResourceQuota) Allocated() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.allocated
}
