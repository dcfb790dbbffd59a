// Package compartment implements the isolation scope that owns a set of
// tables, and the runtime-data block JIT code consults to find their
// current base pointers. Memories and globals are not tracked here.
//
// This is external to the core per spec, but the Tables subsystem needs a
// concrete compartment to register into, so this package provides the
// minimal ownership record the core depends on.
package compartment

import (
	"sync"

	"github.com/wasmkit/rtcore/internal/hashindex"
)

// hashTableID mixes id across the full word so sequentially-assigned ids
// (the common case: nextID counts up from 0) don't cluster into adjacent
// buckets under linear probing.
func hashTableID(id uint32) uint64 {
	h := uint64(id)
	h = (h ^ (h >> 16)) * 0x45d9f3b
	h = (h ^ (h >> 16)) * 0x45d9f3b
	return h ^ (h >> 16)
}

// TableOwner is the subset of a table's identity the compartment needs to
// register it: a stable id. The base pointer to publish is passed to
// RegisterTable / RegisterTableWithID separately.
type TableOwner interface {
	ID() uint32
}

// Compartment owns the tables of one isolation scope, plus the
// runtime-data block (tableBases) JIT code reads through the
// externally-resolved tableOffset[i] symbols.
type Compartment struct {
	mu sync.Mutex

	tables    *hashindex.Index[uint32, TableOwner]
	tableBase *hashindex.Index[uint32, uintptr]
	nextID    uint32
}

// New returns an empty Compartment.
func New() *Compartment {
	return &Compartment{
		tables:    hashindex.New[uint32, TableOwner](hashTableID),
		tableBase: hashindex.New[uint32, uintptr](hashTableID),
	}
}

// RegisterTable assigns t a fresh id, publishes base into the runtime-data
// block, and returns the assigned id.
func (c *Compartment) RegisterTable(t TableOwner, base uintptr) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextID
	c.nextID++
	c.tables.Set(id, t)
	c.tableBase.Set(id, base)
	return id
}

// RegisterTableWithID inserts t under an id chosen by the caller (used by
// cloneTable, which must preserve the source compartment's id) without
// consuming a fresh id from the counter.
func (c *Compartment) RegisterTableWithID(id uint32, t TableOwner, base uintptr) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables.Set(id, t)
	c.tableBase.Set(id, base)
	if id >= c.nextID {
		c.nextID = id + 1
	}
}

// UnregisterTable removes id's entry from both the table map and the
// runtime-data block.
func (c *Compartment) UnregisterTable(id uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tables.Remove(id)
	c.tableBase.Remove(id)
}

// TableBase returns the current base pointer published for id.
func (c *Compartment) TableBase(id uint32) (uintptr, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tableBase.Get(id)
}

// Table returns the table registered under id.
func (c *Compartment) Table(id uint32) (TableOwner, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tables.Get(id)
}
