package compartment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeTable struct{ id uint32 }

func (f *fakeTable) ID() uint32 { return f.id }

func TestRegisterUnregisterTable(t *testing.T) {
	c := New()
	tbl := &fakeTable{}
	id := c.RegisterTable(tbl, 0x1000)
	base, ok := c.TableBase(id)
	require.True(t, ok)
	require.Equal(t, uintptr(0x1000), base)

	got, ok := c.Table(id)
	require.True(t, ok)
	require.Same(t, tbl, got)

	c.UnregisterTable(id)
	_, ok = c.TableBase(id)
	require.False(t, ok)
}

func TestRegisterTableWithIDPreservesIdentity(t *testing.T) {
	c := New()
	tbl := &fakeTable{}
	c.RegisterTableWithID(7, tbl, 0x2000)
	base, ok := c.TableBase(7)
	require.True(t, ok)
	require.Equal(t, uintptr(0x2000), base)

	next := c.RegisterTable(&fakeTable{}, 0x3000)
	require.GreaterOrEqual(t, next, uint32(8))
}
