package ir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/rtcore/api"
)

func TestFunctionsCountAndIsImport(t *testing.T) {
	fns := Functions{
		Imports: []FunctionImport{{Module: "env", Name: "a", TypeIndex: 0}},
		Defs:    []FunctionDef{{TypeIndex: 0}, {TypeIndex: 0}},
	}
	require.Equal(t, 3, fns.Count())
	require.True(t, fns.IsImport(0))
	require.False(t, fns.IsImport(1))
	require.False(t, fns.IsImport(2))
}

func TestDefaultTableAndMemory(t *testing.T) {
	var empty Module
	_, ok := empty.DefaultTable()
	require.False(t, ok)
	_, ok = empty.DefaultMemory()
	require.False(t, ok)

	max := uint32(5)
	mod := Module{
		Tables:   []TableType{{ElementType: api.ValueTypeFuncRef, Size: Limits{Min: 1, Max: &max}}},
		Memories: []MemoryType{{Size: Limits{Min: 1}}},
	}
	tbl, ok := mod.DefaultTable()
	require.True(t, ok)
	require.Equal(t, api.ValueTypeFuncRef, tbl.ElementType)

	mem, ok := mod.DefaultMemory()
	require.True(t, ok)
	require.Equal(t, uint32(1), mem.Size.Min)
}
