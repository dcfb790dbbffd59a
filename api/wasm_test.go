package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsRefType(t *testing.T) {
	require.True(t, IsRefType(ValueTypeFuncRef))
	require.True(t, IsRefType(ValueTypeAnyRef))
	require.True(t, IsRefType(ValueTypeNullRef))
	require.False(t, IsRefType(ValueTypeI32))
	require.False(t, IsRefType(ValueTypeAny))
}

func TestValueTypeName(t *testing.T) {
	require.Equal(t, "i32", ValueTypeName(ValueTypeI32))
	require.Equal(t, "funcref", ValueTypeName(ValueTypeFuncRef))
	require.Contains(t, ValueTypeName(0xfe), "unknown")
}
