package intset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddContainsRemove(t *testing.T) {
	s := New(70)
	require.True(t, s.IsEmpty())
	s.Add(3)
	s.Add(65)
	require.True(t, s.Contains(3))
	require.True(t, s.Contains(65))
	require.False(t, s.Contains(4))
	require.False(t, s.IsEmpty())

	require.True(t, s.Remove(3))
	require.False(t, s.Contains(3))
	require.False(t, s.Remove(3))
}

func TestSmallestMemberNonMember(t *testing.T) {
	s := New(8)
	require.Equal(t, 8, s.SmallestMember())
	require.Equal(t, 0, s.SmallestNonMember())

	s.AddRange(0, 5)
	require.Equal(t, 0, s.SmallestMember())
	require.Equal(t, 6, s.SmallestNonMember())

	s.AddRange(6, 7)
	require.Equal(t, 8, s.SmallestNonMember())
}

func TestLogicalOps(t *testing.T) {
	a := New(8)
	a.AddRange(0, 3)
	b := New(8)
	b.AddRange(2, 5)

	or := a.Or(b)
	for i := 0; i <= 5; i++ {
		require.True(t, or.Contains(i))
	}

	and := a.And(b)
	require.True(t, and.Contains(2))
	require.True(t, and.Contains(3))
	require.False(t, and.Contains(0))
	require.False(t, and.Contains(5))

	xor := a.Xor(b)
	require.True(t, xor.Contains(0))
	require.True(t, xor.Contains(4))
	require.False(t, xor.Contains(2))

	not := a.Not()
	require.False(t, not.Contains(0))
	require.True(t, not.Contains(4))
}

func TestEqual(t *testing.T) {
	a := New(8)
	a.Add(1)
	b := New(8)
	b.Add(1)
	require.True(t, a.Equal(b))
	b.Add(2)
	require.False(t, a.Equal(b))
}
