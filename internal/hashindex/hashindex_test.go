package hashindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func stringHash(s string) uint64 {
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

func TestAddGetContains(t *testing.T) {
	idx := New[string, int](stringHash)
	require.True(t, idx.Add("a", 1))
	require.False(t, idx.Add("a", 2))
	v, ok := idx.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.True(t, idx.Contains("a"))
	require.False(t, idx.Contains("b"))
}

func TestSetReplaces(t *testing.T) {
	idx := New[string, int](stringHash)
	idx.Set("a", 1)
	idx.Set("a", 2)
	require.Equal(t, 1, idx.Len())
	require.Equal(t, 2, idx.At("a"))
}

func TestGetOrAdd(t *testing.T) {
	idx := New[string, int](stringHash)
	calls := 0
	v := idx.GetOrAdd("a", func() int { calls++; return 7 })
	require.Equal(t, 7, v)
	v = idx.GetOrAdd("a", func() int { calls++; return 9 })
	require.Equal(t, 7, v)
	require.Equal(t, 1, calls)
}

func TestRemove(t *testing.T) {
	idx := New[string, int](stringHash)
	idx.Add("a", 1)
	idx.Add("b", 2)
	require.True(t, idx.Remove("a"))
	require.False(t, idx.Remove("a"))
	require.False(t, idx.Contains("a"))
	require.True(t, idx.Contains("b"))
}

func TestGrowthPreservesAllEntries(t *testing.T) {
	idx := New[string, int](stringHash)
	const n = 500
	for i := 0; i < n; i++ {
		idx.Add(keyFor(i), i)
	}
	require.Equal(t, n, idx.Len())
	for i := 0; i < n; i++ {
		v, ok := idx.Get(keyFor(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestRemoveThenGrowAndRange(t *testing.T) {
	idx := New[string, int](stringHash)
	const n = 200
	for i := 0; i < n; i++ {
		idx.Add(keyFor(i), i)
	}
	for i := 0; i < n; i += 2 {
		require.True(t, idx.Remove(keyFor(i)))
	}
	seen := map[string]bool{}
	idx.Range(func(k string, v int) bool {
		seen[k] = true
		return true
	})
	require.Equal(t, n/2, len(seen))
	for i := 1; i < n; i += 2 {
		require.True(t, seen[keyFor(i)])
	}
}

func keyFor(i int) string {
	b := make([]byte, 0, 8)
	for i > 0 {
		b = append(b, byte('a'+i%26))
		i /= 26
	}
	if len(b) == 0 {
		b = append(b, 'a')
	}
	return string(b)
}
