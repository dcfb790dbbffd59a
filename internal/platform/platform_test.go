package platform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReserveCommitRelease(t *testing.T) {
	r, err := ReservePages(4)
	require.NoError(t, err)
	defer r.Release()

	pageSize := PageSize()
	require.NoError(t, r.CommitRange(0, pageSize))

	b := r.Bytes()
	b[0] = 0x42
	require.Equal(t, byte(0x42), b[0])
}

func TestReserveZeroPages(t *testing.T) {
	r, err := ReservePages(0)
	require.NoError(t, err)
	require.Empty(t, r.Bytes())
	require.NoError(t, r.Release())
}

func TestNumPlatformPages(t *testing.T) {
	pageSize := PageSize()
	require.Equal(t, uintptr(1), NumPlatformPages(1))
	require.Equal(t, uintptr(1), NumPlatformPages(pageSize))
	require.Equal(t, uintptr(2), NumPlatformPages(pageSize+1))
}
