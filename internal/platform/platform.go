// Package platform reserves, commits, and releases virtual address space at
// page granularity for internal/runtime's tables.
//
// Note: this is a dependency-free alternative to golang.org/x/sys, mirroring
// the teacher's internal/platform package, which reserves the same rationale
// for not depending on x/sys for mmap on unix hosts.
package platform

import (
	"errors"
	"os"
	"runtime"
)

// ErrReservationFailed is returned when the host cannot satisfy a virtual
// address space reservation (e.g. insufficient address space on a 32-bit
// host). Callers are expected to treat this as "no table" rather than a
// fatal error (spec.md §4.2, Creation: "Reservation failure → returns no
// table").
var ErrReservationFailed = errors.New("platform: failed to reserve virtual address space")

// PageSizeLog2 returns log2 of the host's page size.
func PageSizeLog2() uint { return pageSizeLog2 }

// PageSize returns the host's page size in bytes.
func PageSize() uintptr { return uintptr(1) << pageSizeLog2 }

// NumPlatformPages rounds numBytes up to a whole number of pages.
func NumPlatformPages(numBytes uintptr) uintptr {
	pageSize := PageSize()
	return (numBytes + pageSize - 1) / pageSize
}

// Region is a reservation of contiguous virtual address space. Only the
// pages explicitly committed via CommitRange are safe to read or write; the rest
// trap (SIGSEGV/SIGBUS) on access, which internal/runtime relies on for its
// branchless out-of-bounds reads on 64-bit hosts (spec.md §4.2, §9).
type Region struct {
	data []byte
}

// Is32BitHost is true when the process can't safely reserve a 2^32-element
// table (spec.md §4.2, Creation and §9 Open question).
const Is32BitHost = ^uintptr(0)>>32 == 0

// ReservePages reserves numPages of address space without committing any of
// it. The reservation is not executable and starts out inaccessible.
func ReservePages(numPages uintptr) (*Region, error) {
	if numPages == 0 {
		return &Region{}, nil
	}
	size := numPages * PageSize()
	data, err := reserve(size)
	if err != nil {
		return nil, ErrReservationFailed
	}
	return &Region{data: data}, nil
}

// Bytes exposes the full reservation, including pages never committed.
// Accessing bytes outside a committed range is undefined behavior at the Go
// level (it will fault); internal/runtime only dereferences inside the
// logical length it itself tracks.
func (r *Region) Bytes() []byte { return r.data }

// CommitRange makes the half-open byte range [from, to) readable and
// writable. from and to need not be page-aligned; the underlying pages
// covering the range are committed.
func (r *Region) CommitRange(from, to uintptr) error {
	if to <= from {
		return nil
	}
	pageSize := PageSize()
	firstPage := from / pageSize
	lastPage := NumPlatformPages(to)
	return commit(r.data[firstPage*pageSize:lastPage*pageSize])
}

// Release frees the entire reservation.
func (r *Region) Release() error {
	if len(r.data) == 0 {
		return nil
	}
	return release(r.data)
}

var pageSizeLog2 = func() uint {
	n := osPageSize()
	l := uint(0)
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}()

func osPageSize() int {
	if runtime.GOOS == "windows" {
		// Windows allocation granularity is 64KiB, but page protection
		// operates on the smaller 4KiB page; 4KiB is the conservative choice
		// here since internal/runtime only ever grows forward.
		return 4096
	}
	return os.Getpagesize()
}
