package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every block returned by AllocAligned.
const Alignment = 64

// AllocAligned allocates a byte slice of the given size with 64-byte alignment.
// The returned slice is guaranteed to start at a memory address divisible by 64.
// It returns nil for size <= 0.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	// Allocate size + alignment to ensure we can find an aligned offset
	totalSize := size + Alignment
	buf := make([]byte, totalSize)

	ptr := unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
	addr := uintptr(ptr)
	offset := (Alignment - (addr & (Alignment - 1))) & (Alignment - 1)

	// Full slice expression so appends can never reach the slack bytes.
	end := offset + uintptr(size)
	return buf[offset:end:end]
}

// IsAligned reports whether b starts on an Alignment boundary.
func IsAligned(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&b[0]))&(Alignment-1) == 0 //nolint:gosec // address inspection only
}

// Zero clears b.
func Zero(b []byte) {
	clear(b)
}
