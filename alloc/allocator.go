package alloc

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/hupe1980/arrgo/internal/mem"
)

var (
	// ErrOutOfMemory is wrapped by every allocation failure.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrInvalidSize is returned for non-positive allocation sizes.
	ErrInvalidSize = errors.New("alloc: invalid block size")
	// ErrUnknownBlock is returned when freeing a block the allocator does not own.
	ErrUnknownBlock = errors.New("alloc: unknown block")
)

// fallbackHeapLimit bounds Heap blocks where physical memory is unknown.
const fallbackHeapLimit = 1 << 30

// DefaultHeapLimit returns the upper bound for a single Heap block when
// Heap.MaxBlock is zero: the machine's physical memory, or 1 GiB if that
// cannot be determined.
//
// A Go heap allocation the runtime cannot satisfy aborts the process, so
// larger requests are refused with ErrOutOfMemory before they reach make.
var DefaultHeapLimit = sync.OnceValue(func() int {
	total := mem.TotalMemory()
	switch {
	case total == 0:
		return fallbackHeapLimit
	case total > math.MaxInt:
		return math.MaxInt
	default:
		return int(total) //nolint:gosec // bounded above
	}
})

// Allocator hands out and takes back contiguous blocks.
//
// Alloc returns a block of exactly size bytes whose first byte is aligned to
// 64 bytes. Its contents are unspecified; recycled blocks may hold stale data.
// Free returns a block previously obtained from the same allocator.
type Allocator interface {
	Alloc(size int) ([]byte, error)
	Free(b []byte) error
}

// Heap allocates blocks on the Go heap.
// Free is a no-op: the garbage collector reclaims unreferenced blocks.
type Heap struct {
	// MaxBlock caps a single allocation. Zero means DefaultHeapLimit().
	MaxBlock int
}

var defaultHeap = &Heap{}

// Default returns the shared heap allocator.
func Default() Allocator {
	return defaultHeap
}

// Alloc implements Allocator.
func (h *Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	limit := h.Limit()
	if size > limit {
		return nil, fmt.Errorf("%w: heap block of %d bytes exceeds limit %d", ErrOutOfMemory, size, limit)
	}
	return mem.AllocAligned(size), nil
}

// Limit returns the largest block h will allocate.
func (h *Heap) Limit() int {
	if h.MaxBlock > 0 {
		return h.MaxBlock
	}
	return DefaultHeapLimit()
}

// Free implements Allocator.
func (h *Heap) Free([]byte) error {
	return nil
}

// blockAddr identifies a block by the address of its first byte.
func blockAddr(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b))) //nolint:gosec // address used as a map key only
}
