package arrgo

import (
	"unsafe"

	"github.com/hupe1980/arrgo/alloc"
	"github.com/hupe1980/arrgo/internal/conv"
	"github.com/hupe1980/arrgo/internal/mem"
)

// headerSize is the byte length of the header at the start of every block.
// The payload starts right after it, on a cache-line boundary.
const headerSize = mem.Alignment

type kind uint64

const (
	kindArray  kind = 1
	kindStrict kind = 2
)

func (k kind) String() string {
	switch k {
	case kindArray:
		return "array"
	case kindStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// header is the fixed prefix of a block. It holds only integers, so a block
// may live in memory the garbage collector does not scan.
type header struct {
	capacity uint64
	elemSize uint64
	size     uint64 // logical length, strict arrays only
	kind     kind
	_        [4]uint64
}

// header must fill exactly one cache line.
var (
	_ [headerSize - unsafe.Sizeof(header{})]byte
	_ [unsafe.Sizeof(header{}) - headerSize]byte
)

func headerOf(block []byte) *header {
	return (*header)(unsafe.Pointer(unsafe.SliceData(block))) //nolint:gosec // blocks are 64-byte aligned and at least headerSize long
}

// Header fields are written from validated non-negative ints, so reading
// them back with a plain conversion cannot truncate.

func (h *header) capacityInt() int {
	return int(h.capacity) //nolint:gosec // see above
}

func (h *header) elemSizeInt() int {
	return int(h.elemSize) //nolint:gosec // see above
}

func (h *header) sizeInt() int {
	return int(h.size) //nolint:gosec // see above
}

// validate applies the construction rules shared by both container kinds and
// returns the effective count.
func validate(src []byte, count, capacity, elemSize int) (int, *Error) {
	if src == nil {
		count = 0
	}
	if count < 0 {
		return 0, newError(InvalidSize, msgNegativeCount)
	}
	if capacity < count {
		return 0, newError(InvalidSize, msgCapacityBelow)
	}
	if elemSize < 1 {
		return 0, newError(InvalidSize, msgElemSize)
	}
	need, err := conv.MulInt(count, elemSize)
	if err != nil {
		return 0, wrapError(InvalidSize, msgLayoutOverflow, err)
	}
	if len(src) < need {
		return 0, newError(InvalidSize, msgShortSource)
	}
	return count, nil
}

// blockSize returns the payload length and the full block length.
func blockSize(capacity, elemSize int) (int, int, *Error) {
	payload, err := conv.MulInt(capacity, elemSize)
	if err != nil {
		return 0, 0, wrapError(InvalidSize, msgLayoutOverflow, err)
	}
	total, err := conv.AddInt(payload, headerSize)
	if err != nil {
		return 0, 0, wrapError(InvalidSize, msgLayoutOverflow, err)
	}
	return payload, total, nil
}

// storage is the owning part of a container handle: one block plus the
// options it was created with. A nil block is the null state.
type storage struct {
	block []byte
	opts  options
}

// allocStorage obtains a block and writes its header. size is left at zero.
func allocStorage(k kind, capacity, elemSize int, opts options) (storage, *Error) {
	_, total, e := blockSize(capacity, elemSize)
	if e != nil {
		return storage{}, e
	}

	block, err := opts.allocator.Alloc(total)
	if err != nil {
		return storage{}, wrapError(AllocationFailure, msgOutOfMemory, err)
	}
	if len(block) != total {
		// Hand back what we got so a misbehaving allocator does not leak.
		_ = opts.allocator.Free(block)
		return storage{}, wrapError(AllocationFailure, msgOutOfMemory, alloc.ErrInvalidSize)
	}

	c, err := conv.IntToUint64(capacity)
	if err != nil {
		_ = opts.allocator.Free(block)
		return storage{}, wrapError(InvalidSize, msgLayoutOverflow, err)
	}
	es, err := conv.IntToUint64(elemSize)
	if err != nil {
		_ = opts.allocator.Free(block)
		return storage{}, wrapError(InvalidSize, msgLayoutOverflow, err)
	}

	h := headerOf(block)
	*h = header{capacity: c, elemSize: es, kind: k}

	return storage{block: block, opts: opts}, nil
}

func (s *storage) hdr() *header {
	return headerOf(s.block)
}

// slot returns the aliasing view of element i without bounds checks.
func (s *storage) slot(i, elemSize int) []byte {
	off := headerSize + i*elemSize
	end := off + elemSize
	return s.block[off:end:end]
}

// prefix returns the first n elements of the payload.
func (s *storage) prefix(n, elemSize int) []byte {
	end := headerSize + n*elemSize
	return s.block[headerSize:end:end]
}

// release returns the block to its allocator and enters the null state.
func (s *storage) release() {
	if s.block == nil {
		return
	}
	k := s.hdr().kind.String()
	bytes := len(s.block)

	err := s.opts.allocator.Free(s.block)
	s.block = nil

	s.opts.logger.LogRelease(k, bytes, err)
	s.opts.metrics.RecordRelease(k, bytes)
}
