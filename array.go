package arrgo

import (
	"fmt"

	"github.com/hupe1980/arrgo/internal/mem"
)

// Array is a fixed-capacity container of elemSize-byte elements.
//
// Every slot in [0, Cap()) is readable and writable; an Array has no logical
// length distinct from its capacity. Slots not populated at construction are
// zero.
//
// An Array is not safe for concurrent use.
type Array struct {
	storage
}

// NewArray creates an Array with room for capacity elements of elemSize bytes
// and copies the first count elements of src into it.
//
// A nil src forces count to zero. The result fails with InvalidSize if count is
// negative, capacity < count, elemSize < 1, src is shorter than
// count*elemSize, or the layout overflows; and with AllocationFailure if the
// allocator refuses the block.
func NewArray(src []byte, count, capacity, elemSize int, opts ...Option) Result[*Array] {
	return resultOf(newArray(src, count, capacity, elemSize, buildOptions(defaultOptions(), opts)))
}

func newArray(src []byte, count, capacity, elemSize int, o options) (*Array, *Error) {
	count, e := validate(src, count, capacity, elemSize)
	if e == nil {
		var s storage
		s, e = allocStorage(kindArray, capacity, elemSize, o)
		if e == nil {
			payload := s.prefix(capacity, elemSize)
			n := copy(payload, src[:count*elemSize])
			mem.Zero(payload[n:])

			o.logger.LogCreate(kindArray.String(), capacity, elemSize, nil)
			o.metrics.RecordCreate(kindArray.String(), len(s.block), nil)
			return &Array{storage: s}, nil
		}
	}

	o.logger.LogCreate(kindArray.String(), capacity, elemSize, e)
	o.metrics.RecordCreate(kindArray.String(), 0, e)
	return nil, e
}

// Clone returns an independent copy of a with the same capacity, element size
// and full payload. The copy uses a's options unless opts override them.
func (a *Array) Clone(opts ...Option) Result[*Array] {
	if a.released() {
		return Fail[*Array](newError(NullAccess, msgReleased))
	}
	h := a.hdr()
	capacity, elemSize := h.capacityInt(), h.elemSizeInt()
	return resultOf(newArray(a.prefix(capacity, elemSize), capacity, capacity, elemSize, buildOptions(a.opts, opts)))
}

func (a *Array) released() bool {
	return a == nil || a.block == nil
}

// Release returns the block to its allocator. Afterwards a behaves like a
// nil Array. Calling Release again is a no-op.
func (a *Array) Release() {
	if a == nil {
		return
	}
	a.release()
}

// Cap returns the number of elements a can hold (0 if released).
func (a *Array) Cap() int {
	if a.released() {
		return 0
	}
	return a.hdr().capacityInt()
}

// Len returns Cap: every slot of an Array is live.
func (a *Array) Len() int {
	return a.Cap()
}

// ElemSize returns the byte width of one element (0 if released).
func (a *Array) ElemSize() int {
	if a.released() {
		return 0
	}
	return a.hdr().elemSizeInt()
}

// At returns the element at index i as a slice aliasing the array's storage,
// or nil if i is outside [0, Cap()) or a is released.
//
// The slice is exactly ElemSize bytes long and becomes invalid on Release.
func (a *Array) At(i int) []byte {
	if a.released() {
		return nil
	}
	h := a.hdr()
	if i < 0 || i >= h.capacityInt() {
		return nil
	}
	return a.slot(i, h.elemSizeInt())
}

// Bytes returns the whole payload, aliasing the array's storage.
func (a *Array) Bytes() []byte {
	if a.released() {
		return nil
	}
	h := a.hdr()
	return a.prefix(h.capacityInt(), h.elemSizeInt())
}

// Load copies element i into dst, which must hold at least ElemSize bytes.
func (a *Array) Load(i int, dst []byte) error {
	if a.released() {
		return newError(NullAccess, msgReleased)
	}
	slot := a.At(i)
	if slot == nil {
		return newError(InvalidIndex, msgIndexOutOfRange)
	}
	if len(dst) < len(slot) {
		return newError(InvalidSize, msgShortValue)
	}
	copy(dst, slot)
	return nil
}

// Store copies the first ElemSize bytes of src into element i.
func (a *Array) Store(i int, src []byte) error {
	if a.released() {
		return newError(NullAccess, msgReleased)
	}
	slot := a.At(i)
	if slot == nil {
		return newError(InvalidIndex, msgIndexOutOfRange)
	}
	if len(src) < len(slot) {
		return newError(InvalidSize, msgShortValue)
	}
	copy(slot, src)
	return nil
}

// Fill copies the first ElemSize bytes of v into every element.
func (a *Array) Fill(v []byte) error {
	if a.released() {
		return newError(NullAccess, msgReleased)
	}
	h := a.hdr()
	elemSize := h.elemSizeInt()
	if len(v) < elemSize {
		return newError(InvalidSize, msgShortValue)
	}
	for i := range h.capacityInt() {
		copy(a.slot(i, elemSize), v)
	}
	return nil
}

func (a *Array) String() string {
	if a.released() {
		return "Array{released}"
	}
	h := a.hdr()
	return fmt.Sprintf("Array{cap: %d, elem: %d}", h.capacityInt(), h.elemSizeInt())
}
