package arrgo

import (
	"fmt"
)

// StrictArray is a capacity-bounded container that grows and shrinks only at
// its tail.
//
// Its logical length moves between 0 and Cap(): Append adds one element,
// RemoveLast drops one, Clear drops all. Capacity never changes; an Append on
// a full StrictArray fails with CapacityExhausted instead of reallocating.
// Only elements in [0, Len()) are readable. Bytes past the live prefix keep
// whatever earlier appends left there.
//
// A StrictArray is not safe for concurrent use.
type StrictArray struct {
	storage
}

// NewStrictArray creates a StrictArray with room for capacity elements of
// elemSize bytes, copies the first count elements of src into it and sets its
// length to count.
//
// Validation is identical to NewArray.
func NewStrictArray(src []byte, count, capacity, elemSize int, opts ...Option) Result[*StrictArray] {
	return resultOf(newStrictArray(src, count, capacity, elemSize, buildOptions(defaultOptions(), opts)))
}

func newStrictArray(src []byte, count, capacity, elemSize int, o options) (*StrictArray, *Error) {
	count, e := validate(src, count, capacity, elemSize)
	if e == nil {
		var s storage
		s, e = allocStorage(kindStrict, capacity, elemSize, o)
		if e == nil {
			copy(s.prefix(count, elemSize), src)
			s.hdr().size = uint64(count) //nolint:gosec // validated non-negative

			o.logger.LogCreate(kindStrict.String(), capacity, elemSize, nil)
			o.metrics.RecordCreate(kindStrict.String(), len(s.block), nil)
			return &StrictArray{storage: s}, nil
		}
	}

	o.logger.LogCreate(kindStrict.String(), capacity, elemSize, e)
	o.metrics.RecordCreate(kindStrict.String(), 0, e)
	return nil, e
}

func (a *StrictArray) released() bool {
	return a == nil || a.block == nil
}

// Clone returns an independent copy of a with the same capacity, element size
// and length. Only the live prefix is copied. The copy uses a's options
// unless opts override them.
func (a *StrictArray) Clone(opts ...Option) Result[*StrictArray] {
	if a.released() {
		return Fail[*StrictArray](newError(NullAccess, msgReleased))
	}
	h := a.hdr()
	size, elemSize := h.sizeInt(), h.elemSizeInt()
	return resultOf(newStrictArray(a.prefix(size, elemSize), size, h.capacityInt(), elemSize, buildOptions(a.opts, opts)))
}

// Release returns the block to its allocator. Afterwards a behaves like a
// nil StrictArray. Calling Release again is a no-op.
func (a *StrictArray) Release() {
	if a == nil {
		return
	}
	a.release()
}

// Len returns the number of live elements (0 if released).
func (a *StrictArray) Len() int {
	if a.released() {
		return 0
	}
	return a.hdr().sizeInt()
}

// Cap returns the number of elements a can hold (0 if released).
func (a *StrictArray) Cap() int {
	if a.released() {
		return 0
	}
	return a.hdr().capacityInt()
}

// ElemSize returns the byte width of one element (0 if released).
func (a *StrictArray) ElemSize() int {
	if a.released() {
		return 0
	}
	return a.hdr().elemSizeInt()
}

// Remaining returns how many more elements can be appended.
func (a *StrictArray) Remaining() int {
	return a.Cap() - a.Len()
}

// Empty reports whether a holds no live elements.
func (a *StrictArray) Empty() bool {
	return a.Len() == 0
}

// Full reports whether the next Append would fail with CapacityExhausted.
// A released array is never full.
func (a *StrictArray) Full() bool {
	if a.released() {
		return false
	}
	h := a.hdr()
	return h.size == h.capacity
}

// Append copies the first ElemSize bytes of v into the slot after the last
// live element and extends the length by one.
//
// It fails with NullAccess on a released array, InvalidSize if v is shorter
// than ElemSize, and CapacityExhausted if the array is full. A failed Append
// leaves the array unchanged.
func (a *StrictArray) Append(v []byte) error {
	err := a.appendElem(v)
	if a != nil && a.block != nil {
		a.opts.metrics.RecordAppend(err)
	}
	return err
}

func (a *StrictArray) appendElem(v []byte) error {
	if a.released() {
		return newError(NullAccess, msgReleased)
	}
	h := a.hdr()
	elemSize := h.elemSizeInt()
	if len(v) < elemSize {
		return newError(InvalidSize, msgShortValue)
	}
	if h.size == h.capacity {
		a.opts.logger.LogAppendRejected(kindStrict.String(), h.capacityInt())
		return newError(CapacityExhausted, msgFull)
	}
	copy(a.slot(h.sizeInt(), elemSize), v)
	h.size++
	return nil
}

// RemoveLast drops the last live element. The vacated bytes are left as they
// are. It is a no-op on an empty or released array.
func (a *StrictArray) RemoveLast() {
	if a.released() {
		return
	}
	h := a.hdr()
	if h.size > 0 {
		h.size--
	}
}

// Clear drops every live element without touching the payload.
// It is a no-op on a released array.
func (a *StrictArray) Clear() {
	if a.released() {
		return
	}
	a.hdr().size = 0
}

// At returns the live element at index i as a slice aliasing the array's
// storage, or nil if i is outside [0, Len()) or a is released.
//
// The slice is exactly ElemSize bytes long and becomes invalid on Release.
// It is not invalidated by RemoveLast or Clear, but the element it shows is
// no longer live and will be overwritten by the next Append into that slot.
func (a *StrictArray) At(i int) []byte {
	if a.released() {
		return nil
	}
	h := a.hdr()
	if i < 0 || i >= h.sizeInt() {
		return nil
	}
	return a.slot(i, h.elemSizeInt())
}

// Last returns the last live element, or nil if a is empty or released.
func (a *StrictArray) Last() []byte {
	return a.At(a.Len() - 1)
}

// Bytes returns the live prefix of the payload, aliasing the array's storage.
func (a *StrictArray) Bytes() []byte {
	if a.released() {
		return nil
	}
	h := a.hdr()
	return a.prefix(h.sizeInt(), h.elemSizeInt())
}

// Load copies live element i into dst, which must hold at least ElemSize bytes.
func (a *StrictArray) Load(i int, dst []byte) error {
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

// Store overwrites live element i with the first ElemSize bytes of src.
func (a *StrictArray) Store(i int, src []byte) error {
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

func (a *StrictArray) String() string {
	if a.released() {
		return "StrictArray{released}"
	}
	h := a.hdr()
	return fmt.Sprintf("StrictArray{len: %d, cap: %d, elem: %d}", h.sizeInt(), h.capacityInt(), h.elemSizeInt())
}
