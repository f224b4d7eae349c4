package arrgo

import (
	"unsafe"
)

// Scalar is the set of element types the typed containers accept.
//
// Every Scalar is pointer-free, so its values may live in blocks the garbage
// collector never scans (see alloc.OffHeap).
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

func elemSizeOf[T Scalar]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// bytesOf reinterprets src as raw bytes without copying. nil stays nil.
func bytesOf[T Scalar](src []T) []byte {
	if src == nil {
		return nil
	}
	if len(src) == 0 {
		return []byte{}
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(src))), len(src)*elemSizeOf[T]()) //nolint:gosec // Scalar is pointer-free
}

// elemOf reinterprets an element slot as a *T.
func elemOf[T Scalar](slot []byte) *T {
	if slot == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(slot))) //nolint:gosec // slots are aligned for every Scalar
}

// sliceOf reinterprets a payload prefix as a []T.
func sliceOf[T Scalar](payload []byte) []T {
	n := len(payload) / elemSizeOf[T]()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(payload))), n) //nolint:gosec // slots are aligned for every Scalar
}

// Fixed is a typed view of an Array holding elements of type T.
type Fixed[T Scalar] struct {
	arr *Array
}

// NewFixed creates a Fixed with room for capacity elements and copies src
// into its first len(src) slots.
func NewFixed[T Scalar](src []T, capacity int, opts ...Option) Result[*Fixed[T]] {
	arr, e := newArray(bytesOf(src), len(src), capacity, elemSizeOf[T](), buildOptions(defaultOptions(), opts))
	if e != nil {
		return Fail[*Fixed[T]](e)
	}
	return Ok(&Fixed[T]{arr: arr})
}

// Clone returns an independent copy of f.
func (f *Fixed[T]) Clone(opts ...Option) Result[*Fixed[T]] {
	r := f.Raw().Clone(opts...)
	if !r.OK() {
		return Fail[*Fixed[T]](r.err)
	}
	return Ok(&Fixed[T]{arr: r.value})
}

// Release returns the storage to its allocator. Calling it again is a no-op.
func (f *Fixed[T]) Release() {
	f.Raw().Release()
}

// Raw returns the underlying type-erased Array.
func (f *Fixed[T]) Raw() *Array {
	if f == nil {
		return nil
	}
	return f.arr
}

// Cap returns the number of elements f can hold.
func (f *Fixed[T]) Cap() int {
	return f.Raw().Cap()
}

// Len returns Cap.
func (f *Fixed[T]) Len() int {
	return f.Raw().Cap()
}

// At returns a pointer to element i, or nil if i is outside [0, Cap()).
// The pointer aliases f's storage and becomes invalid on Release.
func (f *Fixed[T]) At(i int) *T {
	return elemOf[T](f.Raw().At(i))
}

// Get returns a copy of element i.
func (f *Fixed[T]) Get(i int) (T, error) {
	var zero T
	if f.Raw().released() {
		return zero, newError(NullAccess, msgReleased)
	}
	p := f.At(i)
	if p == nil {
		return zero, newError(InvalidIndex, msgIndexOutOfRange)
	}
	return *p, nil
}

// Set overwrites element i with v.
func (f *Fixed[T]) Set(i int, v T) error {
	if f.Raw().released() {
		return newError(NullAccess, msgReleased)
	}
	p := f.At(i)
	if p == nil {
		return newError(InvalidIndex, msgIndexOutOfRange)
	}
	*p = v
	return nil
}

// Slice returns every element as a slice aliasing f's storage.
func (f *Fixed[T]) Slice() []T {
	return sliceOf[T](f.Raw().Bytes())
}

// Strict is a typed view of a StrictArray holding elements of type T.
type Strict[T Scalar] struct {
	arr *StrictArray
}

// NewStrict creates a Strict with room for capacity elements, copies src into
// it and sets its length to len(src).
func NewStrict[T Scalar](src []T, capacity int, opts ...Option) Result[*Strict[T]] {
	arr, e := newStrictArray(bytesOf(src), len(src), capacity, elemSizeOf[T](), buildOptions(defaultOptions(), opts))
	if e != nil {
		return Fail[*Strict[T]](e)
	}
	return Ok(&Strict[T]{arr: arr})
}

// Clone returns an independent copy of s.
func (s *Strict[T]) Clone(opts ...Option) Result[*Strict[T]] {
	r := s.Raw().Clone(opts...)
	if !r.OK() {
		return Fail[*Strict[T]](r.err)
	}
	return Ok(&Strict[T]{arr: r.value})
}

// Release returns the storage to its allocator. Calling it again is a no-op.
func (s *Strict[T]) Release() {
	s.Raw().Release()
}

// Raw returns the underlying type-erased StrictArray.
func (s *Strict[T]) Raw() *StrictArray {
	if s == nil {
		return nil
	}
	return s.arr
}

// Len returns the number of live elements.
func (s *Strict[T]) Len() int {
	return s.Raw().Len()
}

// Cap returns the number of elements s can hold.
func (s *Strict[T]) Cap() int {
	return s.Raw().Cap()
}

// Append adds v after the last live element.
// It fails with CapacityExhausted when s is full.
func (s *Strict[T]) Append(v T) error {
	return s.Raw().Append(unsafe.Slice((*byte)(unsafe.Pointer(&v)), elemSizeOf[T]())) //nolint:gosec // Scalar is pointer-free
}

// RemoveLast drops the last live element. No-op when empty.
func (s *Strict[T]) RemoveLast() {
	s.Raw().RemoveLast()
}

// Clear drops every live element.
func (s *Strict[T]) Clear() {
	s.Raw().Clear()
}

// At returns a pointer to live element i, or nil if i is outside [0, Len()).
// The pointer aliases s's storage and becomes invalid on Release.
func (s *Strict[T]) At(i int) *T {
	return elemOf[T](s.Raw().At(i))
}

// Get returns a copy of live element i.
func (s *Strict[T]) Get(i int) (T, error) {
	var zero T
	if s.Raw().released() {
		return zero, newError(NullAccess, msgReleased)
	}
	p := s.At(i)
	if p == nil {
		return zero, newError(InvalidIndex, msgIndexOutOfRange)
	}
	return *p, nil
}

// Set overwrites live element i with v.
func (s *Strict[T]) Set(i int, v T) error {
	if s.Raw().released() {
		return newError(NullAccess, msgReleased)
	}
	p := s.At(i)
	if p == nil {
		return newError(InvalidIndex, msgIndexOutOfRange)
	}
	*p = v
	return nil
}

// Last returns the last live element and true, or the zero value and false
// when s is empty or released.
func (s *Strict[T]) Last() (T, bool) {
	p := elemOf[T](s.Raw().Last())
	if p == nil {
		var zero T
		return zero, false
	}
	return *p, true
}

// Slice returns the live elements as a slice aliasing s's storage.
func (s *Strict[T]) Slice() []T {
	return sliceOf[T](s.Raw().Bytes())
}
