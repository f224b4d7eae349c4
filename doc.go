// Package arrgo provides contiguously stored, capacity-bounded containers.
//
// Two container shapes are offered, each in a type-erased form that stores raw
// bytes with an explicit element size and in a typed form for Scalar types:
//
//   - Array / Fixed[T]: fixed capacity, every slot readable and writable
//   - StrictArray / Strict[T]: fixed capacity, append and remove at the tail only
//
// # Quick Start
//
//	r := arrgo.NewStrict([]int32{1, 2, 3}, 5)
//	s, err := r.Unwrap()
//	if err != nil {
//	    return err
//	}
//	defer arrgo.Release(&s)
//
//	_ = s.Append(4)
//	_ = s.Append(5)
//	err = s.Append(6) // errors.Is(err, arrgo.ErrCapacityExhausted)
//
// # Results
//
// Constructors and Clone return a Result: a value or an *Error, never both.
// Unwrap returns the pair in the usual Go shape; Into writes through a
// pointer. Status and errors.Is expose the failure kind:
//
//	var arr *arrgo.Array
//	r := arrgo.NewArray(src, 3, 2, 4)
//	if err := r.Into(&arr); errors.Is(err, arrgo.ErrInvalidSize) {
//	    // capacity < count; arr is nil and nothing was allocated
//	}
//
// # Memory Layout
//
// Each container owns exactly one block from its allocator: a 64-byte header
// (capacity, element size, length) followed by the payload. The header
// travels with the data, so a block is self-describing. Blocks never grow.
//
// # Allocators
//
// Storage comes from the alloc package. The default is 64-byte aligned Go
// heap memory; alloc.OffHeap, alloc.Pool, alloc.Budget and alloc.Tracker can
// be combined and passed with WithAllocator.
//
// # Ownership
//
// A handle owns its block until Release. Slices and pointers returned by At,
// Bytes and Slice alias the block and must not be used after Release. After
// Release a handle behaves like nil: accessors return nil, fallible calls
// return NullAccess, and Release is a no-op.
//
// # Thread Safety
//
// Containers are not safe for concurrent use. Allocators are.
package arrgo
