// Package alloc provides the block allocators that back arrgo containers.
//
// Every container owns exactly one block: a byte slice holding its header and
// payload. Where that block comes from is decided by an Allocator.
//
// # Allocators
//
//   - Heap: 64-byte aligned Go heap memory (the default)
//   - OffHeap: one anonymous mmap per block, invisible to the garbage collector
//   - Pool: recycles freed blocks by exact size on top of another allocator
//   - Budget: enforces a memory limit and an allocation rate
//   - Tracker: records outstanding blocks for leak checks
//
// Allocators compose by wrapping:
//
//	a := alloc.NewTracker(
//	    alloc.NewBudget(alloc.NewPool(alloc.Default(), 16), alloc.BudgetConfig{
//	        MemoryLimitBytes: 64 << 20,
//	    }),
//	)
//
// # Failure
//
// Every allocation failure wraps ErrOutOfMemory so callers can test for it
// with errors.Is regardless of which layer refused the request.
//
// # Thread Safety
//
// All allocators in this package are safe for concurrent use.
package alloc
