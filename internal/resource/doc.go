// Package resource implements the Controller that governs allocator memory.
//
// The Controller manages two limits:
//
//   - Memory: a hard cap on bytes held by live blocks (non-blocking, fail-fast)
//   - Allocation rate: a token bucket on bytes reserved per second
//
// # Architecture
//
//	┌───────────────────────────────────────────┐
//	│                Controller                 │
//	├─────────────────────┬─────────────────────┤
//	│  Memory Limit       │  Allocation Rate    │
//	│  (weighted sem)     │  (token bucket)     │
//	├─────────────────────┼─────────────────────┤
//	│  AcquireMemory      │  AllowAlloc         │
//	│  ReleaseMemory      │                     │
//	│  MemoryUsage        │                     │
//	└─────────────────────┴─────────────────────┘
//
// # Memory Management
//
// AcquireMemory never blocks. It returns ErrMemoryLimitExceeded immediately
// when the reservation would exceed the limit:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 1 << 30, // 1GB limit
//	})
//
//	if err := rc.AcquireMemory(1024 * 1024); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides what to do
//	}
//	defer rc.ReleaseMemory(1024 * 1024)
//
// # Allocation Rate
//
// AllowAlloc consumes tokens from a bucket refilled at AllocBytesPerSec. It
// also never blocks; an exhausted bucket reports false.
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
package resource
