package alloc

import (
	"fmt"

	"github.com/hupe1980/arrgo/internal/resource"
)

var (
	// ErrMemoryLimitExceeded is wrapped when a Budget memory limit refuses an allocation.
	ErrMemoryLimitExceeded = resource.ErrMemoryLimitExceeded
	// ErrAllocRateExceeded is wrapped when a Budget allocation rate refuses an allocation.
	ErrAllocRateExceeded = resource.ErrAllocRateExceeded
)

// BudgetConfig holds the limits enforced by a Budget.
type BudgetConfig struct {
	// MemoryLimitBytes caps the bytes held by live blocks. 0 means unlimited.
	MemoryLimitBytes int64
	// AllocBytesPerSec caps the sustained allocation rate. 0 means unlimited.
	AllocBytesPerSec int64
	// AllocBurstBytes is the largest burst under the rate limit.
	// 0 defaults to AllocBytesPerSec.
	AllocBurstBytes int64
}

// Budget reserves memory in a resource controller before delegating to an
// inner allocator. It never blocks: a request over budget fails immediately.
type Budget struct {
	inner Allocator
	rc    *resource.Controller
}

// NewBudget wraps inner with the given limits.
func NewBudget(inner Allocator, cfg BudgetConfig) *Budget {
	if inner == nil {
		inner = Default()
	}
	return &Budget{
		inner: inner,
		rc: resource.NewController(resource.Config{
			MemoryLimitBytes: cfg.MemoryLimitBytes,
			AllocBytesPerSec: cfg.AllocBytesPerSec,
			AllocBurstBytes:  cfg.AllocBurstBytes,
		}),
	}
}

// Alloc implements Allocator.
func (b *Budget) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	if err := b.rc.Reserve(size); err != nil {
		return nil, fmt.Errorf("%w: %d bytes: %w", ErrOutOfMemory, size, err)
	}

	block, err := b.inner.Alloc(size)
	if err != nil {
		// Give the reservation back so a failed allocation leaves no trace.
		_ = b.rc.ReleaseMemory(int64(size))
		return nil, err
	}
	return block, nil
}

// Free implements Allocator.
//
// The reservation is returned only after the inner allocator accepts the
// block. Budget does not record individual blocks: wrap a Tracker to reject
// foreign blocks and double frees before they reach the budget.
func (b *Budget) Free(block []byte) error {
	if len(block) == 0 {
		return nil
	}
	if err := b.inner.Free(block); err != nil {
		return err
	}
	if err := b.rc.ReleaseMemory(int64(len(block))); err != nil {
		return fmt.Errorf("%w: %d bytes not reserved: %w", ErrUnknownBlock, len(block), err)
	}
	return nil
}

// Usage returns the bytes currently reserved by live blocks.
func (b *Budget) Usage() int64 {
	return b.rc.MemoryUsage()
}

// Limit returns the memory limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	return b.rc.MemoryLimit()
}
