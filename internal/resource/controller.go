package resource

import (
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrMemoryLimitExceeded is returned when memory limit would be exceeded.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
	// ErrAllocRateExceeded is returned when the allocation rate limit is exhausted.
	ErrAllocRateExceeded = errors.New("allocation rate exceeded")
	// ErrReleaseExceedsUsage is returned when more memory is released than is reserved.
	ErrReleaseExceedsUsage = errors.New("release exceeds reserved memory")
)

// Config holds resource limits.
type Config struct {
	// MemoryLimitBytes is the hard limit for managed memory.
	// If 0, no hard limit is enforced (only tracking).
	MemoryLimitBytes int64

	// AllocBytesPerSec is the sustained rate at which bytes may be reserved.
	// If 0, unlimited.
	AllocBytesPerSec int64

	// AllocBurstBytes is the token bucket size for the allocation rate.
	// If 0, defaults to AllocBytesPerSec.
	AllocBurstBytes int64
}

// Controller manages allocator resources.
type Controller struct {
	cfg Config

	// Memory
	memSem  *semaphore.Weighted // nil if unlimited
	memUsed atomic.Int64

	// Allocation rate
	allocLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	c := &Controller{cfg: cfg}

	if cfg.MemoryLimitBytes > 0 {
		c.memSem = semaphore.NewWeighted(cfg.MemoryLimitBytes)
	}

	if cfg.AllocBytesPerSec > 0 {
		burst := cfg.AllocBurstBytes
		if burst <= 0 {
			burst = cfg.AllocBytesPerSec
		}
		c.allocLimiter = rate.NewLimiter(rate.Limit(cfg.AllocBytesPerSec), int(burst))
	}

	return c
}

// AcquireMemory attempts to reserve memory.
// Returns ErrMemoryLimitExceeded if limit would be exceeded.
// Non-blocking - callers control retry/backoff policy.
func (c *Controller) AcquireMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	if c.memSem != nil {
		if !c.memSem.TryAcquire(bytes) {
			return ErrMemoryLimitExceeded
		}
	}

	c.memUsed.Add(bytes)
	return nil
}

// ReleaseMemory releases reserved memory.
// Releasing more than is currently reserved returns ErrReleaseExceedsUsage
// and changes nothing.
func (c *Controller) ReleaseMemory(bytes int64) error {
	if c == nil {
		return nil
	}
	if bytes <= 0 {
		return nil
	}

	for {
		used := c.memUsed.Load()
		if bytes > used {
			return ErrReleaseExceedsUsage
		}
		if c.memUsed.CompareAndSwap(used, used-bytes) {
			break
		}
	}

	if c.memSem != nil {
		c.memSem.Release(bytes)
	}
	return nil
}

// MemoryUsage returns the current memory usage in bytes.
func (c *Controller) MemoryUsage() int64 {
	if c == nil {
		return 0
	}
	return c.memUsed.Load()
}

// MemoryLimit returns the configured memory limit in bytes (0 if unlimited).
func (c *Controller) MemoryLimit() int64 {
	if c == nil {
		return 0
	}
	return c.cfg.MemoryLimitBytes
}

// AllowAlloc reports whether bytes may be reserved now under the rate limit.
// Tokens are consumed only when it returns true.
func (c *Controller) AllowAlloc(bytes int) bool {
	if c == nil || c.allocLimiter == nil {
		return true
	}
	if bytes <= 0 {
		return true
	}
	return c.allocLimiter.AllowN(time.Now(), bytes)
}

// Reserve combines AcquireMemory and AllowAlloc.
// On success the caller owns a memory reservation of bytes. Rate tokens are
// spent only when the memory limit admits the request.
func (c *Controller) Reserve(bytes int) error {
	if err := c.AcquireMemory(int64(bytes)); err != nil {
		return err
	}
	if !c.AllowAlloc(bytes) {
		_ = c.ReleaseMemory(int64(bytes))
		return ErrAllocRateExceeded
	}
	return nil
}
