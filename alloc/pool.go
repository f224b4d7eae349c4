package alloc

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"
)

// DefaultMaxIdle is the per size class idle limit used when NewPool gets maxIdle <= 0.
const DefaultMaxIdle = 8

// Pool recycles freed blocks on top of another allocator.
//
// Blocks are grouped by exact length. A freed block is parked in the FIFO
// free-list of its size class until that class holds maxIdle blocks; beyond
// that it is returned to the inner allocator. Recycled blocks are not zeroed.
type Pool struct {
	inner   Allocator
	maxIdle int

	mu      sync.Mutex
	classes map[int]*queue.Queue
	idle    int

	hits   atomic.Int64
	misses atomic.Int64
}

// PoolStats is a snapshot of pool activity.
type PoolStats struct {
	Hits   int64 // Allocations served from a free-list
	Misses int64 // Allocations forwarded to the inner allocator
	Idle   int   // Blocks currently parked
}

// NewPool wraps inner with per size class free-lists.
func NewPool(inner Allocator, maxIdle int) *Pool {
	if inner == nil {
		inner = Default()
	}
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	return &Pool{
		inner:   inner,
		maxIdle: maxIdle,
		classes: make(map[int]*queue.Queue),
	}
}

// Alloc implements Allocator.
func (p *Pool) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	p.mu.Lock()
	if q, ok := p.classes[size]; ok && q.Length() > 0 {
		b := q.Remove().([]byte)
		p.idle--
		p.mu.Unlock()
		p.hits.Add(1)
		return b, nil
	}
	p.mu.Unlock()

	p.misses.Add(1)
	return p.inner.Alloc(size)
}

// Free implements Allocator.
func (p *Pool) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	p.mu.Lock()
	q, ok := p.classes[len(b)]
	if !ok {
		q = queue.New()
		p.classes[len(b)] = q
	}
	if q.Length() < p.maxIdle {
		q.Add(b)
		p.idle++
		p.mu.Unlock()
		return nil
	}
	p.mu.Unlock()

	return p.inner.Free(b)
}

// Drain returns every parked block to the inner allocator.
func (p *Pool) Drain() error {
	p.mu.Lock()
	var parked [][]byte
	for size, q := range p.classes {
		for q.Length() > 0 {
			parked = append(parked, q.Remove().([]byte))
		}
		delete(p.classes, size)
	}
	p.idle = 0
	p.mu.Unlock()

	var errs []error
	for _, b := range parked {
		if err := p.inner.Free(b); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stats returns the current pool statistics.
func (p *Pool) Stats() PoolStats {
	p.mu.Lock()
	idle := p.idle
	p.mu.Unlock()

	return PoolStats{
		Hits:   p.hits.Load(),
		Misses: p.misses.Load(),
		Idle:   idle,
	}
}
