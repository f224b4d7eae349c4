package alloc

import (
	"fmt"
	"sync"

	"github.com/hupe1980/arrgo/internal/mmap"
)

// OffHeap allocates every block as its own anonymous memory mapping.
//
// Blocks live outside the Go heap, so they never add GC pressure and must only
// hold pointer-free data. Mappings are page granular: small blocks waste the
// rest of their page.
type OffHeap struct {
	mu       sync.Mutex
	mappings map[uintptr]*mmap.Mapping
}

// NewOffHeap creates an off-heap allocator.
func NewOffHeap() *OffHeap {
	return &OffHeap{
		mappings: make(map[uintptr]*mmap.Mapping),
	}
}

// Alloc implements Allocator.
func (o *OffHeap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	b := m.Bytes()

	o.mu.Lock()
	o.mappings[blockAddr(b)] = m
	o.mu.Unlock()

	return b, nil
}

// Free implements Allocator.
func (o *OffHeap) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	addr := blockAddr(b)

	o.mu.Lock()
	m, ok := o.mappings[addr]
	if ok {
		delete(o.mappings, addr)
	}
	o.mu.Unlock()

	if !ok {
		return ErrUnknownBlock
	}
	return m.Close()
}

// Mapped returns the number of live mappings.
func (o *OffHeap) Mapped() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.mappings)
}

// Close unmaps every outstanding block. Blocks must not be used afterwards.
func (o *OffHeap) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var firstErr error
	for addr, m := range o.mappings {
		if err := m.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(o.mappings, addr)
	}
	return firstErr
}
