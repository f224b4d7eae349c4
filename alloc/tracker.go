package alloc

import (
	"fmt"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Tracker records every outstanding block of an inner allocator.
//
// Each successful Alloc is assigned a sequential uint32 ID that stays in a
// roaring bitmap until the block is freed. Freeing a block the tracker has
// not seen, or freeing it twice, returns ErrUnknownBlock without touching the
// inner allocator.
type Tracker struct {
	inner Allocator

	mu        sync.Mutex
	live      *roaring.Bitmap
	ids       map[uintptr]uint32
	sizes     map[uint32]int
	next      uint32
	liveBytes int
	allocs    uint64
	frees     uint64
}

// TrackerStats is a snapshot of tracker state.
type TrackerStats struct {
	Live      uint64 // Outstanding blocks
	LiveBytes int    // Bytes held by outstanding blocks
	Allocs    uint64 // Successful allocations
	Frees     uint64 // Successful frees
}

// NewTracker wraps inner with outstanding block tracking.
func NewTracker(inner Allocator) *Tracker {
	if inner == nil {
		inner = Default()
	}
	return &Tracker{
		inner: inner,
		live:  roaring.New(),
		ids:   make(map[uintptr]uint32),
		sizes: make(map[uint32]int),
	}
}

// Alloc implements Allocator.
func (t *Tracker) Alloc(size int) ([]byte, error) {
	b, err := t.inner.Alloc(size)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.next
	t.next++
	t.live.Add(id)
	t.ids[blockAddr(b)] = id
	t.sizes[id] = len(b)
	t.liveBytes += len(b)
	t.allocs++

	return b, nil
}

// Free implements Allocator.
func (t *Tracker) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}

	addr := blockAddr(b)

	t.mu.Lock()
	id, ok := t.ids[addr]
	if !ok {
		t.mu.Unlock()
		return fmt.Errorf("%w: %#x", ErrUnknownBlock, addr)
	}
	delete(t.ids, addr)
	t.live.Remove(id)
	t.liveBytes -= t.sizes[id]
	delete(t.sizes, id)
	t.frees++
	t.mu.Unlock()

	return t.inner.Free(b)
}

// Live returns the number of outstanding blocks.
func (t *Tracker) Live() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live.GetCardinality()
}

// LiveBytes returns the bytes held by outstanding blocks.
func (t *Tracker) LiveBytes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.liveBytes
}

// Outstanding returns the IDs of outstanding blocks in allocation order.
func (t *Tracker) Outstanding() []uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.live.ToArray()
}

// Stats returns the current tracker statistics.
func (t *Tracker) Stats() TrackerStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return TrackerStats{
		Live:      t.live.GetCardinality(),
		LiveBytes: t.liveBytes,
		Allocs:    t.allocs,
		Frees:     t.frees,
	}
}
