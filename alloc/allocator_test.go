package alloc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/arrgo/internal/mem"
)

func TestHeap_Alloc(t *testing.T) {
	h := &Heap{}

	b, err := h.Alloc(100)
	require.NoError(t, err)
	assert.Len(t, b, 100)
	assert.True(t, mem.IsAligned(b))
	assert.NoError(t, h.Free(b))
}

func TestHeap_Limits(t *testing.T) {
	t.Run("invalid size", func(t *testing.T) {
		_, err := Default().Alloc(0)
		assert.ErrorIs(t, err, ErrInvalidSize)
	})

	t.Run("over max block", func(t *testing.T) {
		h := &Heap{MaxBlock: 128}

		_, err := h.Alloc(129)
		assert.ErrorIs(t, err, ErrOutOfMemory)

		b, err := h.Alloc(128)
		require.NoError(t, err)
		assert.Len(t, b, 128)
	})

	t.Run("over default limit", func(t *testing.T) {
		limit := DefaultHeapLimit()
		if limit == math.MaxInt {
			t.Skip("physical memory exceeds the int range")
		}
		assert.Equal(t, limit, Default().(*Heap).Limit())

		// Refused before reaching the runtime, which would abort instead.
		_, err := Default().Alloc(limit + 1)
		assert.ErrorIs(t, err, ErrOutOfMemory)
	})
}

func TestOffHeap(t *testing.T) {
	o := NewOffHeap()
	defer o.Close()

	b, err := o.Alloc(4096)
	require.NoError(t, err)
	assert.Len(t, b, 4096)
	assert.True(t, mem.IsAligned(b))
	assert.Equal(t, 1, o.Mapped())

	b[0], b[4095] = 1, 2

	require.NoError(t, o.Free(b))
	assert.Equal(t, 0, o.Mapped())

	// The mapping is gone; a second free is rejected.
	assert.ErrorIs(t, o.Free(b), ErrUnknownBlock)
}

func TestOffHeap_Close(t *testing.T) {
	o := NewOffHeap()

	for i := 0; i < 3; i++ {
		_, err := o.Alloc(256)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, o.Mapped())

	require.NoError(t, o.Close())
	assert.Equal(t, 0, o.Mapped())
}

func TestPool(t *testing.T) {
	tr := NewTracker(Default())
	p := NewPool(tr, 2)

	a, err := p.Alloc(128)
	require.NoError(t, err)
	b, err := p.Alloc(128)
	require.NoError(t, err)
	c, err := p.Alloc(128)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), tr.Live())

	require.NoError(t, p.Free(a))
	require.NoError(t, p.Free(b))
	// Class is full: the third block goes back to the tracker.
	require.NoError(t, p.Free(c))
	assert.Equal(t, uint64(2), tr.Live())
	assert.Equal(t, 2, p.Stats().Idle)

	// FIFO reuse hands back the first parked block.
	again, err := p.Alloc(128)
	require.NoError(t, err)
	assert.Same(t, &a[0], &again[0])

	// A different size class misses.
	_, err = p.Alloc(256)
	require.NoError(t, err)

	stats := p.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(4), stats.Misses)
	assert.Equal(t, 1, stats.Idle)
}

func TestPool_Drain(t *testing.T) {
	tr := NewTracker(nil)
	p := NewPool(tr, 0)

	for i := 0; i < 4; i++ {
		b, err := p.Alloc(64)
		require.NoError(t, err)
		require.NoError(t, p.Free(b))
	}
	// Sequential alloc/free cycles reuse one block.
	assert.Equal(t, uint64(1), tr.Live())

	require.NoError(t, p.Drain())
	assert.Equal(t, uint64(0), tr.Live())
	assert.Equal(t, 0, p.Stats().Idle)
}

func TestBudget(t *testing.T) {
	t.Run("memory limit", func(t *testing.T) {
		bg := NewBudget(nil, BudgetConfig{MemoryLimitBytes: 256})

		a, err := bg.Alloc(200)
		require.NoError(t, err)
		assert.Equal(t, int64(200), bg.Usage())
		assert.Equal(t, int64(256), bg.Limit())

		_, err = bg.Alloc(100)
		assert.ErrorIs(t, err, ErrOutOfMemory)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
		assert.Equal(t, int64(200), bg.Usage())

		require.NoError(t, bg.Free(a))
		assert.Equal(t, int64(0), bg.Usage())

		_, err = bg.Alloc(100)
		assert.NoError(t, err)
	})

	t.Run("rate limit", func(t *testing.T) {
		bg := NewBudget(nil, BudgetConfig{AllocBytesPerSec: 1, AllocBurstBytes: 100})

		_, err := bg.Alloc(80)
		require.NoError(t, err)

		_, err = bg.Alloc(80)
		assert.ErrorIs(t, err, ErrOutOfMemory)
		assert.ErrorIs(t, err, ErrAllocRateExceeded)
	})

	t.Run("inner failure releases reservation", func(t *testing.T) {
		bg := NewBudget(&Heap{MaxBlock: 64}, BudgetConfig{MemoryLimitBytes: 1024})

		_, err := bg.Alloc(128)
		assert.ErrorIs(t, err, ErrOutOfMemory)
		assert.Equal(t, int64(0), bg.Usage())
	})

	t.Run("rejected double free keeps reservation", func(t *testing.T) {
		tr := NewTracker(nil)
		bg := NewBudget(tr, BudgetConfig{MemoryLimitBytes: 512})

		a, err := bg.Alloc(256)
		require.NoError(t, err)
		b, err := bg.Alloc(256)
		require.NoError(t, err)

		require.NoError(t, bg.Free(a))
		assert.Equal(t, int64(256), bg.Usage())

		assert.ErrorIs(t, bg.Free(a), ErrUnknownBlock)
		assert.Equal(t, int64(256), bg.Usage())

		// The limit still holds for the live block.
		_, err = bg.Alloc(512)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)

		require.NoError(t, bg.Free(b))
		assert.Equal(t, int64(0), bg.Usage())
	})

	t.Run("foreign block does not panic", func(t *testing.T) {
		bg := NewBudget(nil, BudgetConfig{MemoryLimitBytes: 512})
		foreign := make([]byte, 128)

		assert.NotPanics(t, func() {
			assert.ErrorIs(t, bg.Free(foreign), ErrUnknownBlock)
		})
		assert.Equal(t, int64(0), bg.Usage())

		_, err := bg.Alloc(512)
		assert.NoError(t, err)
	})
}

func TestTracker(t *testing.T) {
	tr := NewTracker(nil)

	a, err := tr.Alloc(64)
	require.NoError(t, err)
	b, err := tr.Alloc(128)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), tr.Live())
	assert.Equal(t, 192, tr.LiveBytes())
	assert.Equal(t, []uint32{0, 1}, tr.Outstanding())

	require.NoError(t, tr.Free(a))
	assert.Equal(t, []uint32{1}, tr.Outstanding())

	// Double free is detected.
	assert.ErrorIs(t, tr.Free(a), ErrUnknownBlock)

	require.NoError(t, tr.Free(b))
	stats := tr.Stats()
	assert.Equal(t, uint64(0), stats.Live)
	assert.Equal(t, 0, stats.LiveBytes)
	assert.Equal(t, uint64(2), stats.Allocs)
	assert.Equal(t, uint64(2), stats.Frees)
}

func TestTracker_FailedAllocNotTracked(t *testing.T) {
	tr := NewTracker(&Heap{MaxBlock: 32})

	_, err := tr.Alloc(64)
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, uint64(0), tr.Live())
	assert.Equal(t, uint64(0), tr.Stats().Allocs)
}
