package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestController_Memory(t *testing.T) {
	// Test with limit
	c := NewController(Config{MemoryLimitBytes: 100})

	// Acquire 50
	err := c.AcquireMemory(50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), c.MemoryUsage())

	// Acquire 40
	err = c.AcquireMemory(40)
	require.NoError(t, err)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Acquire 20 (should fail - limit exceeded)
	err = c.AcquireMemory(20)
	assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	assert.Equal(t, int64(90), c.MemoryUsage())

	// Release 50
	require.NoError(t, c.ReleaseMemory(50))
	assert.Equal(t, int64(40), c.MemoryUsage())

	// Now Acquire 20 should succeed
	err = c.AcquireMemory(20)
	require.NoError(t, err)
	assert.Equal(t, int64(60), c.MemoryUsage())
	assert.Equal(t, int64(100), c.MemoryLimit())
}

func TestController_UnlimitedMemory(t *testing.T) {
	c := NewController(Config{MemoryLimitBytes: 0})

	err := c.AcquireMemory(1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), c.MemoryUsage())

	require.NoError(t, c.ReleaseMemory(500))
	assert.Equal(t, int64(500), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}

func TestController_AllocRate(t *testing.T) {
	// One byte per second refill keeps the bucket effectively static for the test.
	c := NewController(Config{AllocBytesPerSec: 1, AllocBurstBytes: 100})

	assert.True(t, c.AllowAlloc(60))
	assert.False(t, c.AllowAlloc(60))
	assert.True(t, c.AllowAlloc(0))
}

func TestController_Reserve(t *testing.T) {
	t.Run("rate exhausted", func(t *testing.T) {
		c := NewController(Config{AllocBytesPerSec: 1, AllocBurstBytes: 10})

		err := c.Reserve(20)
		assert.ErrorIs(t, err, ErrAllocRateExceeded)
		assert.Equal(t, int64(0), c.MemoryUsage())
	})

	t.Run("memory exhausted", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 10})

		err := c.Reserve(20)
		assert.ErrorIs(t, err, ErrMemoryLimitExceeded)
	})

	t.Run("memory refusal spends no rate tokens", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 10, AllocBytesPerSec: 1, AllocBurstBytes: 30})

		assert.ErrorIs(t, c.Reserve(20), ErrMemoryLimitExceeded)
		assert.ErrorIs(t, c.Reserve(20), ErrMemoryLimitExceeded)

		require.NoError(t, c.Reserve(10))
		assert.Equal(t, int64(10), c.MemoryUsage())
	})

	t.Run("rate refusal returns the memory", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 100, AllocBytesPerSec: 1, AllocBurstBytes: 10})

		assert.ErrorIs(t, c.Reserve(20), ErrAllocRateExceeded)
		assert.Equal(t, int64(0), c.MemoryUsage())
		require.NoError(t, c.AcquireMemory(100))
	})

	t.Run("ok", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 64, AllocBytesPerSec: 1 << 20})

		require.NoError(t, c.Reserve(32))
		assert.Equal(t, int64(32), c.MemoryUsage())
	})
}

func TestController_ReleaseExceedsUsage(t *testing.T) {
	t.Run("limited", func(t *testing.T) {
		c := NewController(Config{MemoryLimitBytes: 100})
		require.NoError(t, c.AcquireMemory(30))

		assert.ErrorIs(t, c.ReleaseMemory(31), ErrReleaseExceedsUsage)
		assert.Equal(t, int64(30), c.MemoryUsage())

		require.NoError(t, c.ReleaseMemory(30))
		assert.ErrorIs(t, c.ReleaseMemory(1), ErrReleaseExceedsUsage)
		assert.Equal(t, int64(0), c.MemoryUsage())
	})

	t.Run("unlimited", func(t *testing.T) {
		c := NewController(Config{})

		assert.ErrorIs(t, c.ReleaseMemory(1), ErrReleaseExceedsUsage)
		assert.Equal(t, int64(0), c.MemoryUsage())
	})
}

func TestController_NilChecks(t *testing.T) {
	var c *Controller
	assert.NoError(t, c.AcquireMemory(10))
	assert.True(t, c.AllowAlloc(10))
	assert.NoError(t, c.Reserve(10))
	assert.NoError(t, c.ReleaseMemory(10))
	assert.Equal(t, int64(0), c.MemoryUsage())
	assert.Equal(t, int64(0), c.MemoryLimit())
}
