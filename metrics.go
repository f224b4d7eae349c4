package arrgo

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting container metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordCreate is called after each constructor or clone.
	// bytes is the block size obtained from the allocator (0 on failure).
	RecordCreate(kind string, bytes int, err error)

	// RecordRelease is called when a container returns its block.
	RecordRelease(kind string, bytes int)

	// RecordAppend is called after each append, err is nil if successful.
	RecordAppend(err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(string, int, error) {}
func (NoopMetricsCollector) RecordRelease(string, int)       {}
func (NoopMetricsCollector) RecordAppend(error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount    atomic.Int64
	CreateErrors   atomic.Int64
	CreatedBytes   atomic.Int64
	ReleaseCount   atomic.Int64
	ReleasedBytes  atomic.Int64
	AppendCount    atomic.Int64
	AppendRejected atomic.Int64
	AppendErrors   atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(_ string, bytes int, err error) {
	b.CreateCount.Add(1)
	if err != nil {
		b.CreateErrors.Add(1)
		return
	}
	b.CreatedBytes.Add(int64(bytes))
}

// RecordRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRelease(_ string, bytes int) {
	b.ReleaseCount.Add(1)
	b.ReleasedBytes.Add(int64(bytes))
}

// RecordAppend implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAppend(err error) {
	b.AppendCount.Add(1)
	switch StatusOf(err) {
	case Success:
	case CapacityExhausted:
		b.AppendRejected.Add(1)
	default:
		b.AppendErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	created := b.CreatedBytes.Load()
	released := b.ReleasedBytes.Load()
	return BasicMetricsStats{
		CreateCount:    b.CreateCount.Load(),
		CreateErrors:   b.CreateErrors.Load(),
		ReleaseCount:   b.ReleaseCount.Load(),
		LiveBytes:      created - released,
		AppendCount:    b.AppendCount.Load(),
		AppendRejected: b.AppendRejected.Load(),
		AppendErrors:   b.AppendErrors.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount    int64
	CreateErrors   int64
	ReleaseCount   int64
	LiveBytes      int64
	AppendCount    int64
	AppendRejected int64
	AppendErrors   int64
}
