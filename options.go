package arrgo

import (
	"github.com/hupe1980/arrgo/alloc"
)

type options struct {
	allocator alloc.Allocator
	logger    *Logger
	metrics   MetricsCollector
}

// Option configures container construction.
//
// Options given to a constructor stick to the container: Clone reuses them
// unless overridden, and Release returns the block to the same allocator.
type Option func(*options)

// WithAllocator sets the allocator that provides the container's block.
//
// If nil is passed, alloc.Default() is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		if a == nil {
			a = alloc.Default()
		}
		o.allocator = a
	}
}

// WithLogger sets the logger for lifecycle events.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = noopLogger
		}
		o.logger = l
	}
}

// WithMetrics sets the metrics collector.
//
// If nil is passed, NoopMetricsCollector is used.
func WithMetrics(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

func defaultOptions() options {
	return options{
		allocator: alloc.Default(),
		logger:    noopLogger,
		metrics:   NoopMetricsCollector{},
	}
}

func buildOptions(base options, opts []Option) options {
	o := base
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
