package arrgo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with arrgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

var noopLogger = NoopLogger()

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Containers use it unless WithLogger is given.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKind adds a container kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// LogCreate logs a constructor or clone.
func (l *Logger) LogCreate(kind string, capacity, elemSize int, err error) {
	if err != nil {
		l.Error("create failed",
			"kind", kind,
			"capacity", capacity,
			"elem_size", elemSize,
			"error", err,
		)
	} else {
		l.Debug("create completed",
			"kind", kind,
			"capacity", capacity,
			"elem_size", elemSize,
		)
	}
}

// LogRelease logs a release. err is the allocator's Free error, if any.
func (l *Logger) LogRelease(kind string, bytes int, err error) {
	if err != nil {
		l.Warn("release: allocator free failed",
			"kind", kind,
			"bytes", bytes,
			"error", err,
		)
	} else {
		l.Debug("release completed",
			"kind", kind,
			"bytes", bytes,
		)
	}
}

// LogAppendRejected logs an append refused by a full container.
func (l *Logger) LogAppendRejected(kind string, capacity int) {
	l.Debug("append rejected",
		"kind", kind,
		"capacity", capacity,
	)
}
