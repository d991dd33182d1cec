package hello

import (
	"context"
	"log/slog"
	"os"

	"github.com/hupe1980/hello/distance"
)

// Logger wraps slog.Logger with hello-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(m distance.Metric) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", m.String()),
	}
}

// WithBufferLen adds a buffer_len field to the logger.
func (l *Logger) WithBufferLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("buffer_len", n),
	}
}

// LogDistance logs a distance computation.
func (l *Logger) LogDistance(ctx context.Context, a, b distance.Point, d float32) {
	l.DebugContext(ctx, "distance computed",
		"a", a.String(),
		"b", b.String(),
		"distance", d,
	)
}

// LogBufferAcquire logs a buffer acquisition.
func (l *Logger) LogBufferAcquire(ctx context.Context, n int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "buffer acquisition failed",
			"len", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "buffer acquired",
			"len", n,
		)
	}
}

// LogBufferRelease logs a buffer release.
func (l *Logger) LogBufferRelease(ctx context.Context, n int, err error) {
	if err != nil {
		l.WarnContext(ctx, "buffer release failed",
			"len", n,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "buffer released",
			"len", n,
		)
	}
}

// LogRun logs the outcome of a whole demonstration run.
func (l *Logger) LogRun(ctx context.Context, factorials int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"factorials", factorials,
		)
	}
}
