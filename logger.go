package submet

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with submet-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithMetric adds the configured metric name to the logger.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogFitPair logs a single subspace comparison.
func (l *Logger) LogFitPair(ctx context.Context, ambient, angles int, distance float64, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit pair failed",
			"ambient", ambient,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit pair completed",
			"ambient", ambient,
			"angles", angles,
			"distance", distance,
		)
	}
}

// LogFitAll logs a batched all-pairs comparison.
func (l *Logger) LogFitAll(ctx context.Context, rows, cols int, self bool, err error) {
	if err != nil {
		l.ErrorContext(ctx, "fit all failed",
			"rows", rows,
			"cols", cols,
			"self", self,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "fit all completed",
			"rows", rows,
			"cols", cols,
			"self", self,
		)
	}
}
