package hvgo

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with hvgo-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithRunID tags every record with a run identifier.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// WithFront adds the batch position of a front.
func (l *Logger) WithFront(index int) *Logger {
	return &Logger{
		Logger: l.Logger.With("front", index),
	}
}

// WithDimension adds an objective count field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("objectives", dim),
	}
}

// LogFront logs the outcome of one front.
func (l *Logger) LogFront(index, points, kept, objectives int, duration time.Duration, err error) {
	if err != nil {
		l.Error("front failed",
			"front", index,
			"points", points,
			"objectives", objectives,
			"error", err,
		)
	} else {
		l.Debug("front completed",
			"front", index,
			"points", points,
			"non_dominated", kept,
			"objectives", objectives,
			"duration", duration,
		)
	}
}

// LogBatch logs the outcome of a batch.
func (l *Logger) LogBatch(fronts, maxPoints, maxObjectives int, scratchBytes int64, duration time.Duration, err error) {
	if err != nil {
		l.Error("batch failed",
			"fronts", fronts,
			"error", err,
		)
	} else {
		l.Debug("batch completed",
			"fronts", fronts,
			"max_points", maxPoints,
			"max_objectives", maxObjectives,
			"scratch_bytes", scratchBytes,
			"duration", duration,
		)
	}
}
