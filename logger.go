package geocell

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/geocell/cellid"
)

// Logger wraps slog.Logger with geocell-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithCell adds the token and level of id.
func (l *Logger) WithCell(id cellid.CellID) *Logger {
	level := -1
	if id.IsValid() {
		level = id.Level()
	}
	return &Logger{
		Logger: l.Logger.With("cell", id.ToToken(), "level", level),
	}
}

// WithFormats adds the source and target text forms of a conversion.
func (l *Logger) WithFormats(from, to Format) *Logger {
	return &Logger{
		Logger: l.Logger.With("from", from.String(), "to", to.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogConvert logs a single conversion.
func (l *Logger) LogConvert(ctx context.Context, input, output string, err error) {
	if err != nil {
		l.WarnContext(ctx, "convert failed",
			"input", input,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "convert completed",
			"input", input,
			"output", output,
		)
	}
}

// LogBatchConvert logs the outcome of a bulk conversion.
func (l *Logger) LogBatchConvert(ctx context.Context, count, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch convert completed with failures",
			"total", count,
			"failed", failed,
			"success", count-failed,
		)
	} else {
		l.InfoContext(ctx, "batch convert completed",
			"count", count,
		)
	}
}

// LogDecode logs the decoding of a stored id list.
func (l *Logger) LogDecode(ctx context.Context, size, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"bytes", size,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"bytes", size,
			"count", count,
		)
	}
}

// LogEncode logs the encoding of an id list.
func (l *Logger) LogEncode(ctx context.Context, count, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "encode completed",
			"count", count,
			"bytes", size,
		)
	}
}
