package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Logger wraps slog.Logger with stlkit-specific helpers.
// Field names are shared by all commands.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "text" or "json".
func New(w io.Writer, level slog.Level, format string) (*Logger, error) {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	return &Logger{Logger: slog.New(handler)}, nil
}

// Noop creates a Logger that discards all log output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// ParseLevel parses debug, info, warn and error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// WithFile adds a file field to the logger.
func (l *Logger) WithFile(path string) *Logger {
	return &Logger{Logger: l.Logger.With("file", path)}
}

// LogRead logs reading a document.
func (l *Logger) LogRead(ctx context.Context, path, format string, facets int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "read failed",
			"file", path,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "read completed",
			"file", path,
			"format", format,
			"facets", facets,
		)
	}
}

// LogWrite logs writing a document.
func (l *Logger) LogWrite(ctx context.Context, path, format string, facets int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "write failed",
			"file", path,
			"format", format,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "write completed",
			"file", path,
			"format", format,
			"facets", facets,
		)
	}
}

// LogConvert logs the outcome of a batch conversion.
func (l *Logger) LogConvert(ctx context.Context, total, failed int, elapsed time.Duration) {
	if failed > 0 {
		l.WarnContext(ctx, "conversion completed with failures",
			"total", total,
			"failed", failed,
			"success", total-failed,
			"elapsed", elapsed,
		)
	} else {
		l.InfoContext(ctx, "conversion completed",
			"count", total,
			"elapsed", elapsed,
		)
	}
}

// LogWatch logs a change picked up by the watcher.
func (l *Logger) LogWatch(ctx context.Context, path string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "watch rebuild failed",
			"file", path,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "file changed",
			"file", path,
		)
	}
}
