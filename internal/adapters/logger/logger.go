// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"go.trai.ch/pdfdiff/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
// Loggers derived with With share the destination and format of their parent.
type Logger struct {
	sink  *sink
	attrs []any
}

// sink is the output state shared by a logger and everything derived from it.
type sink struct {
	mu       sync.RWMutex
	base     *slog.Logger
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() ports.Logger {
	return &Logger{
		sink: &sink{
			base:   slog.New(newHandler(os.Stderr, false)),
			output: os.Stderr,
		},
	}
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if jsonMode {
		return slog.NewJSONHandler(w, opts)
	}
	return NewPrettyHandler(w, opts)
}

// SetOutput updates the logger's output destination, keeping the current format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.sink.output = w
	l.sink.base = slog.New(newHandler(w, l.sink.jsonMode))
}

// SetJSON switches between JSON and pretty logging, keeping the current destination.
func (l *Logger) SetJSON(enable bool) {
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()

	l.sink.jsonMode = enable
	l.sink.base = slog.New(newHandler(l.sink.output, enable))
}

// With returns a logger that adds key=value to every entry. In pretty mode a
// run_id becomes a short tag in front of the message.
func (l *Logger) With(key string, value any) ports.Logger {
	return &Logger{
		sink:  l.sink,
		attrs: append(slices.Clip(l.attrs), key, value),
	}
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.log(slog.LevelInfo, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.log(slog.LevelWarn, msg)
}

// Error logs an error. In pretty mode the error chain is printed hierarchically
// with each level's metadata. In JSON mode the metadata of the whole chain
// becomes top-level fields next to the error text.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.sink.mu.RLock()
	jsonMode := l.sink.jsonMode
	l.sink.mu.RUnlock()

	entries := collectErrorEntries(err)
	if !jsonMode {
		l.log(slog.LevelError, formatErrorEntries(entries))
		return
	}

	args := []any{"error", err.Error()}
	meta := chainMetadata(entries)
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		args = append(args, key, meta[key])
	}
	l.log(slog.LevelError, "operation failed", args...)
}

func (l *Logger) log(level slog.Level, msg string, args ...any) {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	l.sink.base.With(l.attrs...).Log(context.Background(), level, msg, args...)
}

// chainMetadata merges the metadata of all entries. Outer levels win.
func chainMetadata(entries []ErrorEntry) map[string]any {
	merged := map[string]any{}
	for i := len(entries) - 1; i >= 0; i-- {
		maps.Copy(merged, entries[i].Metadata)
	}
	return merged
}
