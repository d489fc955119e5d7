package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/pdfdiff/internal/ui/output"
	"go.trai.ch/pdfdiff/internal/ui/style"
)

const (
	// runIDKey is rendered as a short bracketed tag in front of the message.
	runIDKey = "run_id"
	// exitCodeKey is rendered as exit=N, in red when non-zero.
	exitCodeKey = "exit_code"
	// runTagLen is how many characters of a run id the tag shows.
	runTagLen = 8
)

// PrettyHandler renders one line per record for humans:
//
//	! [0f3c9a2e] interpreter terminated duration=120ms
//
// Multi-line messages, such as formatted error chains, are written verbatim
// after the first line.
type PrettyHandler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Leveler
	runID  string
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	runID := h.runID
	attrs := append([]string(nil), h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = h.appendAttr(attrs, &runID, h.prefix, a)
		return true
	})

	icon, color := levelStyle(r.Level)
	first, rest, _ := strings.Cut(r.Message, "\n")

	var line strings.Builder
	if icon != "" {
		line.WriteString(h.out.String(icon + " ").Foreground(color).String())
	}
	if runID != "" {
		line.WriteString(h.out.String("[" + shortRunID(runID) + "] ").Foreground(termenv.RGBColor(string(style.Iris))).String())
	}
	line.WriteString(h.out.String(first).Foreground(color).String())
	if len(attrs) > 0 {
		line.WriteString(" " + h.out.String(strings.Join(attrs, " ")).Foreground(termenv.RGBColor(string(style.Slate))).String())
	}
	if rest != "" {
		line.WriteString("\n" + h.out.String(rest).Foreground(color).String())
	}
	line.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(line.String())
	return err
}

// WithAttrs returns a new Handler with attrs rendered under the current group.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)
	for _, a := range attrs {
		clone.attrs = h.appendAttr(clone.attrs, &clone.runID, h.prefix, a)
	}
	return &clone
}

// WithGroup returns a new Handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendAttr formats a, expanding groups. A top-level run_id is captured
// instead of being listed.
func (h *PrettyHandler) appendAttr(dst []string, runID *string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}

	if a.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if a.Key != "" {
			groupPrefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			dst = h.appendAttr(dst, runID, groupPrefix, ga)
		}
		return dst
	}

	if prefix == "" {
		switch a.Key {
		case runIDKey:
			*runID = a.Value.String()
			return dst
		case exitCodeKey:
			return append(dst, h.exitCode(a.Value))
		}
	}
	return append(dst, prefix+a.Key+"="+quoteValue(a.Value.String()))
}

func (h *PrettyHandler) exitCode(v slog.Value) string {
	text := "exit=" + v.String()
	if v.Kind() == slog.KindInt64 && v.Int64() != 0 {
		return h.out.String(text).Foreground(termenv.RGBColor(string(style.Red))).String()
	}
	return text
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}

func shortRunID(id string) string {
	if len(id) > runTagLen {
		return id[:runTagLen]
	}
	return id
}

// quoteValue quotes values that would be ambiguous in key=value form.
func quoteValue(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
