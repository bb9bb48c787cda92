package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorPurple = "\033[35m"
	colorWhite  = "\033[37m"
)

type LogType string

const (
	TypeSearch LogType = "SEARCH"
	TypeFetch  LogType = "FETCH"
	TypeSystem LogType = "SYS"
	TypeError  LogType = "ERR"
)

var internalAttrs = []string{"type", "name", "status", "took", "error", "error_location"}

type CustomHandler struct {
	opts   *slog.HandlerOptions
	out    io.Writer
	mu     *sync.Mutex
	color  bool
	attrs  []slog.Attr
	groups []string
}

// NewHandler writes one colored line per record to out.
func NewHandler(out io.Writer, opts *slog.HandlerOptions) *CustomHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{Level: slog.LevelInfo}
	}
	return &CustomHandler{
		opts:  opts,
		out:   out,
		mu:    &sync.Mutex{},
		color: true,
	}
}

// WithoutColor disables ANSI colors, for output that is not a terminal.
func (h *CustomHandler) WithoutColor() *CustomHandler {
	clone := *h
	clone.color = false
	return &clone
}

func (h *CustomHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *CustomHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(slices.Clip(h.attrs), attrs...)
	return &clone
}

func (h *CustomHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.groups = append(slices.Clip(h.groups), name)
	return &clone
}

func (h *CustomHandler) Handle(_ context.Context, r slog.Record) error {
	timestamp := r.Time.Format("15:04:05")
	if r.Time.IsZero() {
		timestamp = time.Now().Format("15:04:05")
	}

	var levelColor, levelText string
	switch {
	case r.Level >= slog.LevelError:
		levelColor, levelText = colorRed, "ERROR"
	case r.Level >= slog.LevelWarn:
		levelColor, levelText = colorYellow, "WARN"
	case r.Level >= slog.LevelInfo:
		levelColor, levelText = colorGreen, "INFO"
	default:
		levelColor, levelText = colorPurple, "DEBUG"
	}

	message := r.Message
	if r.Level >= slog.LevelError {
		if location := h.errorLocation(&r); location != "" {
			message = fmt.Sprintf("%s (%s)", message, location)
		}
		if details := attrString(&r, "error"); details != "" {
			message = fmt.Sprintf("%s: %s", message, details)
		}
	}

	if name := attrString(&r, "name"); name != "" {
		message = fmt.Sprintf("%s [%s]", message, name)
	}
	if status := attrString(&r, "status"); status != "" {
		message = fmt.Sprintf("%s [Status: %s]", message, status)
	}
	if took := attrString(&r, "took"); took != "" {
		message = fmt.Sprintf("%s (took %s)", message, took)
	}

	var attrsStr strings.Builder
	prefix := strings.Join(h.groups, ".")
	writeAttr := func(a slog.Attr) {
		if slices.Contains(internalAttrs, a.Key) {
			return
		}
		key := a.Key
		if prefix != "" {
			key = prefix + "." + key
		}
		fmt.Fprintf(&attrsStr, " %s=%v", key, a.Value)
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(a)
		return true
	})

	reset, white := colorReset, colorWhite
	if !h.color {
		levelColor, reset, white = "", "", ""
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.out, "%s[Magpie] [%s] [%s%s%s] [%s] %s%s%s\n",
		white,
		timestamp,
		levelColor,
		levelText,
		white,
		h.logType(&r),
		message,
		attrsStr.String(),
		reset,
	)
	return err
}

func (h *CustomHandler) logType(r *slog.Record) LogType {
	kind := attrString(r, "type")
	if kind == "" {
		for _, a := range h.attrs {
			if a.Key == "type" {
				kind = a.Value.String()
			}
		}
	}
	switch kind {
	case "search":
		return TypeSearch
	case "fetch":
		return TypeFetch
	case "error":
		return TypeError
	}
	return TypeSystem
}

func (h *CustomHandler) errorLocation(r *slog.Record) string {
	if location := attrString(r, "error_location"); location != "" {
		return location
	}
	if !h.opts.AddSource || r.PC == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames([]uintptr{r.PC}).Next()
	if frame.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}

func attrString(r *slog.Record, key string) string {
	var value string
	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value.String()
			return false
		}
		return true
	})
	return value
}
