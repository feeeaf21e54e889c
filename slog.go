package xolog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phsym/console-slog"
)

// Slog returns a *slog.Logger routed through the named handle, so code
// written against log/slog shares the registry's files, thresholds and
// rotation. component tags every bridged line and defaults to "log". In
// console-fallback mode the returned logger writes through console-slog's
// colored handler instead, still honoring the handle's threshold.
func (r *Registry) Slog(name, component string) (*slog.Logger, error) {
	l, err := r.Logger(name)
	if err != nil {
		return nil, err
	}

	if l.path == "" {
		h := console.NewHandler(l.console, &console.HandlerOptions{
			Level: handleLeveler{l},
		})
		return slog.New(h), nil
	}
	return slog.New(&slogHandler{handle: l, component: component}), nil
}

// slogHandler adapts a Logger handle to the slog.Handler interface.
// Attributes are rendered as space-separated key=value pairs after the
// message, in the flat text shape of the log line itself.
type slogHandler struct {
	handle    *Logger
	component string
	prefix    string
	attrs     []slog.Attr
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return fromSlogLevel(level) <= h.handle.Level()
}

func (h *slogHandler) Handle(_ context.Context, rec slog.Record) error {
	var sb strings.Builder
	sb.WriteString(rec.Message)
	for _, a := range h.attrs {
		appendAttr(&sb, "", a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		appendAttr(&sb, h.prefix, a)
		return true
	})

	lv := fromSlogLevel(rec.Level)
	_, err := h.handle.Log(lv.String(), h.component, sb.String())
	return err
}

// WithAttrs resolves the current group prefix into the stored keys, so
// attributes added before a WithGroup call stay outside the group.
func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	nh.attrs = append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.prefix = h.prefix + name + "."
	return &nh
}

func appendAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// handleLeveler exposes a handle's threshold as a slog minimum level, so
// the console handler follows later SetLevel calls.
type handleLeveler struct {
	handle *Logger
}

func (hl handleLeveler) Level() slog.Level {
	return toSlogLevel(hl.handle.Level())
}

// fromSlogLevel maps a slog record level to the severity gating it.
// Anything below slog's debug is treated as trace.
func fromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	default:
		return LevelTrace
	}
}

// toSlogLevel maps a threshold to the minimum slog level it admits.
func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	default:
		return slog.LevelDebug - 4
	}
}
