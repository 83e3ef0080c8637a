package log

import (
	"context"
	"log/slog"
	"os"
	"strings"
)

// enabledSections gates debug logging per subsystem. The cache sits on
// the hot path of type construction, so its debug records stay off
// unless the section is listed here.
var enabledSections = []string{
	"types",
}

var LoggerOpts = &slog.HandlerOptions{
	AddSource: true,
	Level:     slog.LevelDebug,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

var DefaultLogger = slog.New(&sectionHandler{underlying: slog.NewTextHandler(os.Stdout, LoggerOpts)})

var _ slog.Handler = &sectionHandler{}

// sectionHandler drops records below Warn unless they carry a
// "section" attribute whose value falls under an enabled section.
type sectionHandler struct {
	underlying slog.Handler
	section    string
}

func sectionEnabled(section string) bool {
	for _, enabled := range enabledSections {
		if strings.HasPrefix(section, enabled) {
			return true
		}
	}
	return false
}

func (h sectionHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.underlying.Enabled(ctx, level)
}

func (h sectionHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= slog.LevelWarn {
		return h.underlying.Handle(ctx, record)
	}
	want := sectionEnabled(h.section)
	if !want {
		record.Attrs(func(attr slog.Attr) bool {
			want = attr.Key == "section" && sectionEnabled(attr.Value.String())
			return !want
		})
	}
	if !want {
		return nil
	}
	return h.underlying.Handle(ctx, record)
}

func (h sectionHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	section := h.section
	var rest []slog.Attr
	for _, attr := range attrs {
		if attr.Key == "section" {
			section = attr.Value.String()
		} else {
			rest = append(rest, attr)
		}
	}
	underlying := h.underlying
	if len(rest) > 0 {
		underlying = underlying.WithAttrs(rest)
	}
	return &sectionHandler{underlying: underlying, section: section}
}

func (h sectionHandler) WithGroup(name string) slog.Handler {
	return &sectionHandler{underlying: h.underlying.WithGroup(name), section: h.section}
}
