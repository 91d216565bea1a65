package log

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// prettyStyles holds the lipgloss styles used to render each part of a
// record. Styles are bound to a renderer for the handler's output, so colors
// are dropped automatically when the output is not a terminal.
type prettyStyles struct {
	key, str, num, yes, no, dur, when lipgloss.Style
	level                             map[slog.Level]lipgloss.Style
}

func makePrettyStyles(r *lipgloss.Renderer) prettyStyles {
	color := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return prettyStyles{
		key:  color("8"),
		str:  color("6"),
		num:  color("3"),
		yes:  color("2"),
		no:   color("1"),
		dur:  color("5"),
		when: color("4"),
		level: map[slog.Level]lipgloss.Style{
			slog.Level(LevelTrace): color("8"),
			slog.LevelDebug:        color("4"),
			slog.LevelInfo:         color("2"),
			slog.LevelWarn:         color("3").Bold(true),
			slog.LevelError:        color("1").Bold(true),
		},
	}
}

// levelStyle returns the style of the highest defined level not above l.
func (s prettyStyles) levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return s.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return s.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return s.level[slog.LevelInfo]
	case l >= slog.LevelDebug:
		return s.level[slog.LevelDebug]
	default:
		return s.level[slog.Level(LevelTrace)]
	}
}

// prettyHandler implements a colorized, unquoted text handler.
type prettyHandler struct {
	cfg    config
	style  prettyStyles
	mu     *sync.Mutex
	attrs  []slog.Attr
	groups []string
}

func newPrettyHandler(cfg config) *prettyHandler {
	return &prettyHandler{
		cfg:   cfg,
		style: makePrettyStyles(lipgloss.NewRenderer(cfg.output)),
		mu:    &sync.Mutex{},
	}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.Level(h.cfg.level)
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		if ts := h.cfg.formatTime(r.Time); ts != "" {
			h.writeKey(buf, slog.TimeKey)
			buf.WriteString(h.style.when.Render(ts))
		}
	}

	h.writeKey(buf, slog.LevelKey)
	buf.WriteString(h.style.levelStyle(r.Level).
		Render(strings.ToUpper(Level(r.Level).String())))

	if h.cfg.caller {
		if src := r.Source(); src != nil {
			h.writeKey(buf, slog.SourceKey)
			buf.WriteString(h.style.str.Render(fmt.Sprintf("%s:%d", src.File, src.Line)))
		}
	}

	h.writeKey(buf, slog.MessageKey)
	buf.WriteString(r.Message)

	prefix := strings.Join(h.groups, ".")

	for _, a := range h.attrs {
		h.writeAttr(buf, prefix, a)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.cfg.output.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	clone := *h
	clone.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)

	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.groups = append(h.groups[:len(h.groups):len(h.groups)], name)

	return &clone
}

func (h *prettyHandler) writeKey(buf *bytes.Buffer, key string) {
	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(h.style.key.Render(key))
	buf.WriteByte('=')
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()

	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, sub := range a.Value.Group() {
			h.writeAttr(buf, key, sub)
		}

		return
	}

	h.writeKey(buf, key)
	h.writeValue(buf, a.Value)
}

func (h *prettyHandler) writeValue(buf *bytes.Buffer, v slog.Value) {
	switch v.Kind() {
	case slog.KindInt64:
		buf.WriteString(h.style.num.Render(strconv.FormatInt(v.Int64(), 10)))

	case slog.KindUint64:
		buf.WriteString(h.style.num.Render(strconv.FormatUint(v.Uint64(), 10)))

	case slog.KindFloat64:
		buf.WriteString(h.style.num.Render(strconv.FormatFloat(v.Float64(), 'g', -1, 64)))

	case slog.KindBool:
		if v.Bool() {
			buf.WriteString(h.style.yes.Render("true"))
		} else {
			buf.WriteString(h.style.no.Render("false"))
		}

	case slog.KindDuration:
		buf.WriteString(h.style.dur.Render(v.Duration().String()))

	case slog.KindTime:
		buf.WriteString(h.style.when.Render(h.cfg.formatTime(v.Time())))

	default:
		buf.WriteString(h.style.str.Render(v.String()))
	}
}
