package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/philipp01105/filelog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a FileLogger.
// Records are written immediately to the logger's default path; attributes are
// appended to the message as key=value pairs.
type SlogHandler struct {
	logger *FileLogger
	level  slog.Leveler
	attrs  []string
	group  string
}

// NewSlogHandler creates a new slog.Handler adapter writing through l.
// Records below level are dropped.
func NewSlogHandler(l *FileLogger, level slog.Leveler) *SlogHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &SlogHandler{
		logger: l,
		level:  level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= s.level.Level()
}

// Handle converts the record into an entry and writes it.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	// Add pre-configured attrs
	for _, a := range s.attrs {
		b.WriteByte(' ')
		b.WriteString(a)
	}

	// Add record attrs
	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	return s.logger.Write(core.Entry{Level: slogLevelToCore(record.Level), Message: b.String()}, WriteOptions{})
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	newAttrs := make([]string, len(s.attrs), len(s.attrs)+1)
	copy(newAttrs, s.attrs)
	if b.Len() > 0 {
		newAttrs = append(newAttrs, b.String()[1:])
	}
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  newAttrs,
		group:  s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newAttrs := make([]string, len(s.attrs))
	copy(newAttrs, s.attrs)
	return &SlogHandler{
		logger: s.logger,
		level:  s.level,
		attrs:  newAttrs,
		group:  newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(a.Value.String())
}
