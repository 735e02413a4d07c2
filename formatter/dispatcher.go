package formatter

import (
	"fmt"
	"time"

	"github.com/philipp01105/filelog/core"
)

// Dispatcher renders entries for any Kind using a fixed registry and clock.
type Dispatcher struct {
	registry *core.Registry
	clock    core.Clock
	text     *TextFormatter
	csv      *CSVFormatter
	jsonl    *JSONLFormatter
}

// NewDispatcher creates a dispatcher. A nil registry means core.DefaultRegistry
// and a nil clock means core.SystemClock.
func NewDispatcher(registry *core.Registry, clock core.Clock, cfg Config) *Dispatcher {
	if registry == nil {
		registry = core.DefaultRegistry()
	}
	if clock == nil {
		clock = core.SystemClock
	}
	return &Dispatcher{
		registry: registry,
		clock:    clock,
		text:     NewTextFormatter(cfg),
		csv:      NewCSVFormatter(cfg),
		jsonl:    NewJSONLFormatter(cfg),
	}
}

// Registry returns the level registry used for validation
func (d *Dispatcher) Registry() *core.Registry {
	return d.registry
}

// Render formats entry as a kind line stamped with the dispatcher's clock.
func (d *Dispatcher) Render(entry core.Entry, kind Kind) (string, error) {
	return d.render(entry, kind, d.clock())
}

// RenderPath resolves the kind of path and renders entry for it.
func (d *Dispatcher) RenderPath(entry core.Entry, path string) (string, Kind, error) {
	kind, err := Resolve(path)
	if err != nil {
		return "", 0, err
	}
	line, err := d.Render(entry, kind)
	if err != nil {
		return "", 0, err
	}
	return line, kind, nil
}

func (d *Dispatcher) render(entry core.Entry, kind Kind, now time.Time) (string, error) {
	token, ok := d.registry.Token(entry.Level)
	if !ok {
		return "", fmt.Errorf("%w: %q", core.ErrInvalidLevel, entry.Level)
	}

	var f Formatter
	switch kind {
	case KindText:
		f = d.text
	case KindCSV:
		f = d.csv
	case KindJSONL:
		f = d.jsonl
	default:
		return "", fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, kind)
	}

	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatLine(buf, Line{Time: now, Token: token, Message: entry.Message})
	return buf.String(), nil
}

// Render formats entry with the default timestamp layout at the given time.
func Render(entry core.Entry, registry *core.Registry, kind Kind, now time.Time) (string, error) {
	d := NewDispatcher(registry, nil, Config{})
	return d.render(entry, kind, now)
}
