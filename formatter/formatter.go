package formatter

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/philipp01105/filelog/core"
)

// DefaultTimestampFormat is a 24-hour local date-time with no spaces or commas,
// so it stays a single token in text and CSV lines.
const DefaultTimestampFormat = "2006-01-02T15:04:05"

// Line is the data a Formatter lays out: the time, the level token and the message.
type Line struct {
	Time    time.Time
	Token   string
	Message string
}

// Formatter defines the interface for line formatters
type Formatter interface {
	// FormatLine appends one newline-terminated line to buf
	FormatLine(buf *bytes.Buffer, line Line)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for DefaultTimestampFormat).
	// A layout containing commas breaks CSV output.
	TimestampFormat string
}

func (c Config) withDefaults() Config {
	if c.TimestampFormat == "" {
		c.TimestampFormat = DefaultTimestampFormat
	}
	return c
}

// New returns the formatter for a kind.
func New(kind Kind, cfg Config) (Formatter, error) {
	switch kind {
	case KindText:
		return NewTextFormatter(cfg), nil
	case KindCSV:
		return NewCSVFormatter(cfg), nil
	case KindJSONL:
		return NewJSONLFormatter(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedFormat, kind)
	}
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
