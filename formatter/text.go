package formatter

import (
	"bytes"
)

// TextFormatter formats lines as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg.withDefaults()}
}

// FormatLine writes "<timestamp> [<token>] <message>\n"
func (f *TextFormatter) FormatLine(buf *bytes.Buffer, line Line) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	buf.WriteString(line.Token)
	buf.WriteString("] ")

	// Message is written verbatim; embedded newlines are not escaped
	buf.WriteString(line.Message)

	buf.WriteByte('\n')
}
