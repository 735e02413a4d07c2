package formatter

import (
	"bytes"
)

// CSVFormatter formats lines as comma separated values.
// Fields are not quoted, so a comma or newline inside the message is
// passed through and splits the record.
type CSVFormatter struct {
	Config
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(cfg Config) *CSVFormatter {
	return &CSVFormatter{Config: cfg.withDefaults()}
}

// FormatLine writes "<timestamp>,<token>,<message>\n"
func (f *CSVFormatter) FormatLine(buf *bytes.Buffer, line Line) {
	buf.Write(line.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(',')
	buf.WriteString(line.Token)
	buf.WriteByte(',')
	buf.WriteString(line.Message)
	buf.WriteByte('\n')
}
