package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/philipp01105/filelog/core"
)

// JSONLFormatter formats lines as single-line JSON objects
type JSONLFormatter struct {
	Config
}

// NewJSONLFormatter creates a new JSON-lines formatter
func NewJSONLFormatter(cfg Config) *JSONLFormatter {
	return &JSONLFormatter{Config: cfg.withDefaults()}
}

// FormatLine builds the JSON object manually so the keys always come out as
// timeStamp, level, message.
func (f *JSONLFormatter) FormatLine(buf *bytes.Buffer, line Line) {
	buf.WriteString(`{"timeStamp":"`)
	appendJSONString(buf, line.Time.Format(f.TimestampFormat))

	buf.WriteString(`","level":"`)
	appendJSONString(buf, line.Token)

	buf.WriteString(`","message":"`)
	appendJSONString(buf, line.Message)

	buf.WriteString("\"}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer.
// Invalid UTF-8 is written as \ufffd, and U+2028/U+2029 are escaped as encoding/json does.
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			// Flush unescaped prefix
			if start < i {
				buf.WriteString(s[start:i])
			}
			switch c {
			case '"':
				buf.WriteString(`\"`)
			case '\\':
				buf.WriteString(`\\`)
			case '\n':
				buf.WriteString(`\n`)
			case '\r':
				buf.WriteString(`\r`)
			case '\t':
				buf.WriteString(`\t`)
			default:
				buf.WriteString(`\u00`)
				buf.WriteByte(hexChars[c>>4])
				buf.WriteByte(hexChars[c&0x0f])
			}
			i++
			start = i
			continue
		}

		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if start < i {
				buf.WriteString(s[start:i])
			}
			buf.WriteString(`\ufffd`)
			i += size
			start = i
			continue
		}
		if r == '\u2028' || r == '\u2029' {
			if start < i {
				buf.WriteString(s[start:i])
			}
			buf.WriteString(`\u202`)
			buf.WriteByte(hexChars[r&0x0f])
			i += size
			start = i
			continue
		}
		i += size
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// DecodeLines parses JSON-lines content into records. Empty and
// whitespace-only lines are skipped. A malformed line fails the whole call.
func DecodeLines(content []byte) ([]core.Record, error) {
	records := []core.Record{}
	lineNo := 0
	for len(content) > 0 {
		var line []byte
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			line, content = content[:i], content[i+1:]
		} else {
			line, content = content, nil
		}
		lineNo++

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseLine decodes a single JSON object into a Record.
func ParseLine(line []byte) (core.Record, error) {
	var rec core.Record
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] != '{' {
		return rec, fmt.Errorf("%w: not a JSON object", core.ErrParse)
	}
	if err := json.Unmarshal(line, &rec); err != nil {
		return rec, fmt.Errorf("%w: %w", core.ErrParse, err)
	}
	return rec, nil
}
