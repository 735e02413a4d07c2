package formatter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipp01105/filelog/core"
)

// Kind identifies an on-disk line format
type Kind uint8

const (
	// KindText writes "<timestamp> [<level>] <message>"
	KindText Kind = iota + 1
	// KindCSV writes "<timestamp>,<level>,<message>"
	KindCSV
	// KindJSONL writes one JSON object per line
	KindJSONL
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindCSV:
		return "csv"
	case KindJSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

var extensions = map[string]Kind{
	"txt":   KindText,
	"log":   KindText,
	"csv":   KindCSV,
	"jsonl": KindJSONL,
}

// Resolve returns the Kind selected by the extension of path.
// Matching is case-insensitive. A leading dot in the file name does not
// start an extension, so ".log" has none.
func Resolve(path string) (Kind, error) {
	ext := Extension(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", core.ErrUnsupportedFormat, path)
	}

	kind, ok := extensions[ext]
	if !ok {
		return 0, fmt.Errorf("%w: .%s in %q (use .txt, .log, .csv or .jsonl)", core.ErrUnsupportedFormat, ext, path)
	}
	return kind, nil
}

// Extension returns the lower-cased extension of path without its dot.
func Extension(path string) string {
	name := strings.TrimLeft(filepath.Base(path), ".")
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
