package logger

import (
	"strings"

	"github.com/philipp01105/filelog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	InfoLevel  = core.InfoLevel
	ErrorLevel = core.ErrorLevel
	DebugLevel = core.DebugLevel
	WarnLevel  = core.WarnLevel
	FatalLevel = core.FatalLevel
	TraceLevel = core.TraceLevel
)

// ParseLevel converts user input to a Level label.
// It upper-cases s and accepts "WARNING" as an alias of WARN.
// The result is not checked against any registry.
func ParseLevel(s string) Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "WARNING" {
		return WarnLevel
	}
	return Level(s)
}
