package core

import "sort"

// Level is a severity label such as "INFO" or "ERROR".
type Level string

const (
	InfoLevel  Level = "INFO"
	ErrorLevel Level = "ERROR"
	DebugLevel Level = "DEBUG"
	WarnLevel  Level = "WARN"
	FatalLevel Level = "FATAL"
	TraceLevel Level = "TRACE"
)

// String returns the label itself
func (l Level) String() string {
	return string(l)
}

// Registry is a closed set of levels mapped to the token written to disk.
// A Registry is never modified after construction.
type Registry struct {
	tokens map[Level]string
	labels map[string]Level
}

// DefaultRegistry returns the six built-in levels, each rendered as its own label.
func DefaultRegistry() *Registry {
	return NewRegistry(map[Level]string{
		InfoLevel:  "INFO",
		ErrorLevel: "ERROR",
		DebugLevel: "DEBUG",
		WarnLevel:  "WARN",
		FatalLevel: "FATAL",
		TraceLevel: "TRACE",
	})
}

// NewRegistry creates a registry from a label to token mapping.
// The map is copied; later changes to it have no effect on the registry.
// When several labels share a token, Label reports the lexically smallest.
func NewRegistry(tokens map[Level]string) *Registry {
	r := &Registry{
		tokens: make(map[Level]string, len(tokens)),
		labels: make(map[string]Level, len(tokens)),
	}
	for level, token := range tokens {
		r.tokens[level] = token
		if prev, ok := r.labels[token]; !ok || level < prev {
			r.labels[token] = level
		}
	}
	return r
}

// IsValid reports whether the level belongs to the registry
func (r *Registry) IsValid(level Level) bool {
	_, ok := r.tokens[level]
	return ok
}

// Token returns the rendered form of a level.
func (r *Registry) Token(level Level) (string, bool) {
	token, ok := r.tokens[level]
	return token, ok
}

// Label returns the level that renders as token
func (r *Registry) Label(token string) (Level, bool) {
	level, ok := r.labels[token]
	return level, ok
}

// Levels returns the registered labels in lexical order.
func (r *Registry) Levels() []Level {
	levels := make([]Level, 0, len(r.tokens))
	for level := range r.tokens {
		levels = append(levels, level)
	}
	sort.Slice(levels, func(i, j int) bool { return levels[i] < levels[j] })
	return levels
}

// Len returns the number of registered levels
func (r *Registry) Len() int {
	return len(r.tokens)
}
