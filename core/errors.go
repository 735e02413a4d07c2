package core

import "errors"

var (
	// ErrInvalidLevel is returned when an entry's level is not in the registry
	ErrInvalidLevel = errors.New("invalid log level")
	// ErrUnsupportedFormat is returned for a path with no extension or an unmapped one
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrNotFound is returned when a read or remove target does not exist
	ErrNotFound = errors.New("file not found")
	// ErrIO wraps failures reported by the filesystem
	ErrIO = errors.New("i/o failure")
	// ErrParse is returned when a JSON-lines file holds a malformed line
	ErrParse = errors.New("malformed log line")
)
