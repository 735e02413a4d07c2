package logger

import (
	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
)

// CreateOptions configures FileLogger.Create
type CreateOptions struct {
	// Path is the file to create (default: the logger's current path)
	Path string
	// KeepExisting leaves an existing file untouched instead of truncating it
	KeepExisting bool
}

// WriteOptions configures FileLogger.Write
type WriteOptions struct {
	// Path is the target file (default: the logger's current path)
	Path string
	// Overwrite replaces the file content instead of appending
	Overwrite bool
}

// BufferWriteOptions configures Buffer.Write
type BufferWriteOptions struct {
	// Path is the target file (default: the logger's current path)
	Path string
	// Overwrite replaces the file content instead of appending
	Overwrite bool
	// Keep leaves the buffered lines in place after a successful write
	Keep bool
}

// Content is the result of FileLogger.Read.
// Records is set for JSON-lines files and Text for the other formats.
// Record.Level holds the token as written to the file.
type Content struct {
	Kind    formatter.Kind
	Text    string
	Records []core.Record

	registry *core.Registry
}

// Entries converts Records back into entries. Tokens are mapped back to
// their labels through the reading logger's registry; a token the registry
// does not know is kept as the level.
func (c *Content) Entries() []core.Entry {
	entries := make([]core.Entry, len(c.Records))
	for i, rec := range c.Records {
		entries[i] = rec.Entry()
		if c.registry == nil {
			continue
		}
		if level, ok := c.registry.Label(rec.Level); ok {
			entries[i].Level = level
		}
	}
	return entries
}
