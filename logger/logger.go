package logger

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/storage"
)

// FileLogger writes, reads and removes log files around a mutable default path.
// It is safe for concurrent use.
type FileLogger struct {
	mu         sync.RWMutex
	path       string
	storage    storage.Storage
	dispatcher *formatter.Dispatcher
	diag       *zap.Logger
	stats      *Stats
}

// Builder provides a fluent API for building FileLogger instances
type Builder struct {
	path      string
	storage   storage.Storage
	registry  *core.Registry
	clock     core.Clock
	formatCfg formatter.Config
	diag      *zap.Logger
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithPath sets the initial default path
func (b *Builder) WithPath(path string) *Builder {
	b.path = path
	return b
}

// WithStorage sets the storage backend (default: storage.OS)
func (b *Builder) WithStorage(s storage.Storage) *Builder {
	b.storage = s
	return b
}

// WithRegistry sets the accepted levels (default: core.DefaultRegistry)
func (b *Builder) WithRegistry(r *core.Registry) *Builder {
	b.registry = r
	return b
}

// WithClock sets the timestamp source (default: core.SystemClock)
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithFormatterConfig sets the formatter configuration
func (b *Builder) WithFormatterConfig(cfg formatter.Config) *Builder {
	b.formatCfg = cfg
	return b
}

// WithDiagnostics sets the zap logger that receives the logger's own events
// (default: no-op)
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.diag = l
	return b
}

// Build creates the FileLogger instance
func (b *Builder) Build() *FileLogger {
	s := b.storage
	if s == nil {
		s = storage.NewOS()
	}
	diag := b.diag
	if diag == nil {
		diag = zap.NewNop()
	}
	return &FileLogger{
		path:       b.path,
		storage:    s,
		dispatcher: formatter.NewDispatcher(b.registry, b.clock, b.formatCfg),
		diag:       diag,
		stats:      NewStats(),
	}
}

// New creates a FileLogger for path on the host filesystem with default settings
func New(path string) *FileLogger {
	return NewBuilder().WithPath(path).Build()
}

// DefinePath replaces the default path. The path is not validated here;
// a bad path surfaces on the next operation that uses it.
func (l *FileLogger) DefinePath(path string) {
	l.mu.Lock()
	l.path = path
	l.mu.Unlock()
	l.diag.Debug("default path changed", zap.String("path", path))
}

// Path returns the current default path
func (l *FileLogger) Path() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.path
}

// Registry returns the level registry the logger validates against
func (l *FileLogger) Registry() *core.Registry {
	return l.dispatcher.Registry()
}

// Stats returns a snapshot of the current statistics
func (l *FileLogger) Stats() Snapshot {
	return l.stats.GetSnapshot()
}

func (l *FileLogger) target(path string) string {
	if path != "" {
		return path
	}
	return l.Path()
}

// Create creates an empty file, creating parent directories as needed.
// With KeepExisting set, an existing file is left as it is.
func (l *FileLogger) Create(opts CreateOptions) error {
	path := l.target(opts.Path)
	if err := l.storage.Ensure(path, !opts.KeepExisting); err != nil {
		l.diag.Warn("create failed", zap.String("path", path), zap.Error(err))
		return err
	}
	l.diag.Debug("file created", zap.String("path", path), zap.Bool("keepExisting", opts.KeepExisting))
	return nil
}

// Write renders entry for the target's format and writes it immediately,
// bypassing any buffer.
func (l *FileLogger) Write(entry core.Entry, opts WriteOptions) error {
	path := l.target(opts.Path)

	line, kind, err := l.dispatcher.RenderPath(entry, path)
	if err != nil {
		l.diag.Warn("render failed", zap.String("path", path), zap.Stringer("level", entry.Level), zap.Error(err))
		return err
	}

	if err := l.storage.Write(path, []byte(line), !opts.Overwrite); err != nil {
		l.stats.IncrementFailures()
		l.diag.Warn("write failed", zap.String("path", path), zap.Error(err))
		return err
	}

	l.stats.IncrementWrites(len(line))
	l.diag.Debug("entry written",
		zap.String("path", path),
		zap.Stringer("format", kind),
		zap.Int("bytes", len(line)),
		zap.Bool("overwrite", opts.Overwrite),
	)
	return nil
}

// Log writes a message at level to the default path
func (l *FileLogger) Log(level core.Level, msg string) error {
	return l.Write(core.Entry{Level: level, Message: msg}, WriteOptions{})
}

// Debug writes a DEBUG message to the default path
func (l *FileLogger) Debug(msg string) error {
	return l.Log(core.DebugLevel, msg)
}

// Info writes an INFO message to the default path
func (l *FileLogger) Info(msg string) error {
	return l.Log(core.InfoLevel, msg)
}

// Warn writes a WARN message to the default path
func (l *FileLogger) Warn(msg string) error {
	return l.Log(core.WarnLevel, msg)
}

// Error writes an ERROR message to the default path
func (l *FileLogger) Error(msg string) error {
	return l.Log(core.ErrorLevel, msg)
}

// Read returns the content of path (or the default path when empty).
// JSON-lines files are decoded into records; a single malformed line fails
// the whole read. Text and CSV files are returned unmodified.
func (l *FileLogger) Read(path string) (*Content, error) {
	path = l.target(path)

	kind, err := formatter.Resolve(path)
	if err != nil {
		return nil, err
	}

	data, err := l.storage.ReadAll(path)
	if err != nil {
		l.diag.Warn("read failed", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	content := &Content{Kind: kind, registry: l.dispatcher.Registry()}
	switch kind {
	case formatter.KindJSONL:
		records, err := formatter.DecodeLines(data)
		if err != nil {
			l.diag.Warn("decode failed", zap.String("path", path), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		content.Records = records
	default:
		content.Text = string(data)
	}

	l.diag.Debug("file read", zap.String("path", path), zap.Stringer("format", kind), zap.Int("bytes", len(data)))
	return content, nil
}

// Remove deletes path (or the default path when empty)
func (l *FileLogger) Remove(path string) error {
	path = l.target(path)
	if err := l.storage.Remove(path); err != nil {
		l.diag.Warn("remove failed", zap.String("path", path), zap.Error(err))
		return err
	}
	l.diag.Debug("file removed", zap.String("path", path))
	return nil
}

// FileExists reports whether path (or the default path when empty) exists.
// A missing file is not an error.
func (l *FileLogger) FileExists(path string) (bool, error) {
	return l.storage.Exists(l.target(path))
}

// NewBuffer returns an empty Buffer that follows this logger's default path
func (l *FileLogger) NewBuffer() *Buffer {
	return &Buffer{
		path:       l.Path,
		storage:    l.storage,
		dispatcher: l.dispatcher,
		diag:       l.diag,
		stats:      l.stats,
	}
}
