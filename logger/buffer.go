package logger

import (
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/philipp01105/filelog/core"
	"github.com/philipp01105/filelog/formatter"
	"github.com/philipp01105/filelog/storage"
)

// PathProvider returns the path a Buffer renders and writes for
type PathProvider func() string

// Buffer accumulates rendered lines in memory until Write persists them.
// It is safe for concurrent use.
type Buffer struct {
	mu         sync.Mutex
	lines      []string
	path       PathProvider
	storage    storage.Storage
	dispatcher *formatter.Dispatcher
	diag       *zap.Logger
	stats      *Stats
}

// Push renders entry for the format of the current default path and appends
// it. On error the buffer is left unchanged.
func (b *Buffer) Push(entry core.Entry) error {
	path := b.path()
	line, _, err := b.dispatcher.RenderPath(entry, path)
	if err != nil {
		b.diag.Warn("push rejected", zap.String("path", path), zap.Stringer("level", entry.Level), zap.Error(err))
		return err
	}

	b.mu.Lock()
	b.lines = append(b.lines, line)
	b.mu.Unlock()

	b.stats.IncrementPushed()
	return nil
}

// Write persists all buffered lines with a single storage write and, unless
// Keep is set, clears the buffer. A failed write keeps every line.
func (b *Buffer) Write(opts BufferWriteOptions) error {
	path := opts.Path
	if path == "" {
		path = b.path()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	data := strings.Join(b.lines, "")
	if err := b.storage.Write(path, []byte(data), !opts.Overwrite); err != nil {
		b.stats.IncrementFailures()
		b.diag.Warn("buffer write failed", zap.String("path", path), zap.Int("lines", len(b.lines)), zap.Error(err))
		return err
	}

	b.stats.IncrementWrites(len(data))
	b.diag.Debug("buffer written",
		zap.String("path", path),
		zap.Int("lines", len(b.lines)),
		zap.Int("bytes", len(data)),
		zap.Bool("keep", opts.Keep),
	)

	if !opts.Keep {
		b.reset()
	}
	return nil
}

// Flush discards all buffered lines without writing them
func (b *Buffer) Flush() {
	b.mu.Lock()
	b.reset()
	b.mu.Unlock()
}

func (b *Buffer) reset() {
	clear(b.lines)
	b.lines = b.lines[:0]
}

// Len returns the number of buffered lines
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.lines)
}

// Lines returns a copy of the buffered lines in push order
func (b *Buffer) Lines() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return lines
}
