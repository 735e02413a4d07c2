// Package watcher streams data appended to a log file as it is written.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Options configures Follow
type Options struct {
	// FromStart copies the existing content before following new writes
	FromStart bool
	// Diagnostics receives watcher events (default: no-op)
	Diagnostics *zap.Logger
}

// Follow copies bytes appended to path into w until ctx is cancelled.
// The parent directory is watched, so a file that is removed and created
// again is picked up from its start. A truncated file is re-read from its start.
func Follow(ctx context.Context, path string, w io.Writer, opts Options) error {
	diag := opts.Diagnostics
	if diag == nil {
		diag = zap.NewNop()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("cannot watch %s: %w", filepath.Dir(abs), err)
	}

	t := &tail{path: abs, w: w}
	if !opts.FromStart {
		if info, err := os.Stat(abs); err == nil {
			t.offset = info.Size()
		}
	}
	if err := t.drain(); err != nil {
		return err
	}
	diag.Debug("following", zap.String("path", abs), zap.Int64("offset", t.offset))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			switch {
			case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				diag.Debug("file went away", zap.String("path", abs), zap.Stringer("op", ev.Op))
				t.offset = 0
			case ev.Op&(fsnotify.Write|fsnotify.Create) != 0:
				if err := t.drain(); err != nil {
					return err
				}
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			diag.Warn("watcher error", zap.Error(err))
		}
	}
}

type tail struct {
	path   string
	w      io.Writer
	offset int64
}

// drain copies everything past the current offset.
func (t *tail) drain() error {
	f, err := os.Open(t.path)
	if errors.Is(err, fs.ErrNotExist) {
		t.offset = 0
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	if info.Size() < t.offset {
		t.offset = 0
	}
	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return err
	}

	n, err := io.Copy(t.w, f)
	t.offset += n
	return err
}
