package storage

import (
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/philipp01105/filelog/core"
)

// Op names a Storage operation for failure injection
type Op string

const (
	OpExists Op = "exists"
	OpEnsure Op = "ensure"
	OpWrite  Op = "write"
	OpRead   Op = "read"
	OpRemove Op = "remove"
)

// Memory is a Storage that keeps files in memory.
// It is safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	files  map[string][]byte
	fail   map[Op]error
	writes int
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		files: make(map[string][]byte),
		fail:  make(map[Op]error),
	}
}

// FailWith makes every following call of op fail with err wrapped in
// core.ErrIO. Passing a nil err clears the failure.
func (m *Memory) FailWith(op Op, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		delete(m.fail, op)
		return
	}
	m.fail[op] = err
}

func (m *Memory) failure(op Op, path string) error {
	if err, ok := m.fail[op]; ok {
		return fmt.Errorf("%w: %s %s: %w", core.ErrIO, op, path, err)
	}
	return nil
}

// Exists reports whether a file is stored at path
func (m *Memory) Exists(path string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.failure(OpExists, path); err != nil {
		return false, err
	}
	_, ok := m.files[path]
	return ok, nil
}

// Ensure stores an empty file unless one exists and overwrite is false
func (m *Memory) Ensure(path string, overwrite bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.failure(OpEnsure, path); err != nil {
		return err
	}
	if _, ok := m.files[path]; ok && !overwrite {
		return nil
	}
	m.files[path] = []byte{}
	return nil
}

// Write appends to or replaces the stored file
func (m *Memory) Write(path string, data []byte, appending bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.failure(OpWrite, path); err != nil {
		return err
	}

	var content []byte
	if appending {
		content = m.files[path]
	}
	next := make([]byte, 0, len(content)+len(data))
	next = append(next, content...)
	m.files[path] = append(next, data...)
	m.writes++
	return nil
}

// ReadAll returns a copy of the stored file
func (m *Memory) ReadAll(path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.failure(OpRead, path); err != nil {
		return nil, err
	}
	content, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("%w: cannot find %s to read", core.ErrNotFound, path)
	}
	return append(make([]byte, 0, len(content)), content...), nil
}

// Remove deletes the stored file
func (m *Memory) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	path = filepath.Clean(path)
	if err := m.failure(OpRemove, path); err != nil {
		return err
	}
	if _, ok := m.files[path]; !ok {
		return fmt.Errorf("%w: cannot find %s to remove", core.ErrNotFound, path)
	}
	delete(m.files, path)
	return nil
}

// Content returns the stored file as a string
func (m *Memory) Content(path string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.files[filepath.Clean(path)]
	return string(content), ok
}

// Paths returns the stored paths in lexical order
func (m *Memory) Paths() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	paths := make([]string, 0, len(m.files))
	for p := range m.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Writes returns the number of successful Write calls
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
