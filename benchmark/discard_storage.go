package benchmark

import "github.com/philipp01105/filelog/storage"

// discardStorage accepts every write and keeps nothing, so benchmarks
// measure rendering and dispatch without filesystem cost.
type discardStorage struct{}

var _ storage.Storage = discardStorage{}

func (discardStorage) Exists(string) (bool, error)      { return true, nil }
func (discardStorage) Ensure(string, bool) error        { return nil }
func (discardStorage) Write(string, []byte, bool) error { return nil }
func (discardStorage) ReadAll(string) ([]byte, error)   { return nil, nil }
func (discardStorage) Remove(string) error              { return nil }
