package logger

import (
	"sync/atomic"
)

// Stats tracks logger statistics
type Stats struct {
	// WritesTotal counts successful writes to storage
	WritesTotal uint64
	// BytesTotal counts bytes handed to storage by successful writes
	BytesTotal uint64
	// FailuresTotal counts failed writes
	FailuresTotal uint64
	// PushedTotal counts lines accepted by buffers
	PushedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWrites atomically records a successful write of n bytes
func (s *Stats) IncrementWrites(n int) {
	atomic.AddUint64(&s.WritesTotal, 1)
	atomic.AddUint64(&s.BytesTotal, uint64(n))
}

// IncrementFailures atomically increments the failure counter
func (s *Stats) IncrementFailures() {
	atomic.AddUint64(&s.FailuresTotal, 1)
}

// IncrementPushed atomically increments the pushed counter
func (s *Stats) IncrementPushed() {
	atomic.AddUint64(&s.PushedTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WritesTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
	atomic.StoreUint64(&s.FailuresTotal, 0)
	atomic.StoreUint64(&s.PushedTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	WritesTotal   uint64
	BytesTotal    uint64
	FailuresTotal uint64
	PushedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WritesTotal:   atomic.LoadUint64(&s.WritesTotal),
		BytesTotal:    atomic.LoadUint64(&s.BytesTotal),
		FailuresTotal: atomic.LoadUint64(&s.FailuresTotal),
		PushedTotal:   atomic.LoadUint64(&s.PushedTotal),
	}
}
