// Package testutil provides deterministic substitutes for the engine's
// injected capabilities (wall clock, entry IDs), enabling byte-stable
// history traces across test runs.
package testutil

import (
	"fmt"
	"sync"
	"time"
)

// StubTime is a deterministic TimeSource: it starts at a fixed epoch and
// advances one second per Now() call.
//
// Thread-safety: all methods are safe for concurrent use via internal
// mutex.
type StubTime struct {
	mu   sync.Mutex
	base time.Time
	n    int
}

// NewStubTime creates a stub clock starting at base. A zero base defaults
// to 2024-01-01T00:00:00Z.
func NewStubTime(base time.Time) *StubTime {
	if base.IsZero() {
		base = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &StubTime{base: base}
}

// Now returns the next timestamp in the sequence.
func (s *StubTime) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.base.Add(time.Duration(s.n) * time.Second)
	s.n++
	return t
}

// Reset rewinds the sequence to the base time.
func (s *StubTime) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n = 0
}

// IDSequence generates predictable history entry IDs: "h-001", "h-002", …
//
// This enables deterministic test execution and golden trace comparison.
//
// Thread-safety: safe for concurrent use via internal mutex.
type IDSequence struct {
	mu     sync.Mutex
	prefix string
	n      int
	limit  int
}

// NewIDSequence creates a generator with the given prefix. limit bounds
// how many IDs may be generated; 0 means unlimited.
func NewIDSequence(prefix string, limit int) *IDSequence {
	if prefix == "" {
		prefix = "h"
	}
	return &IDSequence{prefix: prefix, limit: limit}
}

// Generate returns the next ID in the sequence.
//
// Panics when the limit is exhausted. This is a fail-fast approach to
// catch test misconfiguration (more transitions dispatched than the test
// declared).
func (g *IDSequence) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.limit > 0 && g.n >= g.limit {
		panic("IDSequence: all ids exhausted")
	}
	g.n++
	return fmt.Sprintf("%s-%03d", g.prefix, g.n)
}
