package counter

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Clock is a monotonic logical clock for history ordering.
//
// Every history entry is stamped with a strictly increasing seq number
// from this clock. This ensures deterministic ordering regardless of
// wall-clock resolution or adjustment.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though the engine's single-writer dispatch means only one goroutine
// typically calls Next().
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a clock starting at a specific sequence number.
// Used when resuming a session from a restored history position.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
// Each call returns a unique, increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

// TimeSource supplies wall-clock timestamps for history entries.
// Implemented by SystemTime (production) and testutil.StubTime (tests).
type TimeSource interface {
	Now() time.Time
}

// SystemTime reads the real wall clock.
type SystemTime struct{}

// Now returns the current time in UTC.
func (SystemTime) Now() time.Time { return time.Now().UTC() }

// IDGenerator generates unique history entry IDs.
// Implemented by UUIDv7Generator (production) and testutil.IDSequence (tests).
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 entry IDs.
//
// UUIDv7 embeds a timestamp in the most significant bits, so IDs sort by
// generation order, matching the entry's position in the trail.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails (should never happen in practice).
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
