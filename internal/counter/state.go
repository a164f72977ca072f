package counter

import "time"

// HistoryEntry is an immutable record of one counter transition.
//
// Invariants:
//   - Previous equals the value immediately before the transition.
//   - New equals the value immediately after, and both are within bounds.
//   - Seq is strictly increasing across entries in a session.
//   - At is monotonically non-decreasing (informational; ordering uses Seq).
type HistoryEntry struct {
	// ID uniquely identifies the entry. IDs follow generation order and
	// are never reused (UUIDv7 in production).
	ID string

	// Kind is the action that produced this transition.
	Kind ActionKind

	// Previous is the value before the transition.
	Previous int64

	// New is the value after the transition.
	New int64

	// Seq is the logical clock stamp for this transition.
	Seq int64

	// At is the wall-clock time of the transition.
	At time.Time
}

// State is an immutable counter snapshot.
//
// A new State is published on every value-changing dispatch; the History
// slice is copied on append, so earlier snapshots keep their shorter view
// of the same trail. Callers must treat all fields as read-only.
type State struct {
	// Value is the current counter value, always within bounds.
	Value int64

	// History is the append-only audit trail, in causal order.
	History []HistoryEntry

	// Err carries the most recent soft failure (a clamped SetValue or a
	// best-effort persistence error reported by an observer). It is
	// cleared by the next clean dispatch and never blocks a transition.
	Err string
}

// Last returns the most recent history entry, or false when the trail
// is empty.
func (s *State) Last() (HistoryEntry, bool) {
	if len(s.History) == 0 {
		return HistoryEntry{}, false
	}
	return s.History[len(s.History)-1], true
}

// clamp confines v to [min, max].
func clamp(v, min, max int64) int64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
