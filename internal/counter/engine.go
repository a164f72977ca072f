package counter

import (
	"fmt"
	"log/slog"
	"math"
)

// Observer is notified after a transition has been applied, with the entry
// that recorded it and the snapshot about to be published.
//
// Observers host all effects (persistence, render scheduling) so the
// transition itself stays pure. A returned error is surfaced on the
// snapshot's Err field; it never rolls back or blocks the transition.
type Observer func(entry HistoryEntry, next *State) error

// Engine owns the counter value-change state machine.
//
// INVARIANTS:
//   - MinValue <= state.Value <= MaxValue after every dispatch
//   - every value-changing dispatch appends exactly one history entry
//   - history is never pruned or reordered by the engine
//   - no-op dispatches return the unchanged *State (reference equality)
type Engine struct {
	state *State

	min, max int64
	step     int64
	initial  int64 // start value before any persistence seeding
	resetTo  int64 // reset anchor, fixed at construction

	clock *Clock
	now   TimeSource
	ids   IDGenerator

	observers []Observer
	logger    *slog.Logger
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithBounds sets the inclusive value bounds. Defaults: 0 and the maximum
// int64 (unbounded for practical purposes). min > max is normalized by
// swapping.
func WithBounds(min, max int64) Option {
	return func(e *Engine) {
		if min > max {
			min, max = max, min
		}
		e.min, e.max = min, max
	}
}

// WithStep sets the increment/decrement step. Values below 1 are ignored.
func WithStep(step int64) Option {
	return func(e *Engine) {
		if step >= 1 {
			e.step = step
		}
	}
}

// WithInitialValue sets the starting value and the reset anchor. The value
// is clamped into bounds at construction.
func WithInitialValue(v int64) Option {
	return func(e *Engine) {
		e.initial = v
		e.resetTo = v
	}
}

// WithRestoredValue sets the starting value without moving the reset
// anchor. Used when seeding from a persisted session: the counter resumes
// at the restored value but Reset still targets the configured initial.
func WithRestoredValue(v int64) Option {
	return func(e *Engine) {
		e.initial = v
	}
}

// WithResetToZero makes Reset target zero instead of the initial value.
// The policy is fixed per instantiation.
func WithResetToZero() Option {
	return func(e *Engine) {
		e.resetTo = 0
	}
}

// WithClock sets the logical clock. Used when resuming a session so seq
// numbers continue after the restored history.
func WithClock(c *Clock) Option {
	return func(e *Engine) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithTimeSource sets the wall-clock source for history timestamps.
func WithTimeSource(ts TimeSource) Option {
	return func(e *Engine) {
		if ts != nil {
			e.now = ts
		}
	}
}

// WithIDGenerator sets the history entry ID generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(e *Engine) {
		if g != nil {
			e.ids = g
		}
	}
}

// WithLogger sets the engine's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an Engine with the given options.
//
// Order matters between WithBounds and WithInitialValue only in that the
// start value is clamped after all options are applied, so any order
// produces an in-bounds starting state.
func New(opts ...Option) *Engine {
	e := &Engine{
		min:    0,
		max:    math.MaxInt64,
		step:   1,
		clock:  NewClock(),
		now:    SystemTime{},
		ids:    UUIDv7Generator{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.initial = clamp(e.initial, e.min, e.max)
	e.resetTo = clamp(e.resetTo, e.min, e.max)
	e.state = &State{Value: e.initial}
	return e
}

// Observe registers a post-transition observer. Observers run in
// registration order on the dispatching goroutine. Not safe to call
// concurrently with Dispatch.
func (e *Engine) Observe(fn Observer) {
	if fn != nil {
		e.observers = append(e.observers, fn)
	}
}

// Current returns the current immutable snapshot.
func (e *Engine) Current() *State {
	return e.state
}

// Value returns the current counter value.
func (e *Engine) Value() int64 {
	return e.state.Value
}

// History returns the audit trail of the current snapshot. The returned
// slice must be treated as read-only.
func (e *Engine) History() []HistoryEntry {
	return e.state.History
}

// AtMin reports whether the value sits on the lower bound. The UI layer
// uses this to disable the decrement control preemptively.
func (e *Engine) AtMin() bool {
	return e.state.Value <= e.min
}

// AtMax reports whether the value sits on the upper bound.
func (e *Engine) AtMax() bool {
	return e.state.Value >= e.max
}

// Bounds returns the configured inclusive bounds.
func (e *Engine) Bounds() (min, max int64) {
	return e.min, e.max
}

// ResetTarget returns the value Reset dispatches to. Fixed per
// instantiation (initial value by default, zero under WithResetToZero).
func (e *Engine) ResetTarget() int64 {
	return e.resetTo
}

// Dispatch applies an action and returns the next snapshot.
//
// Dispatch never fails: out-of-bounds targets clamp, unknown action kinds
// return the unchanged state reference. A dispatch that leaves the value
// unchanged appends no history entry and also returns the unchanged
// reference, so callers can skip re-rendering by pointer comparison.
func (e *Engine) Dispatch(a Action) *State {
	cur := e.state

	var target int64
	var clamped bool
	switch a.Kind {
	case KindIncrement:
		target = clamp(cur.Value+e.step, e.min, e.max)
	case KindDecrement:
		target = clamp(cur.Value-e.step, e.min, e.max)
	case KindReset:
		target = e.resetTo
	case KindSetValue:
		target = clamp(a.Value, e.min, e.max)
		clamped = target != a.Value
	default:
		e.logger.Debug("ignoring unknown action kind", "kind", int(a.Kind))
		return cur
	}

	if target == cur.Value {
		if clamped {
			// The attempted mutation was invalid but resolves to the value
			// already held. Record the soft failure without a no-op entry.
			return e.publish(&State{
				Value:   cur.Value,
				History: cur.History,
				Err:     clampErr(a.Value, e.min, e.max),
			})
		}
		return cur
	}

	entry := HistoryEntry{
		ID:       e.ids.Generate(),
		Kind:     a.Kind,
		Previous: cur.Value,
		New:      target,
		Seq:      e.clock.Next(),
		At:       e.now.Now(),
	}

	next := &State{
		Value: target,
		// Full slice expression forces copy-on-append: earlier snapshots
		// keep their shorter view of the trail untouched.
		History: append(cur.History[:len(cur.History):len(cur.History)], entry),
	}
	if clamped {
		next.Err = clampErr(a.Value, e.min, e.max)
	}

	e.logger.Debug("dispatch applied",
		"kind", a.Kind.String(),
		"previous", entry.Previous,
		"new", entry.New,
		"seq", entry.Seq,
	)

	for _, fn := range e.observers {
		if err := fn(entry, next); err != nil {
			e.logger.Warn("observer failed",
				"kind", a.Kind.String(),
				"seq", entry.Seq,
				"error", err,
			)
			if next.Err == "" {
				next.Err = err.Error()
			}
		}
	}

	return e.publish(next)
}

// publish installs next as the current snapshot.
func (e *Engine) publish(next *State) *State {
	e.state = next
	return next
}

func clampErr(v, min, max int64) string {
	return fmt.Sprintf("value %d clamped to bounds [%d, %d]", v, min, max)
}
