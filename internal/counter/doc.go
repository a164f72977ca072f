// Package counter implements the bounded counter engine.
//
// The engine is a reducer over an immutable State: each dispatch computes
// the next value, clamps it into the configured bounds, and appends exactly
// one HistoryEntry to the append-only audit trail. Value, history, and the
// soft error field are replaced together as a single snapshot, so readers
// always observe a fully-formed state, never a partial update.
//
// ARCHITECTURE:
//
// Single-Writer Dispatch:
// All mutations happen on the caller's goroutine. The engine is designed
// for a single-threaded event loop (one logical thread processing UI
// intents sequentially) and is NOT safe for concurrent dispatch. Snapshots
// returned by Dispatch and Current are immutable and may be read freely
// after publication.
//
// Transition rules:
//  1. Increment/Decrement move by the configured step, clamped at the
//     bounds. A dispatch that would not change the value is an identity
//     no-op: the SAME *State pointer is returned and no history entry is
//     appended. Callers gate on AtMin/AtMax to suppress these upfront.
//  2. SetValue clamps out-of-range targets and records the clamp on the
//     soft error field of the next snapshot.
//  3. Reset returns to the reset anchor (the configured initial value, or
//     zero when the zero policy is selected).
//  4. Unknown action kinds are ignored and return the unchanged state
//     reference. Dispatch never returns an error.
//
// CRITICAL PATTERNS:
//
// Logical Clock:
// Every history entry is stamped with a strictly increasing seq number
// from Clock.Next(). Ordering NEVER relies on wall-clock timestamps; the
// wall-clock At field is informational only.
//
// Injected Capabilities:
// Entry IDs and timestamps come from injected IDGenerator and TimeSource
// collaborators, never from ambient globals. Tests substitute
// deterministic implementations (see internal/testutil).
package counter
