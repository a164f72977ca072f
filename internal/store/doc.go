// Package store provides best-effort persisted key/value storage.
//
// The package has two layers:
//
//   - KV: a raw byte-oriented adapter over a durable medium. Store is the
//     SQLite-backed implementation (survives restarts, scoped to one
//     database file); Memory backs tests and persistence-disabled
//     sessions.
//   - GetJSON/SetJSON: typed helpers over any KV. Get returns the caller's
//     default on a missing key or a parse failure and leaves storage
//     unmodified; Set serializes and writes.
//
// Persistence is never a blocking dependency for in-session correctness:
// a write failure is reported to the caller (and through an injected
// Reporter where one is wired) while the in-memory state advances. A
// failing medium degrades the session to memory-only state.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - single-connection pool: SQLite supports one writer at a time
//
// The last successful Set for a key is the only value returned by
// subsequent Gets until the key is removed or overwritten (last write
// wins, enforced by ON CONFLICT(key) DO UPDATE).
package store
