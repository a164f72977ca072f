package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Well-known session keys.
const (
	// KeyCounterValue stores the last counter value (persistence enabled
	// sessions only).
	KeyCounterValue = "counter-value"

	// KeyThemeMode stores the user's theme preference as one of
	// "light" | "dark" | "system".
	KeyThemeMode = "theme-mode"
)

// KV is the raw key/value adapter over a durable medium.
//
// Implementations: Store (SQLite, durable across restarts) and Memory
// (session-only, tests). All implementations satisfy last-write-wins:
// the most recent successful Set is the only value Get returns.
type KV interface {
	// Get returns the stored value and ok=true when present. A missing
	// key is (nil, false, nil); a non-nil error is a medium failure.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set writes value for key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Remove deletes the entry for key. Subsequent Gets report absence.
	Remove(ctx context.Context, key string) error
}

// GetJSON returns the value stored under key decoded into T, or def when
// the key is absent, the medium fails, or the payload does not parse.
// Storage is never modified on the failure paths; a corrupt payload stays
// in place until the next successful Set overwrites it.
func GetJSON[T any](ctx context.Context, kv KV, key string, def T) T {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return def
	}
	return v
}

// SetJSON serializes v and writes it under key. The returned error is
// advisory: callers treat persistence as best-effort and keep their
// in-memory transition regardless.
func SetJSON[T any](ctx context.Context, kv KV, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return kv.Set(ctx, key, raw)
}

// Reporter receives non-fatal persistence failures.
//
// It replaces the source pattern of a lazily-constructed process-wide
// error handler: the reporter is constructed once and injected into
// whatever needs it, so there is no hidden global state and teardown is
// explicit.
type Reporter interface {
	Report(err error)
}

// NopReporter discards all reports.
type NopReporter struct{}

// Report implements Reporter.
func (NopReporter) Report(error) {}

// SlogReporter logs reports at warn level.
type SlogReporter struct {
	Logger *slog.Logger
}

// Report implements Reporter.
func (r SlogReporter) Report(err error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("persistence failure", "error", err)
}

// FuncReporter adapts a function to the Reporter interface.
type FuncReporter func(err error)

// Report implements Reporter.
func (f FuncReporter) Report(err error) { f(err) }
