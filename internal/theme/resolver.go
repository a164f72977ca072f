package theme

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tallyhq/tally/internal/store"
)

// State is an immutable theme snapshot.
type State struct {
	// Stored is the persisted user preference.
	Stored Mode

	// Signal is the live system preference, never persisted.
	Signal Signal

	// Err carries the most recent persistence failure. The in-memory
	// preference advances regardless; a failing medium only costs
	// durability across reloads.
	Err string
}

// Effective returns the mode actually applied: the stored preference when
// explicit, otherwise the system signal. Always derived, never stored.
func (s State) Effective() Mode {
	if s.Stored != ModeSystem {
		return s.Stored
	}
	return s.Signal.Mode()
}

// Resolver owns the theme preference state machine.
//
// Thread-safety: all methods are safe for concurrent use; signal
// notifications from the Source and caller intents serialize on an
// internal mutex. Subscribers are invoked without the lock held.
type Resolver struct {
	mu     sync.Mutex
	state  State
	cancel func()

	subs   map[int]func(Mode)
	nextID int

	kv       store.KV
	reporter store.Reporter
	logger   *slog.Logger
	defMode  Mode
}

// ResolverOption configures a Resolver at construction.
type ResolverOption func(*Resolver)

// WithDefaultMode sets the preference used when nothing valid is stored.
// Default: system.
func WithDefaultMode(m Mode) ResolverOption {
	return func(r *Resolver) {
		if m.Valid() {
			r.defMode = m
		}
	}
}

// WithReporter sets the collaborator receiving persistence failures.
func WithReporter(rep store.Reporter) ResolverOption {
	return func(r *Resolver) {
		if rep != nil {
			r.reporter = rep
		}
	}
}

// WithLogger sets the resolver's structured logger.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver creates a Resolver backed by kv and fed by src.
//
// The stored preference is read from the "theme-mode" key (falling back
// to the default mode when absent or unparseable), the signal is seeded
// synchronously from src.Current(), and a change listener is registered.
// Callers must Close the resolver to release the listener.
func NewResolver(kv store.KV, src Source, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		subs:     make(map[int]func(Mode)),
		kv:       kv,
		reporter: store.NopReporter{},
		logger:   slog.Default(),
		defMode:  ModeSystem,
	}
	for _, opt := range opts {
		opt(r)
	}

	stored, err := ParseMode(store.GetJSON(context.Background(), kv, store.KeyThemeMode, string(r.defMode)))
	if err != nil {
		stored = r.defMode
	}
	r.state = State{Stored: stored, Signal: src.Current()}
	r.cancel = src.Subscribe(r.onSignal)

	r.logger.Debug("theme resolver ready",
		"stored", string(stored),
		"signal", string(r.state.Signal),
		"effective", string(r.state.Effective()),
	)

	return r
}

// Close releases the source subscription. Idempotent: closing twice is
// safe and the second call is a no-op.
func (r *Resolver) Close() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// State returns the current snapshot.
func (r *Resolver) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Effective returns the currently applied mode.
func (r *Resolver) Effective() Mode {
	return r.State().Effective()
}

// SetMode persists mode and re-derives the effective mode. Invalid modes
// are ignored and return the unchanged snapshot.
func (r *Resolver) SetMode(mode Mode) State {
	if !mode.Valid() {
		r.logger.Debug("ignoring invalid theme mode", "mode", string(mode))
		return r.State()
	}

	r.mu.Lock()
	before := r.state.Effective()
	r.state.Stored = mode
	r.state.Err = ""
	if err := store.SetJSON(context.Background(), r.kv, store.KeyThemeMode, string(mode)); err != nil {
		// Best effort: the preference still advances for this session.
		r.state.Err = err.Error()
		r.reporter.Report(err)
	}
	st := r.state
	after := st.Effective()
	r.mu.Unlock()

	r.logger.Debug("theme mode set", "stored", string(mode), "effective", string(after))
	if after != before {
		r.notify(after)
	}
	return st
}

// Toggle flips the effective mode between light and dark. It always
// writes an explicit preference - toggling never selects system mode.
func (r *Resolver) Toggle() State {
	if r.Effective() == ModeDark {
		return r.SetMode(ModeLight)
	}
	return r.SetMode(ModeDark)
}

// OnChange registers fn to run whenever the effective mode changes. The
// returned cancel unregisters it; calling cancel twice is safe.
func (r *Resolver) OnChange(fn func(Mode)) (cancel func()) {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

// onSignal handles a system preference change notification.
func (r *Resolver) onSignal(sig Signal) {
	r.mu.Lock()
	before := r.state.Effective()
	r.state.Signal = sig
	after := r.state.Effective()
	r.mu.Unlock()

	r.logger.Debug("system signal changed", "signal", string(sig), "effective", string(after))
	if after != before {
		r.notify(after)
	}
}

// notify fans an effective-mode change out to subscribers.
func (r *Resolver) notify(mode Mode) {
	r.mu.Lock()
	fns := make([]func(Mode), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(mode)
	}
}
