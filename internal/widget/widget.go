// Package widget composes the counter engine, theme resolver, and
// key/value store into one session.
//
// Composition is explicit: the engines are constructed once here and
// references are handed to whatever needs them - no ambient lookup, no
// process-wide singletons. The UI shell (CLI, TUI, whatever hosts the
// session) talks to Widget.Counter and Widget.Theme directly.
//
// Persistence is an observer concern: when enabled, every counter
// transition writes the new value under "counter-value" after the
// in-memory state has advanced. Write failures surface on the snapshot's
// Err field and go to the injected Reporter; they never block or roll
// back a transition.
package widget

import (
	"context"
	"log/slog"

	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/counter"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/theme"
)

// Widget is one widget session: a counter engine and a theme resolver
// sharing a persistence medium.
type Widget struct {
	Counter *counter.Engine
	Theme   *theme.Resolver

	kv       store.KV
	persist  bool
	reporter store.Reporter
	logger   *slog.Logger
}

// Option configures a Widget at construction.
type Option func(*Widget)

// WithReporter sets the collaborator receiving persistence failures.
// Defaults to a warn-level slog reporter.
func WithReporter(r store.Reporter) Option {
	return func(w *Widget) {
		if r != nil {
			w.reporter = r
		}
	}
}

// WithLogger sets the session's structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Widget) {
		if l != nil {
			w.logger = l
		}
	}
}

// New builds a session from cfg, backed by kv and fed by src.
//
// When persistence is enabled the counter resumes at the stored
// "counter-value" (clamped into bounds); Reset still targets the
// configured initial value, not the restored one. The theme preference
// is seeded from "theme-mode" with cfg.DefaultMode as the fallback.
//
// Callers must Close the widget to release the theme signal listener.
func New(cfg config.Config, kv store.KV, src theme.Source, opts ...Option) *Widget {
	w := &Widget{
		kv:       kv,
		persist:  cfg.Persist,
		reporter: store.SlogReporter{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(w)
	}

	engineOpts := []counter.Option{
		counter.WithBounds(cfg.MinValue, cfg.MaxValue),
		counter.WithStep(cfg.Step),
		counter.WithInitialValue(cfg.InitialValue),
		counter.WithLogger(w.logger),
	}
	if cfg.ResetToZero {
		engineOpts = append(engineOpts, counter.WithResetToZero())
	}
	if cfg.Persist {
		restored := store.GetJSON(context.Background(), kv, store.KeyCounterValue, cfg.InitialValue)
		if restored != cfg.InitialValue {
			engineOpts = append(engineOpts, counter.WithRestoredValue(restored))
		}
	}
	w.Counter = counter.New(engineOpts...)

	if cfg.Persist {
		w.Counter.Observe(w.persistValue)
	}

	mode := theme.ModeSystem
	if m, err := theme.ParseMode(cfg.DefaultMode); err == nil {
		mode = m
	}
	w.Theme = theme.NewResolver(kv, src,
		theme.WithDefaultMode(mode),
		theme.WithReporter(w.reporter),
		theme.WithLogger(w.logger),
	)

	w.logger.Debug("widget session ready",
		"value", w.Counter.Value(),
		"persist", cfg.Persist,
		"effective_mode", string(w.Theme.Effective()),
	)

	return w
}

// Close tears the session down. Idempotent.
func (w *Widget) Close() {
	w.Theme.Close()
}

// persistValue is the counter persistence observer: fire-and-forget from
// the dispatch's perspective, the returned error only marks the snapshot.
func (w *Widget) persistValue(entry counter.HistoryEntry, next *counter.State) error {
	if err := store.SetJSON(context.Background(), w.kv, store.KeyCounterValue, next.Value); err != nil {
		w.reporter.Report(err)
		return err
	}
	return nil
}
