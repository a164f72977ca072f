package cli

import (
	"github.com/tallyhq/tally/internal/config"
	"github.com/tallyhq/tally/internal/store"
	"github.com/tallyhq/tally/internal/theme"
	"github.com/tallyhq/tally/internal/widget"
)

// openSession composes a widget session from the global flags: config
// file, SQLite store, and an in-process signal source. The caller must
// invoke the returned cleanup.
//
// The CLI has no live OS color-scheme feed; the source reports light and
// the stored preference decides everything else, which matches the
// resolver's behavior under an explicit preference.
func openSession(opts *RootOptions) (*widget.Widget, func(), error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "loading config", err)
	}

	s, err := store.Open(opts.Database)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "opening session database", err)
	}

	w := widget.New(cfg, s, theme.NewStaticSource(theme.SignalLight))
	cleanup := func() {
		w.Close()
		s.Close()
	}
	return w, cleanup, nil
}
