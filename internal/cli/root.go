// Package cli implements the tally command-line shell.
//
// The CLI is a consumer of the widget core, not part of it: each command
// loads the config, opens the SQLite-backed store, composes a widget
// session, forwards one user intent, and renders the resulting snapshot.
// State survives between invocations through the store, so consecutive
// commands act like one session reloaded.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Database string
	Config   string
	Verbose  bool
	Format   string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tally CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "tally - a bounded counter with an audited history",
		Long:  "A bounded counter widget core: reducer-driven value changes,\nan append-only history, and a light/dark theme resolver.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "tally.db", "path to the session database")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "tally.cue", "path to the widget config file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewIncrCommand(opts))
	cmd.AddCommand(NewDecrCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewResetCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewThemeCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
