package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/counter"
	"github.com/tallyhq/tally/internal/widget"
)

// CounterResult is the rendered outcome of a counter command.
type CounterResult struct {
	Value int64  `json:"value"`
	AtMin bool   `json:"at_min"`
	AtMax bool   `json:"at_max"`
	Err   string `json:"error,omitempty"`
	Note  string `json:"note,omitempty"`
}

func (r CounterResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "value: %d", r.Value)
	if r.AtMin {
		b.WriteString(" (at minimum)")
	}
	if r.AtMax {
		b.WriteString(" (at maximum)")
	}
	if r.Note != "" {
		fmt.Fprintf(&b, "\nnote: %s", r.Note)
	}
	if r.Err != "" {
		fmt.Fprintf(&b, "\nwarning: %s", r.Err)
	}
	return b.String()
}

func counterResult(w *widget.Widget, note string) CounterResult {
	st := w.Counter.Current()
	return CounterResult{
		Value: st.Value,
		AtMin: w.Counter.AtMin(),
		AtMax: w.Counter.AtMax(),
		Err:   st.Err,
		Note:  note,
	}
}

// NewIncrCommand creates the incr command.
func NewIncrCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "incr",
		Short:        "Increment the counter by one step",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			// Cooperative gating: suppress the dispatch at the bound
			// instead of producing a clamped no-op.
			if w.Counter.AtMax() {
				return f.Success(counterResult(w, "already at maximum; increment suppressed"))
			}
			w.Counter.Dispatch(counter.Increment())
			return f.Success(counterResult(w, ""))
		},
	}
}

// NewDecrCommand creates the decr command.
func NewDecrCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "decr",
		Short:        "Decrement the counter by one step",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			if w.Counter.AtMin() {
				return f.Success(counterResult(w, "already at minimum; decrement suppressed"))
			}
			w.Counter.Dispatch(counter.Decrement())
			return f.Success(counterResult(w, ""))
		},
	}
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "set <value>",
		Short:        "Set the counter to a value (clamped into bounds)",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid value %q", args[0]), err)
			}

			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			w.Counter.Dispatch(counter.SetValue(v))

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return f.Success(counterResult(w, ""))
		},
	}
}

// NewResetCommand creates the reset command.
func NewResetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "reset",
		Short:        "Reset the counter to its anchor value",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			w.Counter.Dispatch(counter.Reset())

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return f.Success(counterResult(w, ""))
		},
	}
}

// StatusResult is the combined session snapshot for the status command.
type StatusResult struct {
	CounterResult
	Theme   string `json:"theme"`
	Stored  string `json:"stored_preference"`
	History int    `json:"history_entries"`
}

func (r StatusResult) String() string {
	return fmt.Sprintf("%s\ntheme: %s (stored: %s)\nhistory entries this session: %d",
		r.CounterResult, r.Theme, r.Stored, r.History)
}

// NewStatusCommand creates the status command.
func NewStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show the current counter value and theme",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			ts := w.Theme.State()
			result := StatusResult{
				CounterResult: counterResult(w, ""),
				Theme:         string(ts.Effective()),
				Stored:        string(ts.Stored),
				History:       len(w.Counter.History()),
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return f.Success(result)
		},
	}
}

// HistoryEntryResult is one rendered history entry.
type HistoryEntryResult struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Previous int64  `json:"previous"`
	New      int64  `json:"new"`
	Seq      int64  `json:"seq"`
	At       string `json:"at"`
}

// HistoryResult is the rendered history trail.
type HistoryResult struct {
	Entries []HistoryEntryResult `json:"entries"`
}

func (r HistoryResult) String() string {
	if len(r.Entries) == 0 {
		return "no transitions this session"
	}
	var b strings.Builder
	for i, e := range r.Entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%4d  %-10s %d -> %d  (%s)", e.Seq, e.Kind, e.Previous, e.New, e.At)
	}
	return b.String()
}

// NewHistoryCommand creates the history command.
//
// The trail covers the current process only: history is session state,
// not persisted, so each CLI invocation starts a fresh trail. The
// command mainly serves scripted flows that batch several intents.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "history",
		Short:        "Show the session's transition history",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			entries := w.Counter.History()
			result := HistoryResult{Entries: make([]HistoryEntryResult, len(entries))}
			for i, e := range entries {
				result.Entries[i] = HistoryEntryResult{
					ID:       e.ID,
					Kind:     e.Kind.String(),
					Previous: e.Previous,
					New:      e.New,
					Seq:      e.Seq,
					At:       e.At.Format("2006-01-02T15:04:05Z07:00"),
				}
			}

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}
			return f.Success(result)
		},
	}
}
