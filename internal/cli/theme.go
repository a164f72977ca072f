package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/theme"
)

// ThemeResult is the rendered theme state.
type ThemeResult struct {
	Effective string `json:"effective"`
	Stored    string `json:"stored_preference"`
	Signal    string `json:"system_signal"`
	Err       string `json:"error,omitempty"`
}

func (r ThemeResult) String() string {
	s := fmt.Sprintf("theme: %s (stored: %s, system: %s)", r.Effective, r.Stored, r.Signal)
	if r.Err != "" {
		s += fmt.Sprintf("\nwarning: %s", r.Err)
	}
	return s
}

func themeResult(st theme.State) ThemeResult {
	return ThemeResult{
		Effective: string(st.Effective()),
		Stored:    string(st.Stored),
		Signal:    string(st.Signal),
		Err:       st.Err,
	}
}

// NewThemeCommand creates the theme command.
//
// With no argument it shows the current theme state. With an argument it
// either toggles or stores an explicit preference:
//
//	tally theme             # show
//	tally theme dark        # store an explicit preference
//	tally theme system      # follow the system signal
//	tally theme toggle      # flip between light and dark
func NewThemeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:          "theme [light|dark|system|toggle]",
		Short:        "Show or change the theme preference",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, cleanup, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer cleanup()

			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout(), Verbose: rootOpts.Verbose}

			if len(args) == 0 {
				return f.Success(themeResult(w.Theme.State()))
			}

			var st theme.State
			switch args[0] {
			case "toggle":
				st = w.Theme.Toggle()
			default:
				mode, err := theme.ParseMode(args[0])
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid theme argument", err)
				}
				st = w.Theme.SetMode(mode)
			}
			return f.Success(themeResult(st))
		},
	}
}
