// Command tally is the demo shell for the counter widget core.
package main

import (
	"fmt"
	"os"

	"github.com/tallyhq/tally/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
