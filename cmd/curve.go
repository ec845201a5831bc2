package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/twr/renderer"
	"github.com/google/subcommands"
)

type curveCmd struct{}

func (*curveCmd) Name() string     { return "curve" }
func (*curveCmd) Synopsis() string { return "display the day-by-day cumulative return curve" }
func (*curveCmd) Usage() string {
	return `ptw curve [-nav-file <file>] [-flows-file <file>]

  Displays the cumulative time-weighted return for every NAV date. The
  curve starts at zero and its last point matches the total TWR of the
  report.
`
}

func (c *curveCmd) SetFlags(f *flag.FlagSet) {}

func (c *curveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := ComputeResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CurveMarkdown(result))
	return subcommands.ExitSuccess
}
