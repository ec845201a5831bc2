package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/twr/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the full performance report" }
func (*reportCmd) Usage() string {
	return `ptw report [-nav-file <file>] [-flows-file <file>]

  Computes the time-weighted return over the whole NAV history and displays
  the headline metrics, the measured sub-periods, and any data-quality
  warnings absorbed during ingestion.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	result, err := ComputeResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ReportMarkdown(result))
	return subcommands.ExitSuccess
}
