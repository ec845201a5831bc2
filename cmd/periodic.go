package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/twr"
	"github.com/etnz/twr/renderer"
	"github.com/google/subcommands"
)

// periodicCmd is the shared core of the weekly/monthly/quarterly/yearly
// subcommands: same pipeline, different calendar bucket.
type periodicCmd struct {
	period twr.Period
}

func (c *periodicCmd) run() subcommands.ExitStatus {
	result, err := ComputeResult()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.PeriodicMarkdown(result, c.period))
	return subcommands.ExitSuccess
}

type weeklyCmd struct{ periodic periodicCmd }

func (*weeklyCmd) Name() string     { return "weekly" }
func (*weeklyCmd) Synopsis() string { return "display week-by-week returns" }
func (*weeklyCmd) Usage() string {
	return `ptw weekly [-nav-file <file>] [-flows-file <file>]

  Displays the return of each calendar week, net of that week's external
  cash flows.
`
}
func (c *weeklyCmd) SetFlags(f *flag.FlagSet) { c.periodic.period = twr.Weekly }
func (c *weeklyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.periodic.run()
}

type monthlyCmd struct{ periodic periodicCmd }

func (*monthlyCmd) Name() string     { return "monthly" }
func (*monthlyCmd) Synopsis() string { return "display month-by-month returns" }
func (*monthlyCmd) Usage() string {
	return `ptw monthly [-nav-file <file>] [-flows-file <file>]

  Displays the return of each calendar month, net of that month's external
  cash flows.
`
}
func (c *monthlyCmd) SetFlags(f *flag.FlagSet) { c.periodic.period = twr.Monthly }
func (c *monthlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.periodic.run()
}

type quarterlyCmd struct{ periodic periodicCmd }

func (*quarterlyCmd) Name() string     { return "quarterly" }
func (*quarterlyCmd) Synopsis() string { return "display quarter-by-quarter returns" }
func (*quarterlyCmd) Usage() string {
	return `ptw quarterly [-nav-file <file>] [-flows-file <file>]

  Displays the return of each calendar quarter, net of that quarter's
  external cash flows.
`
}
func (c *quarterlyCmd) SetFlags(f *flag.FlagSet) { c.periodic.period = twr.Quarterly }
func (c *quarterlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.periodic.run()
}

type yearlyCmd struct{ periodic periodicCmd }

func (*yearlyCmd) Name() string     { return "yearly" }
func (*yearlyCmd) Synopsis() string { return "display year-by-year returns" }
func (*yearlyCmd) Usage() string {
	return `ptw yearly [-nav-file <file>] [-flows-file <file>]

  Displays the return of each calendar year, net of that year's external
  cash flows.
`
}
func (c *yearlyCmd) SetFlags(f *flag.FlagSet) { c.periodic.period = twr.Yearly }
func (c *yearlyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return c.periodic.run()
}
