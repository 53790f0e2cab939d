package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/footprint"
	"github.com/etnz/footprint/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	date   string
	period string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display a full environmental impact report" }
func (*reportCmd) Usage() string {
	return `eco report [-p <period>] [-d <date>]

  Displays the impact report for the period ending on the given date:
  summary, comparison to the average footprint, trend against the previous
  period, and personalized tips.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "End date of the report window.")
	f.StringVar(&c.period, "p", "week", "Period to report on (week, month, year).")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := footprint.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	period, err := footprint.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report := ledger.NewReport(period, on)
	printMarkdown(renderer.ReportMarkdown(renderer.NewReport(report)))
	return subcommands.ExitSuccess
}
