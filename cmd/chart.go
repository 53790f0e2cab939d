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

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	date   string
	period string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "draw the footprint breakdown as a bar chart" }
func (*chartCmd) Usage() string {
	return `eco chart [-p <period>] [-d <date>]

  Draws the per-category breakdown and a comparison to the average
  footprint as terminal bar charts.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "End date of the chart window.")
	f.StringVar(&c.period, "p", "week", "Period to chart (week, month, year).")
}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fmt.Print(renderer.Chart(ledger.NewSummary(period.Range(on)), period))
	return subcommands.ExitSuccess
}
