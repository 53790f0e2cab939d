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

type activitiesCmd struct {
	period   string
	start    string
	date     string
	category string
	head     int
	tail     int
}

func (*activitiesCmd) Name() string     { return "activities" }
func (*activitiesCmd) Synopsis() string { return "list tracked activities" }
func (*activitiesCmd) Usage() string {
	return `eco activities [-p <period> | -s <start_date>] [-d <end_date>] [-category <category>] [-head <n>] [-tail <n>]

  Lists tracked activities, with options for filtering and limiting the output.
`
}

func (p *activitiesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (week, month, year).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.StringVar(&p.category, "category", "", "Only list one activity category.")
	f.IntVar(&p.head, "head", 0, "Show only the first N activities.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N activities.")
}

func (p *activitiesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var periodRange footprint.Range
	// If no date range flags are provided, use the full range of the store.
	useFullRange := p.start == "" && p.date == "" && p.period == ""

	if !useFullRange {
		endDateStr := p.date
		if endDateStr == "" {
			endDateStr = footprint.Today().String()
		}
		endDate, err := footprint.ParseDate(endDateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}

		if p.start != "" {
			startDate, err := footprint.ParseDate(p.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = footprint.NewRange(startDate, endDate)
		} else {
			period, err := footprint.ParsePeriod(p.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = period.Range(endDate)
		}
	}

	filter := footprint.AcceptAll
	if p.category != "" {
		category, err := footprint.ParseCategory(p.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		filter = footprint.ByCategory(category)
	}

	var activities []footprint.Activity
	for _, a := range ledger.Activities(filter) {
		if useFullRange || periodRange.Contains(a.When()) {
			activities = append(activities, a)
		}
	}

	if p.head > 0 && len(activities) > p.head {
		activities = activities[:p.head]
	}
	if p.tail > 0 && len(activities) > p.tail {
		activities = activities[len(activities)-p.tail:]
	}

	printMarkdown(renderer.ActivitiesMarkdown(activities))

	return subcommands.ExitSuccess
}
