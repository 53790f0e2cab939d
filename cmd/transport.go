package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/footprint"
	"github.com/google/subcommands"
)

// transportCmd holds the flags for the 'transport' subcommand.
type transportCmd struct {
	date       string
	mode       string
	distance   float64
	passengers int
}

func (*transportCmd) Name() string     { return "transport" }
func (*transportCmd) Synopsis() string { return "track a trip" }
func (*transportCmd) Usage() string {
	return `eco transport -mode <mode> -km <distance> [-n <passengers>] [-d <date>]

  Records a trip. The emissions are the mode's factor times the distance,
  split across the passengers.

Usage Examples:
# A 15.5 km commute by car.
$ eco transport -mode car -km 15.5

# Yesterday's shared ride.
$ eco transport -mode car -km 40 -n 3 -d -1d
`
}

func (c *transportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the trip. See the user manual for supported date formats.")
	f.StringVar(&c.mode, "mode", "", "Mode of transport (car, bus, train, bicycle, walk, plane).")
	f.Float64Var(&c.distance, "km", 0, "Distance travelled, in km.")
	f.IntVar(&c.passengers, "n", 1, "Number of passengers sharing the trip.")
}

func (c *transportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.mode == "" {
		fmt.Fprintln(os.Stderr, "Error: -mode is required.")
		return subcommands.ExitUsageError
	}
	day, err := footprint.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tracker, err := OpenTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a, err := tracker.Track(footprint.NewTransport(day, c.mode, c.distance, c.passengers))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return tracked(a)
}
