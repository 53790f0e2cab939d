package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/footprint"
	"github.com/google/subcommands"
)

// energyCmd holds the flags for the 'energy' subcommand.
type energyCmd struct {
	date   string
	kind   string
	amount float64
	unit   string
	live   bool
}

func (*energyCmd) Name() string     { return "energy" }
func (*energyCmd) Synopsis() string { return "track a home energy consumption" }
func (*energyCmd) Usage() string {
	return `eco energy -type <type> -amount <amount> [-unit kWh|therms] [-d <date>]

  Records a home energy consumption. Amounts are in kWh; natural gas can
  also be given in therms and is converted on record.

Usage Examples:
# 120 kWh of electricity.
$ eco energy -type electricity -amount 120

# 2 therms of natural gas, last week.
$ eco energy -type natural_gas -amount 2 -unit therms -d -1w

# 80 kWh of electricity at the live grid intensity.
$ eco energy -type electricity -amount 80 -live
`
}

func (c *energyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the consumption.")
	f.StringVar(&c.kind, "type", "", "Energy type (electricity, natural_gas, heating_oil, propane, renewable).")
	f.Float64Var(&c.amount, "amount", 0, "Amount consumed.")
	f.StringVar(&c.unit, "unit", "kWh", "Unit of the amount (kWh, or therms for natural gas).")
	f.BoolVar(&c.live, "live", false, "Use the live grid carbon intensity for electricity instead of the yearly average.")
}

func (c *energyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.kind == "" {
		fmt.Fprintln(os.Stderr, "Error: -type is required.")
		return subcommands.ExitUsageError
	}
	day, err := footprint.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	factors, err := LoadFactors()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.live {
		intensity, err := footprint.GridIntensity()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching grid intensity: %v\n", err)
			return subcommands.ExitFailure
		}
		factors = factors.WithElectricity(intensity)
	}

	tracker, err := footprint.NewTracker(*dataPath, *user, factors)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a, err := tracker.Track(footprint.NewEnergyUse(day, c.kind, c.amount, c.unit))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return tracked(a)
}
