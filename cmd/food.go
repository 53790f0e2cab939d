package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/footprint"
	"github.com/google/subcommands"
)

// foodCmd holds the flags for the 'food' subcommand.
type foodCmd struct {
	date string
}

func (*foodCmd) Name() string     { return "food" }
func (*foodCmd) Synopsis() string { return "track a meal" }
func (*foodCmd) Usage() string {
	return `eco food [-d <date>] <type>:<kg>[:local][:organic] ...

  Records a meal made of one or more food items. Each item is its type and
  weight in kg, optionally tagged local and/or organic (both reduce the
  item's emissions).

Usage Examples:
# A simple dinner.
$ eco food chicken:0.2 rice:0.15 vegetables:0.3:local:organic
`
}

func (c *foodCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the meal.")
}

// parseFoodItem parses one "type:kg[:local][:organic]" argument.
func parseFoodItem(arg string) (footprint.FoodItem, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 2 {
		return footprint.FoodItem{}, fmt.Errorf("invalid food item %q, want <type>:<kg>[:local][:organic]", arg)
	}
	kg, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return footprint.FoodItem{}, fmt.Errorf("invalid weight in %q: %w", arg, err)
	}
	var local, organic bool
	for _, tag := range parts[2:] {
		switch tag {
		case "local":
			local = true
		case "organic":
			organic = true
		default:
			return footprint.FoodItem{}, fmt.Errorf("unknown tag %q in %q, want local or organic", tag, arg)
		}
	}
	return footprint.Item(parts[0], kg, local, organic), nil
}

func (c *foodCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one food item is required.")
		return subcommands.ExitUsageError
	}
	day, err := footprint.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var items []footprint.FoodItem
	for _, arg := range f.Args() {
		item, err := parseFoodItem(arg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
		items = append(items, item)
	}

	tracker, err := OpenTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	a, err := tracker.Track(footprint.NewMeal(day, items...))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return tracked(a)
}
