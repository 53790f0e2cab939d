package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/footprint"
	"github.com/google/subcommands"
)

// purchaseCmd holds the flags for the 'purchase' subcommand.
type purchaseCmd struct {
	date    string
	product string
	item    string
	price   float64
	eco     bool
}

func (*purchaseCmd) Name() string     { return "purchase" }
func (*purchaseCmd) Synopsis() string { return "track a purchase" }
func (*purchaseCmd) Usage() string {
	return `eco purchase -product <category> -price <amount> [-item <name>] [-eco] [-d <date>]

  Records a purchase in a product category. Emissions are estimated from the
  amount spent; eco-friendly purchases count half.

Usage Examples:
# A new jacket.
$ eco purchase -product clothing -price 80 -item jacket

# A second-hand eco-friendly desk.
$ eco purchase -product furniture -price 150 -eco
`
}

func (c *purchaseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Date of the purchase.")
	f.StringVar(&c.product, "product", "", "Product category (clothing, electronics, furniture, household, hobby).")
	f.StringVar(&c.item, "item", "", "Optional name of the purchased item.")
	f.Float64Var(&c.price, "price", 0, "Amount spent.")
	f.BoolVar(&c.eco, "eco", false, "Mark the purchase as eco-friendly.")
}

func (c *purchaseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.product == "" {
		fmt.Fprintln(os.Stderr, "Error: -product is required.")
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

	price := footprint.M(c.price, *currency)
	a, err := tracker.Track(footprint.NewPurchase(day, c.product, c.item, price, c.eco))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return tracked(a)
}
