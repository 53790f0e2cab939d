// Package cmd implements the CLI application to track a carbon footprint.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/footprint"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&transportCmd{}, "tracking")
	c.Register(&energyCmd{}, "tracking")
	c.Register(&foodCmd{}, "tracking")
	c.Register(&purchaseCmd{}, "tracking")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
	c.Register(&activitiesCmd{}, "reports")

	c.Register(&tipsCmd{}, "advice")
	c.Register(&productsCmd{}, "advice")
	c.Register(&prefsCmd{}, "advice")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&AssistCmd{}, "ai")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data", "data", "Path to the data folder holding per-user stores")
var user = flag.String("user", "default", "User whose footprint store to use")
var factorsFile = flag.String("factors", "", "Optional JSON file overriding the built-in emission factors")
var currency = flag.String("currency", "USD", "Currency for purchase amounts")

// LoadFactors returns the emission factor table: the built-in defaults,
// overlaid with the -factors file when one is given.
func LoadFactors() (*footprint.Factors, error) {
	if *factorsFile == "" {
		return footprint.DefaultFactors(), nil
	}
	f, err := os.Open(*factorsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open factors file %q: %w", *factorsFile, err)
	}
	defer f.Close()
	return footprint.DecodeFactors(f)
}

// OpenTracker is the central function to open the current user's store.
func OpenTracker() (*footprint.Tracker, error) {
	factors, err := LoadFactors()
	if err != nil {
		return nil, err
	}
	return footprint.NewTracker(*dataPath, *user, factors)
}

// DecodeLedger loads the current user's store for read-only reporting.
func DecodeLedger() (*footprint.Ledger, error) {
	return footprint.FindLedger(*dataPath, *user)
}

// tracked reports a freshly persisted record to the user.
func tracked(a footprint.Activity) subcommands.ExitStatus {
	fmt.Printf("Tracked %s on %s: %s CO2e\n", a.What(), a.When(), a.Emissions())
	return subcommands.ExitSuccess
}
