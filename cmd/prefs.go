package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// prefsCmd holds the flags for the 'prefs' subcommand.
type prefsCmd struct{}

func (*prefsCmd) Name() string     { return "prefs" }
func (*prefsCmd) Synopsis() string { return "show or update user preferences" }
func (*prefsCmd) Usage() string {
	return `eco prefs [<key>=<value> ...]

  Without arguments, shows the current preferences. With arguments, updates
  the given keys and persists them. The interests key takes a
  comma-separated list.

Usage Examples:
$ eco prefs diet_type=vegetarian
$ eco prefs home_type=house interests=transportation,food
`
}

func (c *prefsCmd) SetFlags(f *flag.FlagSet) {}

func (c *prefsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := OpenTracker()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if f.NArg() > 0 {
		updates := make(map[string]any)
		for _, arg := range f.Args() {
			key, value, found := strings.Cut(arg, "=")
			if !found {
				fmt.Fprintf(os.Stderr, "Error: invalid argument %q, want <key>=<value>.\n", arg)
				return subcommands.ExitUsageError
			}
			if key == "interests" {
				updates[key] = strings.Split(value, ",")
			} else {
				updates[key] = value
			}
		}
		if err := tracker.SetPreferences(updates); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	prefs := tracker.Ledger().Preferences()
	fmt.Printf("diet_type: %s\n", prefs.DietType)
	fmt.Printf("home_type: %s\n", prefs.HomeType)
	fmt.Printf("transportation_primary: %s\n", prefs.PrimaryTransport)
	fmt.Printf("interests: %s\n", strings.Join(prefs.Interests, ", "))
	return subcommands.ExitSuccess
}
