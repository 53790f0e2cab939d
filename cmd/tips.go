package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/footprint"
	"github.com/google/subcommands"
)

// tipsCmd holds the flags for the 'tips' subcommand.
type tipsCmd struct {
	count    int
	category string
}

func (*tipsCmd) Name() string     { return "tips" }
func (*tipsCmd) Synopsis() string { return "display personalized improvement tips" }
func (*tipsCmd) Usage() string {
	return `eco tips [-n <count>] [-category <category>]

  Displays improvement tips targeted at the highest-emission categories of
  the last month, or at one given category.
`
}

func (c *tipsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 3, "Number of tips to display.")
	f.StringVar(&c.category, "category", "", "Only show tips for this activity category.")
}

func (c *tipsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var tips []string
	if c.category != "" {
		category, err := footprint.ParseCategory(c.category)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		tips, err = footprint.CategoryTips(category, c.count)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	} else {
		ledger, err := DecodeLedger()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		tips = ledger.Tips(c.count, footprint.Today())
	}

	var b strings.Builder
	b.WriteString("## Improvement Tips\n\n")
	for _, tip := range tips {
		fmt.Fprintf(&b, "1. %s\n", tip)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
