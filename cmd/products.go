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

// productsCmd holds the flags for the 'products' subcommand.
type productsCmd struct {
	count int
}

func (*productsCmd) Name() string     { return "products" }
func (*productsCmd) Synopsis() string { return "recommend sustainable products" }
func (*productsCmd) Usage() string {
	return `eco products [-n <count>] [<category>]

  Recommends sustainable products, from the whole catalog or one of its
  categories (home, kitchen, personal).
`
}

func (c *productsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 5, "Number of products to display.")
}

func (c *productsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	category := ""
	if f.NArg() > 0 {
		category = f.Arg(0)
	}

	products, err := footprint.RecommendProducts(category, c.count)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var b strings.Builder
	b.WriteString("## Sustainable Products\n\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- **%s**: %s\n", p.Name, p.Description)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
