package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot"
	"github.com/hyoukjoo/marketbot/renderer"
	"github.com/hyoukjoo/marketbot/yahoo"
)

// quoteCmd holds the flags for the 'quote' subcommand.
type quoteCmd struct{}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "display the latest intraday price of a symbol" }
func (*quoteCmd) Usage() string {
	return `mbot quote <symbol>...

  Fetches the latest traded price, bypassing the daily cache.
`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {}

func (c *quoteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required")
		return subcommands.ExitUsageError
	}

	client := yahoo.New()
	status := subcommands.ExitSuccess
	for _, symbol := range f.Args() {
		price, err := client.Intraday(symbol)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		fmt.Printf("%s: %s\n", symbol, renderer.Price(price, marketbot.SymbolCurrency(symbol)))
	}
	return status
}
