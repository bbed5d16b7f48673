package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot"
	"github.com/hyoukjoo/marketbot/renderer"
)

// returnsCmd holds the flags for the 'returns' subcommand.
type returnsCmd struct {
	period string
}

func (*returnsCmd) Name() string     { return "returns" }
func (*returnsCmd) Synopsis() string { return "display the multi-period returns of a symbol" }
func (*returnsCmd) Usage() string {
	return `mbot returns [-p <period>] <symbol>...

  Fetches one year of daily closes for each symbol and prints its return
  over every period (1D, 1W, 1M, YTD, 1Y), or over a single period with -p.
`
}

func (c *returnsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Single period to display (1D, 1W, 1M, YTD, 1Y)")
}

func (c *returnsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one symbol is required")
		return subcommands.ExitUsageError
	}

	var period marketbot.ReturnPeriod
	if c.period != "" {
		var err error
		period, err = marketbot.ParseReturnPeriod(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	reporter, err := newReporter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	now := time.Now()
	status := subcommands.ExitSuccess
	for _, symbol := range f.Args() {
		set, err := reporter.SymbolReturns(symbol, now)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", symbol, err)
			status = subcommands.ExitFailure
			continue
		}
		if period != "" {
			fmt.Printf("%s %s: %s\n", symbol, period, set.Get(period).SignedString())
			continue
		}
		printMarkdown(renderer.ReturnsMarkdown(symbol, marketbot.SymbolCurrency(symbol), set))
	}
	return status
}
