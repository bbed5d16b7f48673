package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot/renderer"
)

// portfolioCmd holds the flags for the 'portfolio' subcommand.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "valuate the registered holdings at current prices" }
func (*portfolioCmd) Usage() string {
	return `mbot portfolio

  Loads the registered holdings, fetches their current prices and the
  exchange rate, and prints the converted cost, value, profit and return.
  Holdings whose price cannot be resolved are listed as skipped.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reporter, err := newReporter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rates, err := reporter.RateSource.Rates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching exchange rates: %v\n", err)
		return subcommands.ExitFailure
	}

	valuation, err := reporter.Valuation(rates.USDKRW)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(valuation.Holdings) == 0 && len(valuation.Skipped) == 0 {
		fmt.Println("No holdings registered. Use 'mbot add' first.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ValuationMarkdown(valuation))
	return subcommands.ExitSuccess
}
