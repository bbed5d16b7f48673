package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "register a holding" }
func (*addCmd) Usage() string {
	return `mbot add <symbol> <cost basis> <quantity>

  Registers a holding in the holdings file. Registering a symbol that
  already exists overwrites its record: cost bases are not averaged
  across repeat buys.

Usage Examples:
$ mbot add AAPL 150.5 2
$ mbot add 005930.KS 79000 10
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Error: want exactly <symbol> <cost basis> <quantity>")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))
	cost, err := strconv.ParseFloat(f.Arg(1), 64)
	if err != nil || cost <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid cost basis %q\n", f.Arg(1))
		return subcommands.ExitUsageError
	}
	qty, err := strconv.ParseFloat(f.Arg(2), 64)
	if err != nil || qty <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid quantity %q\n", f.Arg(2))
		return subcommands.ExitUsageError
	}

	store := marketbot.NewFileHoldingStore(*holdingsFile)
	if err := store.Upsert(marketbot.Holding{Symbol: symbol, CostBasis: cost, Quantity: qty}); err != nil {
		fmt.Fprintf(os.Stderr, "Error registering %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Registered %s: cost basis %v, quantity %v\n", symbol, cost, qty)
	return subcommands.ExitSuccess
}
