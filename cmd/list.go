package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list the registered holdings" }
func (*listCmd) Usage() string {
	return `mbot list

  Prints the registered holdings as stored, without fetching any price.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := marketbot.NewFileHoldingStore(*holdingsFile)
	holdings, err := store.List()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(holdings) == 0 {
		fmt.Println("No holdings registered.")
		return subcommands.ExitSuccess
	}
	for _, h := range holdings {
		fmt.Printf("%-12s cost basis %v, quantity %v\n", h.Symbol, h.CostBasis, h.Quantity)
	}
	return subcommands.ExitSuccess
}
