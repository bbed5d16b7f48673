package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a registered holding" }
func (*rmCmd) Usage() string {
	return `mbot rm <symbol>

  Deletes the holding record for a symbol from the holdings file.
`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: want exactly one symbol")
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	store := marketbot.NewFileHoldingStore(*holdingsFile)
	err := store.Remove(symbol)
	if errors.Is(err, marketbot.ErrUnknownHolding) {
		fmt.Fprintf(os.Stderr, "Error: %s is not registered\n", symbol)
		return subcommands.ExitFailure
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s\n", symbol)
	return subcommands.ExitSuccess
}
