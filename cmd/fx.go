package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot/fxrate"
)

// fxCmd holds the flags for the 'fx' subcommand.
type fxCmd struct{}

func (*fxCmd) Name() string     { return "fx" }
func (*fxCmd) Synopsis() string { return "display the current exchange rates" }
func (*fxCmd) Usage() string {
	return `mbot fx

  Prints the won rates for USD, JPY(100) and HKD.
`
}

func (c *fxCmd) SetFlags(f *flag.FlagSet) {}

func (c *fxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rates, err := fxrate.New().Rates()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching exchange rates: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("USD: %.2f KRW\n", rates.USDKRW)
	fmt.Printf("JPY(100): %.2f KRW\n", rates.JPY100KRW)
	fmt.Printf("HKD: %.2f KRW\n", rates.HKDKRW)
	return subcommands.ExitSuccess
}
