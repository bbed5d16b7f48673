package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	send bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "build the full daily report" }
func (*reportCmd) Usage() string {
	return `mbot report [-send]

  Builds the daily report (market indices, exchange rates, watchlist
  returns and portfolio valuation) and prints it. With -send, the report
  is delivered to the configured Telegram chat instead.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.send, "send", false, "send the report to Telegram instead of printing it")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reporter, err := newReporter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	report := reporter.Daily(time.Now())

	if !c.send {
		printMarkdown(renderer.ReportMarkdown(report))
		return subcommands.ExitSuccess
	}

	client, chatID, err := newTelegram()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if chatID == 0 {
		fmt.Fprintf(os.Stderr, "Error: telegram chat id is not set, use -telegram-chat or $%s\n", telegramChatEnv)
		return subcommands.ExitFailure
	}
	if err := client.SendMessage(chatID, renderer.ReportHTML(report)); err != nil {
		fmt.Fprintf(os.Stderr, "Error sending report: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Report sent.")
	return subcommands.ExitSuccess
}
