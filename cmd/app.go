// Package cmd implements the CLI application around the market bot.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot"
	"github.com/hyoukjoo/marketbot/fxrate"
	"github.com/hyoukjoo/marketbot/telegram"
	"github.com/hyoukjoo/marketbot/yahoo"
)

// Commands lists every subcommand of the application; the main package
// registers them all.
var Commands = []subcommands.Command{
	&reportCmd{},
	&returnsCmd{},
	&quoteCmd{},
	&portfolioCmd{},
	&addCmd{},
	&rmCmd{},
	&listCmd{},
	&fxCmd{},
	&serveCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings-file", "holdings.json", "Path to the holdings file (flat JSON object)")
var watchlistFile = flag.String("watchlist-file", "watchlists.json", "Path to the watchlist file. Built-in groups are used if missing.")

const (
	telegramTokenEnv = "TELEGRAM_BOT_TOKEN"
	telegramChatEnv  = "TELEGRAM_CHAT_ID"
)

var telegramTokenFlag = flag.String("telegram-token", "", "Telegram bot token.\n If missing it is read from the environment variable \""+telegramTokenEnv+"\".")
var telegramChatFlag = flag.String("telegram-chat", "", "Telegram chat id to send reports to.\n If missing it is read from the environment variable \""+telegramChatEnv+"\".")

func telegramToken() string {
	// If the flag is not set, we try to read it from the environment variable.
	if *telegramTokenFlag == "" {
		*telegramTokenFlag = os.Getenv(telegramTokenEnv)
	}
	return *telegramTokenFlag
}

func telegramChatID() (int64, error) {
	if *telegramChatFlag == "" {
		*telegramChatFlag = os.Getenv(telegramChatEnv)
	}
	if *telegramChatFlag == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(*telegramChatFlag, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid telegram chat id %q: %w", *telegramChatFlag, err)
	}
	return id, nil
}

// newTelegram returns a client for the configured bot, or an error when the
// token is missing.
func newTelegram() (*telegram.Client, int64, error) {
	token := telegramToken()
	if token == "" {
		return nil, 0, fmt.Errorf("telegram token is not set, use -telegram-token or $%s", telegramTokenEnv)
	}
	chatID, err := telegramChatID()
	if err != nil {
		return nil, 0, err
	}
	return telegram.New(token), chatID, nil
}

// newReporter assembles the engine with its real collaborators.
func newReporter() (*marketbot.Reporter, error) {
	lists, err := marketbot.LoadWatchlists(*watchlistFile)
	if err != nil {
		return nil, err
	}
	return &marketbot.Reporter{
		Quoter:     yahoo.New(),
		RateSource: fxrate.New(),
		Store:      marketbot.NewFileHoldingStore(*holdingsFile),
		Watchlists: lists,
	}, nil
}

// printMarkdown renders markdown to the terminal.
func printMarkdown(src string) {
	out, err := glamour.Render(src, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Print(src)
		return
	}
	fmt.Print(out)
}
