package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/hyoukjoo/marketbot/renderer"
	"github.com/hyoukjoo/marketbot/telegram"
	"github.com/robfig/cron/v3"
)

// serveCmd holds the flags for the 'serve' subcommand.
type serveCmd struct {
	addr     string
	timezone string
	testNow  bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "run the bot: scheduled reports and chat commands" }
func (*serveCmd) Usage() string {
	return `mbot serve [-addr <addr>] [-tz <timezone>] [-now]

  Runs the bot until interrupted. A report is sent to the configured chat
  on the market schedule (weekdays 09:00 and 15:40, tue-sat 06:00, local
  market time), chat commands are answered over long polling, and a
  keep-alive endpoint is served on -addr.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "Address of the keep-alive HTTP endpoint")
	f.StringVar(&c.timezone, "tz", "Asia/Seoul", "Timezone of the report schedule")
	f.BoolVar(&c.testNow, "now", false, "send one report immediately on startup")
}

// the original bot's schedule: before the local open, after the local
// close, and after the US close.
var scheduleSpecs = []string{
	"0 9 * * MON-FRI",
	"40 15 * * MON-FRI",
	"0 6 * * TUE-SAT",
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reporter, err := newReporter()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
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

	location, err := time.LoadLocation(c.timezone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid timezone %q: %v\n", c.timezone, err)
		return subcommands.ExitUsageError
	}

	sendReport := func() {
		log.Println("building report...")
		report := reporter.Daily(time.Now().In(location))
		if err := client.SendMessage(chatID, renderer.ReportHTML(report)); err != nil {
			log.Printf("cannot send report: %v", err)
			return
		}
		log.Println("report sent")
	}

	scheduler := cron.New(cron.WithLocation(location))
	for _, spec := range scheduleSpecs {
		if _, err := scheduler.AddFunc(spec, sendReport); err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid schedule %q: %v\n", spec, err)
			return subcommands.ExitFailure
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// keep-alive endpoint, the hosting platform pings it to keep the
	// process alive
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "marketbot is running")
	})
	server := &http.Server{Addr: c.addr, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("keep-alive server: %v", err)
		}
	}()

	bot := &telegram.Bot{Client: client, ChatID: chatID, Store: reporter.Store, Reporter: reporter}
	go func() {
		if err := client.Poll(ctx, bot.Handle); err != nil && ctx.Err() == nil {
			log.Printf("command loop stopped: %v", err)
		}
	}()

	if c.testNow {
		sendReport()
	}

	scheduler.Start()
	log.Printf("bot running, schedule %v in %s", scheduleSpecs, c.timezone)

	<-ctx.Done()
	log.Println("shutting down...")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	server.Shutdown(shutdownCtx)
	return subcommands.ExitSuccess
}
