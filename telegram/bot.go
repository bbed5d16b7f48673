package telegram

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/hyoukjoo/marketbot"
	"github.com/hyoukjoo/marketbot/renderer"
)

const usage = `명령어:
/add SYMBOL COST QTY — 보유 종목 등록 (같은 종목은 덮어씀)
/del SYMBOL — 보유 종목 삭제
/list — 포트폴리오 평가
/returns SYMBOL — 종목 수익률
/report — 전체 리포트`

// Bot wires the chat commands to the engine. Command parsing lives here;
// malformed commands are answered with the usage text and never reach the
// holdings store or the calculators.
type Bot struct {
	Client   *Client
	ChatID   int64 // when set, messages from other chats are ignored
	Store    marketbot.HoldingStore
	Reporter *marketbot.Reporter
}

// Handle dispatches one inbound message and returns the HTML reply.
func (b *Bot) Handle(chatID int64, text string) string {
	if b.ChatID != 0 && chatID != b.ChatID {
		return ""
	}

	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return ""
	}
	// commands may arrive as /add@botname in group chats
	command, _, _ := strings.Cut(fields[0], "@")
	args := fields[1:]

	switch command {
	case "/add":
		return b.add(args)
	case "/del":
		return b.remove(args)
	case "/list":
		return b.list()
	case "/returns":
		return b.returns(args)
	case "/report":
		return renderer.ReportHTML(b.Reporter.Daily(time.Now()))
	case "/start", "/help":
		return usage
	default:
		return usage
	}
}

// add registers a holding: /add AAPL 150.5 2
func (b *Bot) add(args []string) string {
	if len(args) != 3 {
		return usage
	}
	cost, err1 := strconv.ParseFloat(args[1], 64)
	qty, err2 := strconv.ParseFloat(args[2], 64)
	if err1 != nil || err2 != nil || cost <= 0 || qty <= 0 {
		return usage
	}
	symbol := strings.ToUpper(args[0])
	if err := b.Store.Upsert(marketbot.Holding{Symbol: symbol, CostBasis: cost, Quantity: qty}); err != nil {
		log.Printf("cannot register %s: %v", symbol, err)
		return "⚠️ 등록에 실패했습니다."
	}
	return fmt.Sprintf("✅ <b>%s</b> 등록: 매수가 %v, 수량 %v", symbol, cost, qty)
}

// remove deletes a holding: /del AAPL
func (b *Bot) remove(args []string) string {
	if len(args) != 1 {
		return usage
	}
	symbol := strings.ToUpper(args[0])
	err := b.Store.Remove(symbol)
	if errors.Is(err, marketbot.ErrUnknownHolding) {
		return fmt.Sprintf("⚠️ %s 은(는) 등록되어 있지 않습니다.", symbol)
	}
	if err != nil {
		log.Printf("cannot remove %s: %v", symbol, err)
		return "⚠️ 삭제에 실패했습니다."
	}
	return fmt.Sprintf("🗑 <b>%s</b> 삭제 완료", symbol)
}

// list valuates the portfolio at current prices.
func (b *Bot) list() string {
	rates, err := b.Reporter.RateSource.Rates()
	if err != nil {
		log.Printf("cannot fetch rates: %v", err)
		return "⚠️ 환율 조회에 실패했습니다."
	}
	valuation, err := b.Reporter.Valuation(rates.USDKRW)
	if err != nil {
		log.Printf("cannot valuate: %v", err)
		return "⚠️ 평가에 실패했습니다."
	}
	if len(valuation.Holdings) == 0 && len(valuation.Skipped) == 0 {
		return "보유 종목이 없습니다. /add 로 등록하세요."
	}
	return renderer.ValuationHTML(valuation)
}

// returns reports the multi-period returns of one symbol.
func (b *Bot) returns(args []string) string {
	if len(args) != 1 {
		return usage
	}
	symbol := strings.ToUpper(args[0])
	set, err := b.Reporter.SymbolReturns(symbol, time.Now())
	if err != nil {
		return fmt.Sprintf("⚠️ %s 데이터가 없습니다.", symbol)
	}
	return renderer.SymbolHTML(symbol, marketbot.SymbolCurrency(symbol), set)
}
