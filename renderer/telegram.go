package renderer

import (
	"fmt"
	"strings"

	"github.com/hyoukjoo/marketbot"
)

// ReportHTML renders the daily report as a Telegram HTML message, keeping
// the layout the bot always sent: indices, rates, then one block per
// watchlist with the multi-period returns, then the portfolio.
func ReportHTML(r *marketbot.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🌍 <b>글로벌 주식 정보 리포트</b>\n")
	fmt.Fprintf(&b, "⏰ %s\n", r.Time.Format("2006-01-02 15:04"))
	b.WriteString(strings.Repeat("=", 35) + "\n\n")

	for _, idx := range r.Indices {
		fmt.Fprintf(&b, "%s <b>%s</b>: %s (%s / %s)\n",
			idx.Rate.Emoji(), idx.Name, Comma(idx.Price), Signed(idx.Change), idx.Rate.SignedString())
	}
	if len(r.Indices) > 0 {
		b.WriteString("\n")
	}

	if r.Rates != nil {
		b.WriteString("💱 <b>환율</b>\n")
		fmt.Fprintf(&b, "🇺🇸 USD: %.2f원\n", r.Rates.USDKRW)
		fmt.Fprintf(&b, "🇯🇵 JPY(100): %.2f원\n", r.Rates.JPY100KRW)
		fmt.Fprintf(&b, "🇭🇰 HKD: %.2f원\n\n", r.Rates.HKDKRW)
	}

	for _, group := range r.Groups {
		fmt.Fprintf(&b, "⭐ <b>%s</b>\n", group.Title)
		for _, sym := range group.Symbols {
			b.WriteString(SymbolHTML(sym.Name, sym.Currency, sym.Returns))
		}
		b.WriteString("\n")
	}

	if r.Valuation != nil {
		b.WriteString(ValuationHTML(r.Valuation))
	}

	b.WriteString(strings.Repeat("=", 35))
	b.WriteString("\n💡 글로벌 투자, 신중하게!")
	b.WriteString("\n📊 수익률: 일/주/월/YTD/년")
	return b.String()
}

// SymbolHTML renders one symbol's current price and return set.
func SymbolHTML(name, currency string, set *marketbot.ReturnSet) string {
	var b strings.Builder
	periods, yearly := quoteLine(set)
	fmt.Fprintf(&b, "%s <b>%s</b>: %s\n", set.Get(marketbot.Daily).Emoji(), name, Price(set.Current, currency))
	fmt.Fprintf(&b, "   %s\n", periods)
	fmt.Fprintf(&b, "   %s\n", yearly)
	return b.String()
}

// ValuationHTML renders the portfolio section of a report, or a standalone
// reply to the /list chat command.
func ValuationHTML(v *marketbot.Valuation) string {
	var b strings.Builder

	b.WriteString("💼 <b>보유 종목</b>\n")
	for _, h := range v.Holdings {
		fmt.Fprintf(&b, "%s <b>%s</b>: %s (%s)\n",
			h.Return.Emoji(), h.Symbol,
			Price(h.CurrentPrice, marketbot.SymbolCurrency(h.Symbol)),
			h.Return.SignedString())
		fmt.Fprintf(&b, "   수량 %s | 평가액 %s\n", marketbot.Q(h.Quantity).String(), h.Value.String())
	}
	for _, symbol := range v.Skipped {
		fmt.Fprintf(&b, "⚠️ %s: 조회 실패\n", symbol)
	}

	fmt.Fprintf(&b, "\n투자액: %s\n", v.TotalCost.String())
	fmt.Fprintf(&b, "평가액: %s\n", v.TotalValue.String())
	fmt.Fprintf(&b, "손익: %s (%s)\n\n", v.TotalProfit.SignedString(), v.Return.SignedString())
	return b.String()
}
