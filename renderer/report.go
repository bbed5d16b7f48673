// Package renderer turns report structs into markdown for the terminal and
// HTML for the chat surface.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/hyoukjoo/marketbot"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders the daily report for terminal display.
func ReportMarkdown(r *marketbot.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("🌍 글로벌 주식 리포트")
	doc.PlainText(fmt.Sprintf("⏰ %s", r.Time.Format("2006-01-02 15:04")))

	if len(r.Indices) > 0 {
		doc.H2("시장 지수")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"지수", "현재", "전일비", "등락률"},
		}
		for _, idx := range r.Indices {
			table.Rows = append(table.Rows, []string{
				idx.Name,
				Comma(idx.Price),
				Signed(idx.Change),
				idx.Rate.SignedString(),
			})
		}
		doc.Table(table)
	}

	if r.Rates != nil {
		doc.H2("환율")
		doc.Table(md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"통화", "원화"},
			Rows: [][]string{
				{"🇺🇸 USD", fmt.Sprintf("%.2f원", r.Rates.USDKRW)},
				{"🇯🇵 JPY(100)", fmt.Sprintf("%.2f원", r.Rates.JPY100KRW)},
				{"🇭🇰 HKD", fmt.Sprintf("%.2f원", r.Rates.HKDKRW)},
			},
		})
	}

	for _, group := range r.Groups {
		doc.H2(group.Title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"종목", "현재가", "일", "주", "월", "YTD"},
		}
		for _, sym := range group.Symbols {
			set := sym.Returns
			table.Rows = append(table.Rows, []string{
				sym.Name,
				Price(set.Current, sym.Currency),
				set.Get(marketbot.Daily).SignedString(),
				set.Get(marketbot.Weekly).SignedString(),
				set.Get(marketbot.Monthly).SignedString(),
				set.Get(marketbot.YTD).SignedString(),
			})
		}
		doc.Table(table)
	}

	if r.Valuation != nil {
		doc.H2("보유 종목")
		doc.PlainText(ValuationMarkdown(r.Valuation))
	}

	return doc.String()
}

// ReturnsMarkdown renders one symbol's return set, for the returns command.
func ReturnsMarkdown(symbol, currency string, set *marketbot.ReturnSet) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2(fmt.Sprintf("%s — %s (%s)", symbol, Price(set.Current, currency), set.Date))
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"기간", "수익률"},
	}
	for _, p := range marketbot.ReturnPeriods {
		table.Rows = append(table.Rows, []string{string(p), set.Get(p).SignedString()})
	}
	doc.Table(table)
	return doc.String()
}

// ValuationMarkdown renders a portfolio valuation alone, for the portfolio
// command.
func ValuationMarkdown(v *marketbot.Valuation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"종목", "수량", "현재가", "수익률", "평가액"},
	}
	for _, h := range v.Holdings {
		table.Rows = append(table.Rows, []string{
			h.Symbol,
			marketbot.Q(h.Quantity).String(),
			Price(h.CurrentPrice, marketbot.SymbolCurrency(h.Symbol)),
			h.Return.SignedString(),
			h.Value.String(),
		})
	}
	doc.Table(table)

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("총 평가액"), md.Bold(v.TotalValue.String())},
		Rows: [][]string{
			{"총 투자액", v.TotalCost.String()},
			{"총 손익", v.TotalProfit.SignedString()},
			{"총 수익률", v.Return.SignedString()},
		},
	})

	if len(v.Skipped) > 0 {
		doc.PlainText(fmt.Sprintf("⚠️ 조회 실패: %v", v.Skipped))
	}

	return doc.String()
}
