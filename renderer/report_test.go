package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/hyoukjoo/marketbot"
	"github.com/hyoukjoo/marketbot/date"
)

func TestComma(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "0.00"},
		{999.5, "999.50"},
		{2724.63, "2,724.63"},
		{6173312.5, "6,173,312.50"},
		{-1234.5, "-1,234.50"},
	}
	for _, tc := range tests {
		if got := Comma(tc.value); got != tc.want {
			t.Errorf("Comma(%v) = %q want %q", tc.value, got, tc.want)
		}
	}
}

func TestSigned(t *testing.T) {
	if got := Signed(12.345); got != "+12.35" {
		t.Errorf("Signed(12.345) = %q", got)
	}
	if got := Signed(-3.2); got != "-3.20" {
		t.Errorf("Signed(-3.2) = %q", got)
	}
}

func TestPrice(t *testing.T) {
	// KRW has no minor unit, USD has two
	if got := Price(70000, "KRW"); !strings.Contains(got, "70,000") {
		t.Errorf("Price(70000, KRW) = %q", got)
	}
	if got := Price(150.5, "USD"); !strings.Contains(got, "150.50") {
		t.Errorf("Price(150.5, USD) = %q", got)
	}
}

// testReturns builds a ReturnSet from a tiny rising series.
func testReturns(t *testing.T, symbol string) *marketbot.ReturnSet {
	t.Helper()
	s := marketbot.NewPriceSeries(symbol)
	end := date.New(2025, 6, 19)
	for i, p := range []float64{100, 105, 110, 118, 120} {
		s.Append(end.Add(i-4), p)
	}
	set, err := s.Returns(time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	return set
}

func TestReportHTML(t *testing.T) {
	v := marketbot.Valuate(
		[]marketbot.Holding{{Symbol: "AAPL", CostBasis: 100, Quantity: 2}},
		func(string) (float64, error) { return 150, nil },
		1300)

	report := &marketbot.Report{
		Time:    time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC),
		Indices: []marketbot.IndexQuote{{Symbol: "^KS11", Name: "코스피", Price: 2724.63, Change: 12.5, Rate: 0.46}},
		Rates:   &marketbot.Rates{USDKRW: 1390, JPY100KRW: 940, HKDKRW: 178},
		Groups: []marketbot.GroupReport{{
			Title:   "관심 종목",
			Symbols: []marketbot.SymbolReport{{Symbol: "AAPL", Name: "애플", Currency: "USD", Returns: testReturns(t, "AAPL")}},
		}},
		Valuation: v,
	}

	html := ReportHTML(report)
	for _, want := range []string{
		"글로벌 주식 정보 리포트",
		"2025-06-20 09:00",
		"코스피", "2,724.63",
		"환율", "1390.00원",
		"관심 종목", "애플",
		"보유 종목", "AAPL",
		"글로벌 투자, 신중하게!",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("ReportHTML misses %q:\n%s", want, html)
		}
	}
}

func TestReportHTML_EmptySections(t *testing.T) {
	report := &marketbot.Report{Time: time.Now()}
	html := ReportHTML(report)
	if strings.Contains(html, "환율") || strings.Contains(html, "보유 종목") {
		t.Errorf("empty report carries dropped sections:\n%s", html)
	}
}

func TestSymbolHTML(t *testing.T) {
	html := SymbolHTML("애플", "USD", testReturns(t, "AAPL"))
	for _, want := range []string{"애플", "일:", "주:", "월:", "YTD:", "년:"} {
		if !strings.Contains(html, want) {
			t.Errorf("SymbolHTML misses %q:\n%s", want, html)
		}
	}
	if !strings.Contains(html, "🔵") {
		t.Errorf("rising symbol should carry the up emoji:\n%s", html)
	}
}

func TestValuationHTML_Skipped(t *testing.T) {
	v := marketbot.Valuate(
		[]marketbot.Holding{{Symbol: "GONE", CostBasis: 10, Quantity: 1}},
		func(string) (float64, error) { return 0, marketbot.ErrNoData },
		1300)

	html := ValuationHTML(v)
	if !strings.Contains(html, "GONE") || !strings.Contains(html, "조회 실패") {
		t.Errorf("ValuationHTML misses the skipped symbol:\n%s", html)
	}
}

func TestReturnsMarkdown(t *testing.T) {
	doc := ReturnsMarkdown("AAPL", "USD", testReturns(t, "AAPL"))
	for _, want := range []string{"AAPL", "1D", "1W", "1M", "YTD", "1Y", "기간"} {
		if !strings.Contains(doc, want) {
			t.Errorf("ReturnsMarkdown misses %q:\n%s", want, doc)
		}
	}
}

func TestValuationMarkdown(t *testing.T) {
	v := marketbot.Valuate(
		[]marketbot.Holding{{Symbol: "005930.KS", CostBasis: 70000, Quantity: 3}},
		func(string) (float64, error) { return 71000, nil },
		1390)

	doc := ValuationMarkdown(v)
	for _, want := range []string{"005930.KS", "총 평가액", "총 수익률"} {
		if !strings.Contains(doc, want) {
			t.Errorf("ValuationMarkdown misses %q:\n%s", want, doc)
		}
	}
}
