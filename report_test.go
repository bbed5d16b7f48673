package marketbot

import (
	"fmt"
	"testing"
	"time"

	"github.com/hyoukjoo/marketbot/date"
)

// fakeQuoter serves canned price series and fails for anything else.
type fakeQuoter struct {
	series map[string]*PriceSeries
}

func (q *fakeQuoter) History(symbol string, lookbackDays int) (*PriceSeries, error) {
	s, ok := q.series[symbol]
	if !ok {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoData)
	}
	return s, nil
}

type fakeRates struct {
	rates Rates
	err   error
}

func (r *fakeRates) Rates() (Rates, error) { return r.rates, r.err }

// flatSeries builds n sessions ending the day before now, rising one unit
// per day up to last.
func flatSeries(symbol string, n int, last float64, now time.Time) *PriceSeries {
	s := NewPriceSeries(symbol)
	end := date.FromTime(now).Add(-1)
	for i := 0; i < n; i++ {
		s.Append(end.Add(i-n+1), last-float64(n-1-i))
	}
	return s
}

func testReporter(t *testing.T, q Quoter, r RateSource) *Reporter {
	t.Helper()
	store := newTestStore(t)
	if err := store.Upsert(Holding{Symbol: "AAPL", CostBasis: 100, Quantity: 2}); err != nil {
		t.Fatal(err)
	}
	return &Reporter{
		Quoter:     q,
		RateSource: r,
		Store:      store,
		Watchlists: []Watchlist{{Title: "⭐ 관심 종목", Symbols: []WatchSymbol{
			{Symbol: "AAPL", Name: "애플"},
			{Symbol: "GONE", Name: "상장폐지"},
		}}},
	}
}

func TestReporterDaily(t *testing.T) {
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	q := &fakeQuoter{series: map[string]*PriceSeries{
		"^KS11": flatSeries("^KS11", 5, 2700, now),
		"AAPL":  flatSeries("AAPL", 30, 150, now),
	}}
	rates := &fakeRates{rates: Rates{USDKRW: 1300, JPY100KRW: 900, HKDKRW: 166}}

	report := testReporter(t, q, rates).Daily(now)

	// only the index with data survives
	if len(report.Indices) != 1 || report.Indices[0].Symbol != "^KS11" {
		t.Fatalf("Indices = %v want ^KS11 only", report.Indices)
	}
	idx := report.Indices[0]
	if idx.Price != 2700 || idx.Change != 1 {
		t.Errorf("index quote = %+v want price 2700 change 1", idx)
	}

	if report.Rates == nil || report.Rates.USDKRW != 1300 {
		t.Fatalf("Rates = %+v want USDKRW 1300", report.Rates)
	}

	if len(report.Groups) != 1 {
		t.Fatalf("Groups = %v want one group", report.Groups)
	}
	group := report.Groups[0]
	if len(group.Symbols) != 1 || group.Symbols[0].Symbol != "AAPL" {
		t.Fatalf("group symbols = %v want AAPL only, GONE skipped", group.Symbols)
	}
	if group.Symbols[0].Returns.Current != 150 {
		t.Errorf("AAPL current = %v want 150", group.Symbols[0].Returns.Current)
	}

	if report.Valuation == nil {
		t.Fatal("Valuation missing")
	}
	if !report.Valuation.TotalValue.Equal(M(390000, "KRW")) {
		t.Errorf("TotalValue = %v want 390000 KRW", report.Valuation.TotalValue)
	}
}

func TestReporterDaily_NoRates(t *testing.T) {
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	q := &fakeQuoter{series: map[string]*PriceSeries{
		"AAPL": flatSeries("AAPL", 30, 150, now),
	}}
	rates := &fakeRates{err: fmt.Errorf("api down")}

	report := testReporter(t, q, rates).Daily(now)

	// rates and valuation are dropped, the rest of the report stands
	if report.Rates != nil {
		t.Errorf("Rates = %+v want nil", report.Rates)
	}
	if report.Valuation != nil {
		t.Errorf("Valuation = %+v want nil without an exchange rate", report.Valuation)
	}
	if len(report.Groups) != 1 || len(report.Groups[0].Symbols) != 1 {
		t.Errorf("Groups = %v want the watchlist section intact", report.Groups)
	}
}

func TestReporterSymbolReturns_Unknown(t *testing.T) {
	r := &Reporter{Quoter: &fakeQuoter{}}
	if _, err := r.SymbolReturns("GONE", time.Now()); err == nil {
		t.Error("SymbolReturns for unknown symbol succeeded, want error")
	}
}

func TestReporterValuation_SkipsUnquotable(t *testing.T) {
	now := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	store := newTestStore(t)
	for _, h := range []Holding{
		{Symbol: "AAPL", CostBasis: 100, Quantity: 1},
		{Symbol: "GONE", CostBasis: 10, Quantity: 1},
	} {
		if err := store.Upsert(h); err != nil {
			t.Fatal(err)
		}
	}
	r := &Reporter{
		Quoter: &fakeQuoter{series: map[string]*PriceSeries{
			"AAPL": flatSeries("AAPL", 5, 150, now),
		}},
		Store: store,
	}

	v, err := r.Valuation(1000)
	if err != nil {
		t.Fatal(err)
	}
	if len(v.Skipped) != 1 || v.Skipped[0] != "GONE" {
		t.Errorf("Skipped = %v want [GONE]", v.Skipped)
	}
	if !v.TotalValue.Equal(M(150000, "KRW")) {
		t.Errorf("TotalValue = %v want 150000 KRW", v.TotalValue)
	}
}
