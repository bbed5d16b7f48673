package marketbot

import (
	"log"
	"time"
)

// marketIndices are the indices reported at the top of the daily report.
var marketIndices = []WatchSymbol{
	{Symbol: "^KS11", Name: "코스피"},
	{Symbol: "^GSPC", Name: "S&P 500"},
	{Symbol: "^HSI", Name: "항셍지수"},
}

// IndexQuote is the state of one market index: current level and change
// since the previous session.
type IndexQuote struct {
	Symbol string
	Name   string
	Price  float64
	Change float64
	Rate   Percent
}

// SymbolReport is the multi-period return summary of one watched symbol.
type SymbolReport struct {
	Symbol   string
	Name     string
	Currency string
	Returns  *ReturnSet
}

// GroupReport is one watchlist with the returns of every symbol that
// resolved.
type GroupReport struct {
	Title   string
	Symbols []SymbolReport
}

// Report is the full daily report: indices, exchange rates, watchlist
// returns and the portfolio valuation. Sections whose collaborator failed
// are nil or empty; a partially failing batch still produces a report for
// the resolvable subset.
type Report struct {
	Time      time.Time
	Indices   []IndexQuote
	Rates     *Rates
	Groups    []GroupReport
	Valuation *Valuation
}

// Reporter assembles reports from the injected collaborators.
type Reporter struct {
	Quoter     Quoter
	RateSource RateSource
	Store      HoldingStore
	Watchlists []Watchlist
}

// Daily builds the full report evaluated at now. Per-symbol failures are
// logged and skipped, never fatal: the report covers whatever resolved.
func (r *Reporter) Daily(now time.Time) *Report {
	report := &Report{Time: now}

	report.Indices = r.indices()

	if r.RateSource != nil {
		rates, err := r.RateSource.Rates()
		if err != nil {
			log.Printf("skipping exchange rates: %v", err)
		} else {
			report.Rates = &rates
		}
	}

	report.Groups = r.groups(now)

	if r.Store != nil && report.Rates != nil {
		valuation, err := r.Valuation(report.Rates.USDKRW)
		if err != nil {
			log.Printf("skipping portfolio valuation: %v", err)
		} else if len(valuation.Holdings) > 0 || len(valuation.Skipped) > 0 {
			report.Valuation = valuation
		}
	}

	return report
}

// indices quotes every market index with its previous-close change.
func (r *Reporter) indices() []IndexQuote {
	quotes := make([]IndexQuote, 0, len(marketIndices))
	for _, idx := range marketIndices {
		series, err := r.Quoter.History(idx.Symbol, IndexLookbackDays)
		if err != nil || series.IsEmpty() {
			log.Printf("skipping index %s: %v", idx.Symbol, err)
			continue
		}
		_, current := series.Current()
		prev := current
		if series.Len() >= 2 {
			_, prev = series.At(-2)
		}
		quotes = append(quotes, IndexQuote{
			Symbol: idx.Symbol,
			Name:   idx.Name,
			Price:  current,
			Change: current - prev,
			Rate:   change(current, prev),
		})
	}
	return quotes
}

// groups computes the multi-period returns for every watchlist symbol.
func (r *Reporter) groups(now time.Time) []GroupReport {
	groups := make([]GroupReport, 0, len(r.Watchlists))
	for _, list := range r.Watchlists {
		group := GroupReport{Title: list.Title}
		for _, ws := range list.Symbols {
			set, err := r.SymbolReturns(ws.Symbol, now)
			if err != nil {
				log.Printf("skipping %s: %v", ws.Symbol, err)
				continue
			}
			group.Symbols = append(group.Symbols, SymbolReport{
				Symbol:   ws.Symbol,
				Name:     ws.Name,
				Currency: SymbolCurrency(ws.Symbol),
				Returns:  set,
			})
		}
		groups = append(groups, group)
	}
	return groups
}

// SymbolReturns fetches one year of history for a symbol and computes its
// ReturnSet.
func (r *Reporter) SymbolReturns(symbol string, now time.Time) (*ReturnSet, error) {
	series, err := r.Quoter.History(symbol, ReturnsLookbackDays)
	if err != nil {
		return nil, err
	}
	return series.Returns(now)
}

// Valuation loads the holdings and valuates them against current prices.
func (r *Reporter) Valuation(usdKRW float64) (*Valuation, error) {
	holdings, err := r.Store.List()
	if err != nil {
		return nil, err
	}
	lookup := func(symbol string) (float64, error) {
		series, err := r.Quoter.History(symbol, IndexLookbackDays)
		if err != nil {
			return 0, err
		}
		if series.IsEmpty() {
			return 0, ErrNoData
		}
		_, current := series.Current()
		return current, nil
	}
	return Valuate(holdings, lookup, usdKRW), nil
}
