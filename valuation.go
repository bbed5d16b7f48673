package marketbot

import (
	"log"
	"strings"
)

// ReportingCurrency is the currency every holding is converted into for
// aggregation.
const ReportingCurrency = "KRW"

// domesticSuffixes mark tickers that are already denominated in the
// reporting currency and must not be multiplied by the exchange rate.
// Everything else (US equities, futures like GC=F, crypto pairs like
// BTC-USD, other regional suffixes) is treated as USD-denominated.
var domesticSuffixes = []string{".KS", ".KQ"}

// IsDomestic reports whether the ticker trades on a local-currency market.
func IsDomestic(symbol string) bool {
	for _, suffix := range domesticSuffixes {
		if strings.HasSuffix(symbol, suffix) {
			return true
		}
	}
	return false
}

// PriceLookup resolves the current price of one symbol. It is the only
// collaborator the valuator calls out to.
type PriceLookup func(symbol string) (float64, error)

// HoldingValuation is the valuation of a single position, with cost and
// value already converted to the reporting currency.
type HoldingValuation struct {
	Holding
	CurrentPrice float64
	Return       Percent // (current - cost basis) / cost basis
	Cost         Money
	Value        Money
	Profit       Money
}

// Valuation aggregates the valuations of every holding whose price lookup
// succeeded. Symbols that failed to resolve are listed in Skipped and do not
// contribute to the totals.
type Valuation struct {
	Holdings []HoldingValuation
	Skipped  []string

	TotalCost   Money
	TotalValue  Money
	TotalProfit Money
	Return      Percent
}

// Valuate computes the portfolio valuation for the given holdings.
//
// usdKRW is the reporting-currency price of one US dollar. It is applied to
// both cost and value of every foreign-denominated holding; domestic tickers
// (suffix .KS or .KQ) are taken as already in the reporting currency.
//
// A failing price lookup skips the holding instead of aborting the batch,
// and a zero cost basis yields a 0% per-holding return instead of a crash on
// malformed data. The total return is 0% when the total cost is zero.
func Valuate(holdings []Holding, lookup PriceLookup, usdKRW float64) *Valuation {
	v := &Valuation{
		TotalCost:   M(0, ReportingCurrency),
		TotalValue:  M(0, ReportingCurrency),
		TotalProfit: M(0, ReportingCurrency),
	}

	for _, h := range holdings {
		price, err := lookup(h.Symbol)
		if err != nil {
			log.Printf("skipping %s from valuation: %v", h.Symbol, err)
			v.Skipped = append(v.Skipped, h.Symbol)
			continue
		}

		rate := usdKRW
		if IsDomestic(h.Symbol) {
			rate = 1
		}

		qty := Q(h.Quantity)
		cost := M(h.CostBasis*rate, ReportingCurrency).Mul(qty)
		value := M(price*rate, ReportingCurrency).Mul(qty)

		hv := HoldingValuation{
			Holding:      h,
			CurrentPrice: price,
			Return:       change(price, h.CostBasis),
			Cost:         cost,
			Value:        value,
			Profit:       value.Sub(cost),
		}
		v.Holdings = append(v.Holdings, hv)

		v.TotalCost = v.TotalCost.Add(cost)
		v.TotalValue = v.TotalValue.Add(value)
	}

	v.TotalProfit = v.TotalValue.Sub(v.TotalCost)
	v.Return = change(v.TotalValue.AsFloat(), v.TotalCost.AsFloat())
	return v
}
