package marketbot

import (
	"github.com/hyoukjoo/marketbot/date"
)

// PriceSeries holds the daily closing prices for one symbol, in
// chronological order with unique dates. The last point is the "current"
// price. A series is ephemeral: it is fetched from the quote provider for
// each request and never persisted.
type PriceSeries struct {
	Symbol string
	prices date.History[float64]
}

// NewPriceSeries returns an empty series for the given symbol.
func NewPriceSeries(symbol string) *PriceSeries {
	return &PriceSeries{Symbol: symbol}
}

// Append records the closing price for a day. An existing price on that day
// is overwritten, last data wins.
func (s *PriceSeries) Append(on Date, close float64) *PriceSeries {
	s.prices.Append(on, close)
	return s
}

// Len returns the number of daily points in the series.
func (s *PriceSeries) Len() int { return s.prices.Len() }

// IsEmpty reports whether the series holds no point at all.
func (s *PriceSeries) IsEmpty() bool { return s.prices.Len() == 0 }

// Current returns the most recent close and its date.
func (s *PriceSeries) Current() (Date, float64) { return s.prices.Latest() }

// Oldest returns the earliest close and its date.
func (s *PriceSeries) Oldest() (Date, float64) { return s.prices.Oldest() }

// At returns the i-th point, counting back from the latest when i is
// negative: At(-1) is the current price, At(-2) the previous session.
// Out-of-range indexes clamp to the nearest end of the series.
func (s *PriceSeries) At(i int) (Date, float64) { return s.prices.At(i) }

// Since returns the first close on or after the given day.
func (s *PriceSeries) Since(day Date) (Date, float64, bool) { return s.prices.Since(day) }
