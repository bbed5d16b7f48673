package marketbot

// Quoter provides daily closing-price histories. Implementations must
// return series covering at least lookbackDays calendar days when the
// provider has that much history, at daily resolution; a one-year lookback
// is required for correct YTD returns near the start of a year.
//
// A provider with no data at all for the symbol returns an error wrapping
// ErrNoData.
type Quoter interface {
	History(symbol string, lookbackDays int) (*PriceSeries, error)
}

// Rates holds the exchange rates the bot reports, all expressed in the
// reporting currency.
type Rates struct {
	USDKRW    float64 // won per US dollar
	JPY100KRW float64 // won per 100 yen
	HKDKRW    float64 // won per Hong Kong dollar
}

// RateSource provides the current exchange rates.
type RateSource interface {
	Rates() (Rates, error)
}

// Lookback windows, in calendar days, used when fetching histories.
const (
	ReturnsLookbackDays = 365 // a full year, needed for YTD and 1Y
	IndexLookbackDays   = 7   // enough for a previous-close change
)
