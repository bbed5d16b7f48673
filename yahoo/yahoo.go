// Package yahoo implements the price history provider over the Yahoo
// Finance chart API.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hyoukjoo/marketbot"
	"github.com/hyoukjoo/marketbot/date"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches daily closing prices from the chart API. Historical
// responses are cached on disk with a daily expiry so a report run does not
// hammer the endpoint; the intraday quote always goes straight out.
type Client struct {
	// BaseURL overrides the API host, for tests.
	BaseURL string

	daily *http.Client
	live  *http.Client
}

var _ marketbot.Quoter = (*Client)(nil)

// New returns a ready to use client.
func New() *Client {
	return &Client{
		daily: newDailyCachingClient(),
		live:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

// chartRange maps a lookback in calendar days to the coarsest API range
// covering it.
func chartRange(lookbackDays int) string {
	switch {
	case lookbackDays <= 5:
		return "5d"
	case lookbackDays <= 30:
		return "1mo"
	case lookbackDays <= 182:
		return "6mo"
	default:
		return "1y"
	}
}

// History returns the daily closing prices of a symbol covering at least
// lookbackDays, as far as the provider has them. An empty payload is
// reported as marketbot.ErrNoData so callers can skip the symbol.
func (c *Client) History(symbol string, lookbackDays int) (*marketbot.PriceSeries, error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/AAPL?range=1y&interval=1d
	// {
	//   "chart": {
	//     "result": [{
	//       "meta": { "currency": "USD", "symbol": "AAPL", "regularMarketPrice": 232.56 },
	//       "timestamp": [ 1692970200, ... ],
	//       "indicators": { "quote": [ { "close": [ 181.12, null, ... ] } ] }
	//     }],
	//     "error": null
	//   }
	// }

	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=%s&interval=1d",
		c.base(), url.PathEscape(symbol), chartRange(lookbackDays))

	type quote struct {
		Close []*float64 `json:"close"` // null on halted sessions
	}
	type result struct {
		Timestamp  []int64 `json:"timestamp"`
		Indicators struct {
			Quote []quote `json:"quote"`
		} `json:"indicators"`
	}
	type payload struct {
		Chart struct {
			Result []result `json:"result"`
			Error  *struct {
				Code        string `json:"code"`
				Description string `json:"description"`
			} `json:"error"`
		} `json:"chart"`
	}

	var content payload
	if err := jwget(c.daily, addr, &content); err != nil {
		return nil, fmt.Errorf("cannot fetch history for %q: %w", symbol, err)
	}
	if e := content.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart API error for %q: %s %s", symbol, e.Code, e.Description)
	}
	if len(content.Chart.Result) == 0 {
		return nil, fmt.Errorf("%q: %w", symbol, marketbot.ErrNoData)
	}

	r := content.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%q: %w", symbol, marketbot.ErrNoData)
	}
	closes := r.Indicators.Quote[0].Close

	series := marketbot.NewPriceSeries(symbol)
	for i, ts := range r.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		on := date.FromTime(time.Unix(ts, 0).UTC())
		series.Append(on, *closes[i])
	}
	if series.IsEmpty() {
		return nil, fmt.Errorf("%q: %w", symbol, marketbot.ErrNoData)
	}
	return series, nil
}
