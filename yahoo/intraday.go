package yahoo

import (
	"fmt"
	"math"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// Intraday returns the latest traded price of a symbol, without the daily
// cache. The value lives deep in the chart metadata, so it is extracted
// with a jsonpath instead of mapping the whole payload.
func (c *Client) Intraday(symbol string) (float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=1d&interval=1d",
		c.base(), url.PathEscape(symbol))

	var jobj any
	if err := jwget(c.live, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := "$.chart.result[0].meta.regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", symbol, path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %s %v", symbol, path, "not a float", jval)
	}
	return val, nil
}
