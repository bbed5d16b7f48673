package marketbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// WatchSymbol is one entry of a watchlist: a provider ticker and the
// display name the bot prints for it.
type WatchSymbol struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Watchlist is a named group of symbols reported together, one group per
// market.
type Watchlist struct {
	Title   string        `json:"title"`
	Symbols []WatchSymbol `json:"symbols"`
}

// DefaultWatchlists returns the built-in groups the bot reports on when no
// watchlist file exists.
func DefaultWatchlists() []Watchlist {
	return []Watchlist{
		{
			Title: "🇰🇷 한국 관심 종목",
			Symbols: []WatchSymbol{
				{Symbol: "005930.KS", Name: "삼성전자"},
				{Symbol: "000660.KS", Name: "SK하이닉스"},
				{Symbol: "035420.KS", Name: "NAVER"},
			},
		},
		{
			Title: "🇺🇸 미국 관심 종목",
			Symbols: []WatchSymbol{
				{Symbol: "AAPL", Name: "애플"},
				{Symbol: "MSFT", Name: "마이크로소프트"},
				{Symbol: "NVDA", Name: "엔비디아"},
				{Symbol: "TSLA", Name: "테슬라"},
			},
		},
		{
			Title: "🇭🇰 홍콩 관심 종목",
			Symbols: []WatchSymbol{
				{Symbol: "9988.HK", Name: "알리바바"},
				{Symbol: "0700.HK", Name: "텐센트"},
				{Symbol: "1810.HK", Name: "샤오미"},
			},
		},
	}
}

// LoadWatchlists reads watchlists from a JSON file, falling back to the
// defaults when the file does not exist.
func LoadWatchlists(path string) ([]Watchlist, error) {
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultWatchlists(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read watchlist file %q: %w", path, err)
	}
	var lists []Watchlist
	if err := json.Unmarshal(content, &lists); err != nil {
		return nil, fmt.Errorf("invalid watchlist file %q: %w", path, err)
	}
	return lists, nil
}

// SymbolCurrency returns the currency a ticker quotes in, derived from its
// market suffix.
func SymbolCurrency(symbol string) string {
	switch {
	case IsDomestic(symbol):
		return "KRW"
	case strings.HasSuffix(symbol, ".HK"):
		return "HKD"
	default:
		return "USD"
	}
}
