package marketbot

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadWatchlists_Defaults(t *testing.T) {
	lists, err := LoadWatchlists(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lists) == 0 {
		t.Fatal("missing file should fall back to the built-in groups")
	}
	if lists[0].Symbols[0].Symbol != "005930.KS" {
		t.Errorf("first default symbol = %v", lists[0].Symbols[0])
	}
}

func TestLoadWatchlists_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlists.json")
	content := `[{"title": "테스트", "symbols": [{"symbol": "AAPL", "name": "애플"}]}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	lists, err := LoadWatchlists(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(lists) != 1 || lists[0].Title != "테스트" || lists[0].Symbols[0].Symbol != "AAPL" {
		t.Errorf("LoadWatchlists = %v", lists)
	}
}

func TestLoadWatchlists_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlists.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWatchlists(path); err == nil {
		t.Error("invalid file should fail loudly, not fall back")
	}
}

func TestSymbolCurrency(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"005930.KS", "KRW"},
		{"068270.KQ", "KRW"},
		{"9988.HK", "HKD"},
		{"AAPL", "USD"},
		{"BTC-USD", "USD"},
	}
	for _, tc := range tests {
		if got := SymbolCurrency(tc.symbol); got != tc.want {
			t.Errorf("SymbolCurrency(%s) = %q want %q", tc.symbol, got, tc.want)
		}
	}
}
