package marketbot

import (
	"errors"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileHoldingStore {
	t.Helper()
	return NewFileHoldingStore(filepath.Join(t.TempDir(), "holdings.json"))
}

func TestHoldingStore_EmptyByDefault(t *testing.T) {
	s := newTestStore(t)
	holdings, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(holdings) != 0 {
		t.Errorf("List on fresh store = %v want empty", holdings)
	}
}

func TestHoldingStore_UpsertOverwrites(t *testing.T) {
	s := newTestStore(t)
	if err := s.Upsert(Holding{Symbol: "AAPL", CostBasis: 100, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Upsert(Holding{Symbol: "AAPL", CostBasis: 150, Quantity: 2}); err != nil {
		t.Fatal(err)
	}

	holdings, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(holdings) != 1 {
		t.Fatalf("List = %v want exactly one record", holdings)
	}
	got := holdings[0]
	if got.CostBasis != 150 || got.Quantity != 2 {
		t.Errorf("record = %+v want cost=150 qty=2 (last write wins)", got)
	}
}

func TestHoldingStore_ListSorted(t *testing.T) {
	s := newTestStore(t)
	for _, sym := range []string{"TSLA", "AAPL", "MSFT"} {
		if err := s.Upsert(Holding{Symbol: sym, CostBasis: 1, Quantity: 1}); err != nil {
			t.Fatal(err)
		}
	}
	holdings, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"AAPL", "MSFT", "TSLA"}
	for i, sym := range want {
		if holdings[i].Symbol != sym {
			t.Fatalf("List order = %v want %v", holdings, want)
		}
	}
}

func TestHoldingStore_RemoveUnknown(t *testing.T) {
	s := newTestStore(t)
	err := s.Remove("GONE")
	if !errors.Is(err, ErrUnknownHolding) {
		t.Errorf("Remove unknown = %v want ErrUnknownHolding", err)
	}
}

func TestHoldingStore_Remove(t *testing.T) {
	s := newTestStore(t)
	if err := s.Upsert(Holding{Symbol: "AAPL", CostBasis: 100, Quantity: 1}); err != nil {
		t.Fatal(err)
	}
	if err := s.Remove("AAPL"); err != nil {
		t.Fatal(err)
	}
	holdings, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(holdings) != 0 {
		t.Errorf("List after Remove = %v want empty", holdings)
	}
}

func TestHoldingStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdings.json")
	first := NewFileHoldingStore(path)
	if err := first.Upsert(Holding{Symbol: "005930.KS", CostBasis: 70000, Quantity: 3}); err != nil {
		t.Fatal(err)
	}

	second := NewFileHoldingStore(path)
	holdings, err := second.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(holdings) != 1 || holdings[0] != (Holding{Symbol: "005930.KS", CostBasis: 70000, Quantity: 3}) {
		t.Errorf("reloaded holdings = %v", holdings)
	}
}

func TestHoldingStore_RejectsEmptySymbol(t *testing.T) {
	s := newTestStore(t)
	if err := s.Upsert(Holding{CostBasis: 1, Quantity: 1}); err == nil {
		t.Error("Upsert with empty symbol succeeded, want error")
	}
}
