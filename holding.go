package marketbot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// Holding is one user-registered position: a symbol with its cost basis per
// unit and the quantity held. The engine only reads holdings; registration
// and deletion go through a HoldingStore.
type Holding struct {
	Symbol    string  `json:"symbol"`
	CostBasis float64 `json:"cost"`
	Quantity  float64 `json:"qty"`
}

// ErrUnknownHolding is returned when removing a symbol that was never
// registered.
var ErrUnknownHolding = errors.New("holding not registered")

// HoldingStore is the durable symbol -> (cost basis, quantity) store.
// Upsert always overwrites an existing record for the symbol: last write
// wins, repeat buys are not averaged.
type HoldingStore interface {
	List() ([]Holding, error)
	Upsert(h Holding) error
	Remove(symbol string) error
}

// FileHoldingStore persists holdings as a flat JSON object of
// symbol -> {cost, qty} in a single file. Writes are serialized with a
// mutex since chat commands may arrive concurrently; every read loads the
// file afresh so that the store, not the process, owns the state.
type FileHoldingStore struct {
	path string
	mu   sync.Mutex
}

var _ HoldingStore = (*FileHoldingStore)(nil)

// NewFileHoldingStore returns a store backed by the given file. The file is
// created on the first Upsert.
func NewFileHoldingStore(path string) *FileHoldingStore {
	return &FileHoldingStore{path: path}
}

type holdingRecord struct {
	CostBasis float64 `json:"cost"`
	Quantity  float64 `json:"qty"`
}

// load reads the whole file. A missing file is an empty store.
func (s *FileHoldingStore) load() (map[string]holdingRecord, error) {
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]holdingRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read holdings file %q: %w", s.path, err)
	}
	records := make(map[string]holdingRecord)
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("invalid holdings file %q: %w", s.path, err)
	}
	return records, nil
}

func (s *FileHoldingStore) save(records map[string]holdingRecord) error {
	content, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(s.path, content, 0o644); err != nil {
		return fmt.Errorf("cannot write holdings file %q: %w", s.path, err)
	}
	return nil
}

// List returns all holdings sorted by symbol.
func (s *FileHoldingStore) List() ([]Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	holdings := make([]Holding, 0, len(records))
	for symbol, r := range records {
		holdings = append(holdings, Holding{Symbol: symbol, CostBasis: r.CostBasis, Quantity: r.Quantity})
	}
	sort.Slice(holdings, func(i, j int) bool { return holdings[i].Symbol < holdings[j].Symbol })
	return holdings, nil
}

// Upsert registers a holding, overwriting any existing record for that
// symbol.
func (s *FileHoldingStore) Upsert(h Holding) error {
	if h.Symbol == "" {
		return errors.New("holding symbol is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	records[h.Symbol] = holdingRecord{CostBasis: h.CostBasis, Quantity: h.Quantity}
	return s.save(records)
}

// Remove deletes the record for a symbol. Removing an unregistered symbol
// returns ErrUnknownHolding.
func (s *FileHoldingStore) Remove(symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := records[symbol]; !ok {
		return fmt.Errorf("%q: %w", symbol, ErrUnknownHolding)
	}
	delete(records, symbol)
	return s.save(records)
}
