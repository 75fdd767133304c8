package testutil

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/wonny/stockscope/internal/contracts"
)

// ErrProviderDown is returned by MockProvider for symbols marked as failing
var ErrProviderDown = errors.New("provider unavailable")

// MockProvider is an in-memory MarketDataProvider for tests
type MockProvider struct {
	mu            sync.RWMutex
	snapshots     map[string]*contracts.MarketSnapshot
	series        map[string]contracts.PriceSeries
	snapshotFails map[string]bool
	historyFails  map[string]bool
	calls         map[string]int
}

// NewMockProvider creates an empty mock provider
func NewMockProvider() *MockProvider {
	return &MockProvider{
		snapshots:     make(map[string]*contracts.MarketSnapshot),
		series:        make(map[string]contracts.PriceSeries),
		snapshotFails: make(map[string]bool),
		historyFails:  make(map[string]bool),
		calls:         make(map[string]int),
	}
}

// Set registers a snapshot and its history
func (m *MockProvider) Set(snap *contracts.MarketSnapshot, series contracts.PriceSeries) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[snap.Symbol] = snap
	m.series[snap.Symbol] = series
	return m
}

// FailSnapshot makes Snapshot return ErrProviderDown for symbol
func (m *MockProvider) FailSnapshot(symbol string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotFails[symbol] = true
	return m
}

// FailHistory makes History return ErrProviderDown for symbol
func (m *MockProvider) FailHistory(symbol string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.historyFails[symbol] = true
	return m
}

// Calls returns how many provider calls were made for symbol
func (m *MockProvider) Calls(symbol string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[symbol]
}

// Snapshot returns the registered snapshot, or an identity-less one for unknown symbols
func (m *MockProvider) Snapshot(ctx context.Context, symbol string) (*contracts.MarketSnapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[symbol]++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.snapshotFails[symbol] {
		return nil, ErrProviderDown
	}
	snap, ok := m.snapshots[symbol]
	if !ok {
		return &contracts.MarketSnapshot{}, nil
	}
	return snap, nil
}

// History returns the registered series regardless of lookback
func (m *MockProvider) History(ctx context.Context, symbol string, lookback contracts.Lookback) (contracts.PriceSeries, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[symbol]++

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.historyFails[symbol] {
		return nil, ErrProviderDown
	}
	return m.series[symbol], nil
}

// MockSearcher is a canned SymbolSearcher
type MockSearcher struct {
	Results []contracts.SearchResult
	Err     error
}

// Search returns the canned results filtered by a case-insensitive substring match
func (m *MockSearcher) Search(ctx context.Context, query string) ([]contracts.SearchResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var out []contracts.SearchResult
	for _, r := range m.Results {
		if strings.Contains(strings.ToLower(r.Symbol), q) || strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out, nil
}
