package contracts

import "context"

// MarketDataProvider supplies snapshots and price history.
// It is the only blocking, failing boundary of the engine.
type MarketDataProvider interface {
	// Snapshot returns the point-in-time data of a symbol.
	// An unknown symbol yields a snapshot that is not Valid (or an error).
	Snapshot(ctx context.Context, symbol string) (*MarketSnapshot, error)

	// History returns daily bars for the lookback window in chronological order
	History(ctx context.Context, symbol string, lookback Lookback) (PriceSeries, error)
}

// SymbolSearcher looks up securities by free text
type SymbolSearcher interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

// UniverseSource lists the tickers the daily picker ranks
type UniverseSource interface {
	Name() string
	Tickers(ctx context.Context) ([]string, error)
}
