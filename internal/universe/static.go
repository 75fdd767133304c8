package universe

import (
	"context"

	"github.com/wonny/stockscope/internal/contracts"
)

// popularTickers is the built-in list of widely followed US large caps, by sector
var popularTickers = []string{
	// Tech Giants
	"AAPL", "MSFT", "GOOGL", "AMZN", "META", "NVDA", "TSLA", "NFLX",
	// Finance
	"JPM", "BAC", "WFC", "GS", "MS", "V", "MA",
	// Consumer
	"WMT", "HD", "MCD", "SBUX", "NKE", "DIS",
	// Healthcare
	"JNJ", "PFE", "UNH", "ABBV", "MRK", "TMO",
	// Industrial
	"BA", "CAT", "GE", "HON", "MMM",
	// Energy
	"XOM", "CVX", "COP", "SLB",
	// Communication
	"VZ", "T", "CMCSA",
	// Retail
	"TGT", "COST", "LOW",
	// Semiconductors
	"AMD", "INTC", "AVGO", "QCOM",
	// Software
	"ORCL", "CRM", "ADBE", "NOW",
	// E-commerce
	"EBAY", "SHOP",
	// Media
	"DIS", "FOX", "PARA",
	// Other popular
	"PYPL", "SQ", "UBER", "LYFT", "ZM",
}

// Static is a fixed ticker list
type Static struct {
	name    string
	tickers []string
}

// NewStatic creates a static universe; duplicates are dropped, order kept
func NewStatic(name string, tickers []string) *Static {
	return &Static{
		name:    name,
		tickers: dedupe(tickers),
	}
}

// Popular returns the built-in popular list
func Popular() *Static {
	return NewStatic("popular", popularTickers)
}

// Name returns the universe name
func (s *Static) Name() string {
	return s.name
}

// Tickers returns a copy of the list
func (s *Static) Tickers(ctx context.Context) ([]string, error) {
	out := make([]string, len(s.tickers))
	copy(out, s.tickers)
	return out, nil
}

// dedupe normalizes symbols and drops blanks and repeats, keeping first occurrence
func dedupe(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))
	for _, t := range tickers {
		symbol := contracts.NormalizeTicker(t)
		if symbol == "" {
			continue
		}
		if _, ok := seen[symbol]; ok {
			continue
		}
		seen[symbol] = struct{}{}
		out = append(out, symbol)
	}
	return out
}
