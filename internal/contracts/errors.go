package contracts

import "errors"

// Sentinel errors shared by the analysis pipeline and its callers.
// Callers branch with errors.Is.
var (
	// ErrInvalidTicker means the provider could not resolve the symbol to a known security
	ErrInvalidTicker = errors.New("invalid ticker symbol")

	// ErrNoHistory means the provider returned no price history for the symbol
	ErrNoHistory = errors.New("no historical data available")

	// ErrNoTickers means a batch request carried no usable symbols
	ErrNoTickers = errors.New("no tickers provided")

	// ErrTooManyTickers means a batch request exceeded the per-call cap
	ErrTooManyTickers = errors.New("too many tickers")
)
