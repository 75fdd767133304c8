package screener

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/scoring"
	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/indicators"
	"github.com/wonny/stockscope/pkg/logger"
)

// DefaultTopN is used when the caller asks for zero or fewer results
const DefaultTopN = 10

// Candidate is an evaluated ticker with the snapshot it was scored from
type Candidate struct {
	Result   contracts.ScreenResult
	Snapshot *contracts.MarketSnapshot
}

// Screener ranks a batch of tickers on the coarse three-factor scale
// ⭐ SSOT: 다종목 스크리닝은 여기서만
type Screener struct {
	provider   contracts.MarketDataProvider
	logger     *logger.Logger
	policy     scoring.ScreenerPolicy
	workers    int
	maxTickers int
	now        func() time.Time
}

// New creates a new screener
func New(provider contracts.MarketDataProvider, cfg config.ScreenerConfig, log *logger.Logger) *Screener {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Screener{
		provider:   provider,
		logger:     log,
		policy:     scoring.DefaultScreenerPolicy,
		workers:    workers,
		maxTickers: cfg.MaxTickers,
		now:        time.Now,
	}
}

// Policy returns the threshold table in use
func (s *Screener) Policy() scoring.ScreenerPolicy {
	return s.policy
}

// Screen ranks up to MaxTickers input symbols and returns the top N.
// Tickers that cannot be resolved are dropped; an empty ranking is a valid result.
func (s *Screener) Screen(ctx context.Context, tickers []string, topN int) (*contracts.ScreenReport, error) {
	// the cap counts raw inputs, duplicates included
	if s.maxTickers > 0 && len(tickers) > s.maxTickers {
		return nil, fmt.Errorf("%w: %d requested, maximum %d allowed per request",
			contracts.ErrTooManyTickers, len(tickers), s.maxTickers)
	}
	symbols := NormalizeTickers(tickers)
	if len(symbols) == 0 {
		return nil, contracts.ErrNoTickers
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	ranked, err := s.Rank(ctx, symbols)
	if err != nil {
		return nil, err
	}

	results := make([]contracts.ScreenResult, 0, topN)
	for i := 0; i < len(ranked) && i < topN; i++ {
		results = append(results, ranked[i].Result)
	}

	return &contracts.ScreenReport{
		Date:          s.now().Format("2006-01-02"),
		TotalAnalyzed: len(symbols),
		Results:       results,
	}, nil
}

// Rank evaluates every symbol concurrently and sorts by total score, descending.
// Ties keep input order. There is no batch size cap here.
func (s *Screener) Rank(ctx context.Context, symbols []string) ([]Candidate, error) {
	slots := make([]*Candidate, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, symbol := range symbols {
		g.Go(func() error {
			// per-ticker failures are isolated: never returned to the group
			slots[i] = s.evaluateOne(gctx, symbol)
			return nil
		})
	}

	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("screening cancelled: %w", err)
	}

	ranked := make([]Candidate, 0, len(symbols))
	for _, c := range slots {
		if c != nil {
			ranked = append(ranked, *c)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Result.TotalScore > ranked[j].Result.TotalScore
	})

	s.logger.WithFields(map[string]interface{}{
		"total":   len(symbols),
		"success": len(ranked),
		"failed":  len(symbols) - len(ranked),
	}).Info("Screening completed")

	return ranked, nil
}

// evaluateOne runs the pipeline of one ticker; nil means the ticker is dropped
func (s *Screener) evaluateOne(ctx context.Context, symbol string) *Candidate {
	log := s.logger.WithTicker(symbol)

	snap, err := s.provider.Snapshot(ctx, symbol)
	if err != nil {
		log.WithError(err).Warn("Snapshot lookup failed, ticker dropped")
		return nil
	}
	if !snap.Valid() {
		log.Warn("Unknown ticker, dropped")
		return nil
	}

	series, err := s.provider.History(ctx, symbol, contracts.Lookback1Y)
	if err != nil {
		// neutral defaults: technicals 0, risk 5
		log.WithError(err).Warn("History lookup failed, using neutral factors")
		series = nil
	}

	result := s.Evaluate(snap, series)

	log.WithFields(map[string]interface{}{
		"fundamental": result.FundamentalScore,
		"technical":   result.TechnicalScore,
		"risk":        result.RiskScore,
		"total":       result.TotalScore,
	}).Debug("Screened ticker")

	return &Candidate{Result: result, Snapshot: snap}
}

// Evaluate scores one snapshot and series; pure and deterministic
func (s *Screener) Evaluate(snap *contracts.MarketSnapshot, series contracts.PriceSeries) contracts.ScreenResult {
	f := FundamentalFactor(snap)
	t := TechnicalFactor(series)
	r := RiskFactor(snap, series)
	total := indicators.Round(Composite(f, t, r), 2)

	return contracts.ScreenResult{
		Ticker:           snap.Symbol,
		CompanyName:      snap.DisplayName(),
		CurrentPrice:     snap.CurrentPrice,
		FundamentalScore: indicators.Round(f, 2),
		TechnicalScore:   indicators.Round(t, 2),
		RiskScore:        indicators.Round(r, 2),
		TotalScore:       total,
		Recommendation:   s.policy.Action(total),
	}
}

// NormalizeTickers upper-cases and trims symbols, dropping blanks and duplicates (first kept)
func NormalizeTickers(tickers []string) []string {
	seen := make(map[string]struct{}, len(tickers))
	out := make([]string, 0, len(tickers))

	for _, t := range tickers {
		symbol := contracts.NormalizeTicker(t)
		if symbol == "" {
			continue
		}
		if _, dup := seen[symbol]; dup {
			continue
		}
		seen[symbol] = struct{}{}
		out = append(out, symbol)
	}

	return out
}
