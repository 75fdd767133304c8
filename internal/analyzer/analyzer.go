package analyzer

import (
	"context"
	"fmt"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/metrics"
	"github.com/wonny/stockscope/internal/reasoning"
	"github.com/wonny/stockscope/internal/scoring"
	"github.com/wonny/stockscope/pkg/logger"
)

// Analyzer runs the single-ticker pipeline:
// snapshot → metrics → scores → recommendation → reasoning
// ⭐ SSOT: 단일 종목 분석 파이프라인
type Analyzer struct {
	provider  contracts.MarketDataProvider
	extractor *metrics.Extractor
	scorer    *scoring.Scorer
	logger    *logger.Logger
}

// New creates a new analyzer
func New(provider contracts.MarketDataProvider, log *logger.Logger) *Analyzer {
	return &Analyzer{
		provider:  provider,
		extractor: metrics.NewExtractor(log),
		scorer:    scoring.NewScorer(log),
		logger:    log,
	}
}

// Analyze fetches a snapshot and two years of history and evaluates them.
// Unknown symbols fail with ErrInvalidTicker, missing history with ErrNoHistory.
// Provider errors are returned wrapped as is.
func (a *Analyzer) Analyze(ctx context.Context, ticker string) (*contracts.AnalysisResult, error) {
	symbol := contracts.NormalizeTicker(ticker)
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", contracts.ErrInvalidTicker)
	}

	log := a.logger.WithTicker(symbol)

	// transport failures are not an identity problem: no sentinel
	snap, err := a.provider.Snapshot(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot for %s: %w", symbol, err)
	}
	if !snap.Valid() {
		return nil, fmt.Errorf("%w: %s", contracts.ErrInvalidTicker, symbol)
	}

	series, err := a.provider.History(ctx, symbol, contracts.Lookback2Y)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history for %s: %w", symbol, err)
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%w for %s", contracts.ErrNoHistory, symbol)
	}
	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("%w for %s: %w", contracts.ErrNoHistory, symbol, err)
	}

	result := a.Evaluate(snap, series)

	log.WithFields(map[string]interface{}{
		"total":      result.Scoring.TotalScore,
		"action":     result.Recommendation.Action,
		"confidence": result.Recommendation.Confidence,
	}).Info("Analysis completed")

	return result, nil
}

// Evaluate is the pure core of Analyze: identical inputs give identical results
func (a *Analyzer) Evaluate(snap *contracts.MarketSnapshot, series contracts.PriceSeries) *contracts.AnalysisResult {
	m := a.extractor.Extract(snap, series)
	breakdown := a.scorer.Score(snap.Symbol, m)
	rec := a.scorer.Recommend(breakdown, m.Risk)

	policy := a.scorer.Policy()
	bundle := reasoning.Explain(reasoning.FromMetrics(m), reasoning.ScoreContext{
		Total:          breakdown.TotalScore,
		MaxScore:       breakdown.MaxScore,
		BuyThreshold:   policy.BuyThreshold,
		HoldThreshold:  policy.HoldThreshold,
		TechnicalScore: breakdown.TechnicalsScore,
		RiskScore:      breakdown.RiskScore,
	})

	return &contracts.AnalysisResult{
		Ticker:         snap.Symbol,
		CompanyName:    snap.DisplayName(),
		Sector:         snap.Sector,
		Industry:       snap.Industry,
		Fundamentals:   m.Fundamentals,
		Valuation:      m.Valuation,
		Technicals:     m.Technicals,
		Risk:           m.Risk,
		Scoring:        breakdown,
		Recommendation: rec,
		Insights:       reasoning.Insights(m),
		Reasoning:      bundle,
		LastUpdated:    snap.AsOf,
	}
}
