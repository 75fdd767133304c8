package picker

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/reasoning"
	"github.com/wonny/stockscope/internal/screener"
	"github.com/wonny/stockscope/pkg/logger"
)

// screenerMaxScore is the scale the picks' overall score sentence is quoted on
const screenerMaxScore = 30.0

// Picker ranks the whole universe and explains the top picks
// ⭐ SSOT: 일일 추천 종목 생성은 여기서만
type Picker struct {
	screener *screener.Screener
	universe contracts.UniverseSource
	topN     int
	logger   *logger.Logger
	now      func() time.Time
}

// New creates a new daily picker
func New(s *screener.Screener, universe contracts.UniverseSource, topN int, log *logger.Logger) *Picker {
	if topN <= 0 {
		topN = screener.DefaultTopN
	}

	return &Picker{
		screener: s,
		universe: universe,
		topN:     topN,
		logger:   log,
		now:      time.Now,
	}
}

// Generate builds today's picks; topN <= 0 uses the configured default
func (p *Picker) Generate(ctx context.Context, topN int) (*contracts.DailyPicksReport, error) {
	if topN <= 0 {
		topN = p.topN
	}

	tickers, err := p.universe.Tickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load universe %s: %w", p.universe.Name(), err)
	}

	symbols := screener.NormalizeTickers(tickers)
	if len(symbols) == 0 {
		return nil, fmt.Errorf("universe %s: %w", p.universe.Name(), contracts.ErrNoTickers)
	}

	p.logger.WithFields(map[string]interface{}{
		"universe": p.universe.Name(),
		"tickers":  len(symbols),
		"top_n":    topN,
	}).Info("Generating daily picks")

	ranked, err := p.screener.Rank(ctx, symbols)
	if err != nil {
		return nil, err
	}

	policy := p.screener.Policy()
	picks := make([]contracts.DailyPick, 0, topN)
	for i := 0; i < len(ranked) && i < topN; i++ {
		c := ranked[i]
		bundle := reasoning.Explain(reasoning.FromSnapshot(c.Snapshot), reasoning.ScoreContext{
			Total:          c.Result.TotalScore,
			MaxScore:       screenerMaxScore,
			BuyThreshold:   policy.BuyThreshold,
			HoldThreshold:  policy.HoldThreshold,
			TechnicalScore: c.Result.TechnicalScore,
			RiskScore:      c.Result.RiskScore,
		})

		picks = append(picks, contracts.DailyPick{
			ScreenResult: c.Result,
			WhyChoose:    bundle.WhyChoose,
			WhyAvoid:     bundle.WhyAvoid,
			KeyMetrics:   bundle.KeyMetrics,
		})
	}

	now := p.now()
	return &contracts.DailyPicksReport{
		Date:          now.Format("2006-01-02"),
		GeneratedAt:   now,
		TotalAnalyzed: len(symbols),
		Results:       picks,
	}, nil
}
