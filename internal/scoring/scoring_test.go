package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/metrics"
	"github.com/wonny/stockscope/internal/testutil"
	"github.com/wonny/stockscope/pkg/logger"
)

func trend(t contracts.Trend) *contracts.Trend { return &t }

func band(b contracts.ValuationBand) *contracts.ValuationBand { return &b }

func TestFundamentalsScore(t *testing.T) {
	tests := []struct {
		name string
		f    contracts.FundamentalMetrics
		want float64
	}{
		{"no data is half credit", contracts.FundamentalMetrics{}, 20},
		{"top tier everywhere", contracts.FundamentalMetrics{
			RevenueGrowthYoY: contracts.Float(25), EPSGrowth: contracts.Float(30),
			ROE: contracts.Float(22), FCFMargin: contracts.Float(21),
		}, 40},
		{"only revenue, second tier", contracts.FundamentalMetrics{RevenueGrowthYoY: contracts.Float(15)}, 12.0 / 15 * 40},
		{"revenue at 20 is not above 20", contracts.FundamentalMetrics{RevenueGrowthYoY: contracts.Float(20)}, 12.0 / 15 * 40},
		{"negative growth earns nothing", contracts.FundamentalMetrics{
			RevenueGrowthYoY: contracts.Float(-3), EPSGrowth: contracts.Float(-10),
		}, 0},
		{"mixed", contracts.FundamentalMetrics{
			RevenueGrowthYoY: contracts.Float(6),  // 8/15
			ROE:              contracts.Float(12), // 4/8
		}, 12.0 / 23 * 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, FundamentalsScore(tt.f), 1e-9)
		})
	}
}

func TestFundamentalsScore_RevenueMonotonic(t *testing.T) {
	base := contracts.FundamentalMetrics{
		EPSGrowth: contracts.Float(8),
		ROE:       contracts.Float(16),
		FCFMargin: contracts.Float(4),
	}

	prev := -1.0
	for growth := 4.0; growth <= 25.0; growth += 0.5 {
		f := base
		f.RevenueGrowthYoY = contracts.Float(growth)
		score := FundamentalsScore(f)
		assert.GreaterOrEqual(t, score, prev, "revenue growth %.1f decreased the score", growth)
		prev = score
	}
}

func TestValuationScore(t *testing.T) {
	tests := []struct {
		name string
		v    contracts.ValuationMetrics
		want float64
	}{
		{"no data is half credit", contracts.ValuationMetrics{}, 15},
		{"deep discount and undervalued", contracts.ValuationMetrics{
			PriceToFairValue: contracts.Float(0.7), PriceVsHistorical: band(contracts.BandUndervalued),
		}, 30},
		{"fair and fair", contracts.ValuationMetrics{
			PriceToFairValue: contracts.Float(1.0), PriceVsHistorical: band(contracts.BandFair),
		}, 15.0 / 30 * 30},
		{"overvalued on both", contracts.ValuationMetrics{
			PriceToFairValue: contracts.Float(1.3), PriceVsHistorical: band(contracts.BandOvervalued),
		}, 0},
		{"only band", contracts.ValuationMetrics{PriceVsHistorical: band(contracts.BandFair)}, 15},
		{"only ratio at 0.8 edge", contracts.ValuationMetrics{PriceToFairValue: contracts.Float(0.8)}, 15.0 / 20 * 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ValuationScore(tt.v), 1e-9)
		})
	}
}

func TestTechnicalsScore(t *testing.T) {
	tests := []struct {
		name string
		tm   contracts.TechnicalMetrics
		want float64
	}{
		{"empty group is half credit", contracts.TechnicalMetrics{}, 10},
		{"bullish healthy above both", contracts.TechnicalMetrics{
			TrendDirection: trend(contracts.TrendBullish), RSI14: contracts.Float(55),
			PriceVs50dMA: contracts.Float(3), PriceVs200dMA: contracts.Float(10),
		}, 20},
		{"bearish oversold below both", contracts.TechnicalMetrics{
			TrendDirection: trend(contracts.TrendBearish), RSI14: contracts.Float(15),
			PriceVs50dMA: contracts.Float(-3), PriceVs200dMA: contracts.Float(-10),
		}, 2.0 / 20 * 20},
		{"neutral stretched above 50 only", contracts.TechnicalMetrics{
			TrendDirection: trend(contracts.TrendNeutral), RSI14: contracts.Float(75),
			PriceVs50dMA: contracts.Float(1), PriceVs200dMA: contracts.Float(-1),
		}, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, TechnicalsScore(tt.tm), 1e-9)
		})
	}
}

func TestRiskScore(t *testing.T) {
	tests := []struct {
		name string
		r    contracts.RiskMetrics
		want float64
	}{
		{"no risk", contracts.RiskMetrics{Beta: 1.0}, 10},
		{"debt risk halves", contracts.RiskMetrics{Beta: 1.0, DebtRiskScore: 100}, 5},
		{"elevated beta", contracts.RiskMetrics{Beta: 1.3, DebtRiskScore: 10}, 10 - 0.5 - 1.5},
		{"negative high beta", contracts.RiskMetrics{Beta: -1.8, DebtRiskScore: 20}, 10 - 1 - 3},
		{"worst case stays positive", contracts.RiskMetrics{Beta: 3, DebtRiskScore: 100}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RiskScore(tt.r), 1e-9)
		})
	}
}

func TestBreakdown_CapsAndSum(t *testing.T) {
	extractor := metrics.NewExtractor(logger.Nop())

	cases := []struct {
		name   string
		snap   *contracts.MarketSnapshot
		series contracts.PriceSeries
	}{
		{"healthy uptrend", testutil.HealthySnapshot("A"), testutil.WavySeries(500, 50, 0.4, 3)},
		{"bare downtrend", testutil.BareSnapshot("B"), testutil.LinearSeries(300, 400, -1)},
		{"short history", testutil.HealthySnapshot("C"), testutil.LinearSeries(40, 10, 0.1)},
		{"single bar", testutil.BareSnapshot("D"), testutil.LinearSeries(1, 10, 0)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := Breakdown(extractor.Extract(tc.snap, tc.series))

			assert.GreaterOrEqual(t, b.FundamentalsScore, 0.0)
			assert.LessOrEqual(t, b.FundamentalsScore, FundamentalsCap)
			assert.GreaterOrEqual(t, b.ValuationScore, 0.0)
			assert.LessOrEqual(t, b.ValuationScore, ValuationCap)
			assert.GreaterOrEqual(t, b.TechnicalsScore, 0.0)
			assert.LessOrEqual(t, b.TechnicalsScore, TechnicalsCap)
			assert.GreaterOrEqual(t, b.RiskScore, 0.0)
			assert.LessOrEqual(t, b.RiskScore, RiskCap)

			sum := b.FundamentalsScore + b.ValuationScore + b.TechnicalsScore + b.RiskScore
			assert.InDelta(t, sum, b.TotalScore, 1e-9)
			assert.LessOrEqual(t, b.TotalScore, 100.0)
			assert.Equal(t, 100.0, b.MaxScore)
		})
	}
}

func TestSingleTickerPolicy_Thresholds(t *testing.T) {
	p := DefaultSingleTickerPolicy

	tests := []struct {
		score      float64
		action     contracts.Action
		confidence float64
	}{
		{70.0, contracts.ActionBuy, 60},
		{69.99, contracts.ActionHold, 70},
		{50.0, contracts.ActionHold, 50},
		{49.99, contracts.ActionAvoid, 50},
		{100, contracts.ActionBuy, 90},
		{80, contracts.ActionBuy, 75},
		{60, contracts.ActionHold, 60},
		{25, contracts.ActionAvoid, 30},
		{0, contracts.ActionAvoid, 30},
	}

	for _, tt := range tests {
		action, confidence := p.Decide(tt.score)
		assert.Equal(t, tt.action, action, "score %.2f", tt.score)
		assert.Equal(t, tt.confidence, confidence, "score %.2f", tt.score)
	}
}

func TestScreenerPolicy(t *testing.T) {
	p := DefaultScreenerPolicy

	assert.Equal(t, contracts.ActionBuy, p.Action(20))
	assert.Equal(t, contracts.ActionHold, p.Action(19.99))
	assert.Equal(t, contracts.ActionHold, p.Action(15))
	assert.Equal(t, contracts.ActionAvoid, p.Action(14.99))
}

func TestScorer_Recommend(t *testing.T) {
	s := NewScorer(logger.Nop())

	strong := contracts.ScoringBreakdown{
		FundamentalsScore: 35, ValuationScore: 22, TechnicalsScore: 16, RiskScore: 9, TotalScore: 82,
	}
	rec := s.Recommend(strong, contracts.RiskMetrics{OverallRiskLevel: contracts.RiskLow})
	assert.Equal(t, contracts.ActionBuy, rec.Action)
	assert.Equal(t, 78.0, rec.Confidence)
	assert.Equal(t, 82.0, rec.Score)
	assert.Equal(t, []string{
		ReasonStrongFundamentals, ReasonAttractiveValue, ReasonPositiveTechnicals, ReasonLowerRisk,
	}, rec.Reasoning)

	weak := contracts.ScoringBreakdown{
		FundamentalsScore: 10, ValuationScore: 5, TechnicalsScore: 4, RiskScore: 3, TotalScore: 22,
	}
	rec = s.Recommend(weak, contracts.RiskMetrics{OverallRiskLevel: contracts.RiskHigh})
	assert.Equal(t, contracts.ActionAvoid, rec.Action)
	assert.Equal(t, []string{
		ReasonWeakFundamentals, ReasonOvervalued, ReasonWeakTechnicals, ReasonElevatedRisk,
	}, rec.Reasoning)

	middling := contracts.ScoringBreakdown{
		FundamentalsScore: 25, ValuationScore: 15, TechnicalsScore: 10, RiskScore: 5, TotalScore: 55,
	}
	rec = s.Recommend(middling, contracts.RiskMetrics{OverallRiskLevel: contracts.RiskMedium})
	require.Len(t, rec.Reasoning, 1)
	assert.Equal(t, ReasonMixedSignals, rec.Reasoning[0])
}
