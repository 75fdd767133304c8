package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/testutil"
	"github.com/wonny/stockscope/pkg/logger"
)

func TestFundamentals_Healthy(t *testing.T) {
	f := Fundamentals(testutil.HealthySnapshot("AAPL"))

	require.NotNil(t, f.RevenueGrowthYoY)
	assert.InDelta(t, 10.0/110.0*100, *f.RevenueGrowthYoY, 1e-9)

	require.NotNil(t, f.RevenueGrowth5YCAGR)
	assert.InDelta(t, (math.Pow(1.5, 0.2)-1)*100, *f.RevenueGrowth5YCAGR, 1e-9)

	require.NotNil(t, f.EPSGrowth)
	assert.InDelta(t, 12.0, *f.EPSGrowth, 1e-9)
	assert.InDelta(t, 25.0, *f.ROE, 1e-9)
	assert.InDelta(t, 18.0, *f.ROIC, 1e-9)
	assert.InDelta(t, 22.0, *f.ProfitMargin, 1e-9)
	assert.Equal(t, 25.0, *f.PERatio)
	assert.Equal(t, 0.8, *f.DebtToEquity)

	require.NotNil(t, f.FCFMargin)
	assert.InDelta(t, 25.0, *f.FCFMargin, 1e-9)
}

func TestFundamentals_Absent(t *testing.T) {
	f := Fundamentals(testutil.BareSnapshot("ZZZ"))

	assert.Equal(t, contracts.FundamentalMetrics{}, f, "bare snapshot yields an all-absent group")
}

func TestFundamentals_RevenueRules(t *testing.T) {
	tests := []struct {
		name     string
		revenues []float64
		wantYoY  *float64
		wantCAGR bool
	}{
		{"single period", []float64{100}, nil, false},
		{"zero prior", []float64{100, 0}, nil, false},
		{"negative prior uses abs", []float64{50, -100}, contracts.Float(150), false},
		{"four periods no cagr", []float64{4, 3, 2, 1}, contracts.Float(100.0 / 3.0), false},
		{"non-positive oldest", []float64{5, 4, 3, 2, 0}, contracts.Float(25), false},
		{"negative latest is not finite", []float64{-5, 4, 3, 2, 1}, contracts.Float(-225), false},
		{"five periods", []float64{5, 4, 3, 2, 1}, contracts.Float(25), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testutil.BareSnapshot("X")
			snap.Revenues = tt.revenues
			f := Fundamentals(snap)

			if tt.wantYoY == nil {
				assert.Nil(t, f.RevenueGrowthYoY)
			} else {
				require.NotNil(t, f.RevenueGrowthYoY)
				assert.InDelta(t, *tt.wantYoY, *f.RevenueGrowthYoY, 1e-9)
			}
			assert.Equal(t, tt.wantCAGR, f.RevenueGrowth5YCAGR != nil)
		})
	}
}

func TestFundamentals_EPSGrowthZeroIsPresent(t *testing.T) {
	snap := testutil.BareSnapshot("X")
	snap.EarningsQuarterlyGrowth = contracts.Float(0)

	f := Fundamentals(snap)
	require.NotNil(t, f.EPSGrowth)
	assert.Equal(t, 0.0, *f.EPSGrowth)
}

func TestFundamentals_DerivedFreeCashFlow(t *testing.T) {
	snap := testutil.HealthySnapshot("X")
	snap.FreeCashFlow = nil

	f := Fundamentals(snap)
	require.NotNil(t, f.FreeCashFlow)
	assert.Equal(t, 30e9, *f.FreeCashFlow) // 36e9 - |−6e9|

	snap.CapitalExpenditure = nil
	f = Fundamentals(snap)
	assert.Nil(t, f.FreeCashFlow)
	assert.Nil(t, f.FCFMargin)
}

func TestFundamentals_FCFMarginNeedsPositiveRevenue(t *testing.T) {
	snap := testutil.HealthySnapshot("X")
	snap.Revenues = []float64{0, 10}

	f := Fundamentals(snap)
	assert.NotNil(t, f.FreeCashFlow)
	assert.Nil(t, f.FCFMargin)
}

func TestValuation_FairValue(t *testing.T) {
	series := testutil.LinearSeries(10, 140, 1) // last close 149

	tests := []struct {
		name     string
		mutate   func(s *contracts.MarketSnapshot)
		wantFair *float64
	}{
		{"growth adjusted", func(s *contracts.MarketSnapshot) {}, contracts.Float(6 * 28.0)},
		{"default pe", func(s *contracts.MarketSnapshot) { s.TrailingPE = nil }, contracts.Float(6 * 15 * 1.12)},
		{"default growth", func(s *contracts.MarketSnapshot) { s.EarningsQuarterlyGrowth = nil }, contracts.Float(6 * 25.0)},
		{"capped at 30", func(s *contracts.MarketSnapshot) { s.TrailingPE = contracts.Float(40) }, contracts.Float(6 * 30.0)},
		{"cap applies without growth", func(s *contracts.MarketSnapshot) {
			s.TrailingPE = contracts.Float(45)
			s.EarningsQuarterlyGrowth = nil
		}, contracts.Float(6 * 30.0)},
		{"negative eps", func(s *contracts.MarketSnapshot) { s.TrailingEPS = contracts.Float(-2) }, nil},
		{"missing eps", func(s *contracts.MarketSnapshot) { s.TrailingEPS = nil }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testutil.HealthySnapshot("X")
			tt.mutate(snap)
			v := Valuation(snap, series)

			require.NotNil(t, v.CurrentPrice)
			assert.Equal(t, 149.0, *v.CurrentPrice)

			if tt.wantFair == nil {
				assert.Nil(t, v.FairValueEstimate)
				assert.Nil(t, v.PriceToFairValue)
				assert.Nil(t, v.ValuationMethod)
				return
			}
			require.NotNil(t, v.FairValueEstimate)
			assert.InDelta(t, *tt.wantFair, *v.FairValueEstimate, 1e-9)
			require.NotNil(t, v.PriceToFairValue)
			assert.InDelta(t, 149.0 / *tt.wantFair, *v.PriceToFairValue, 1e-9)
			assert.Equal(t, ValuationMethodEarnings, *v.ValuationMethod)
		})
	}
}

func TestValuation_PriceFallsBackToQuote(t *testing.T) {
	v := Valuation(testutil.HealthySnapshot("X"), nil)
	require.NotNil(t, v.CurrentPrice)
	assert.Equal(t, 150.0, *v.CurrentPrice)
}

func TestValuation_Bands(t *testing.T) {
	band := func(b contracts.ValuationBand) *contracts.ValuationBand { return &b }

	tests := []struct {
		name     string
		pe       *float64
		industry *float64
		wantHist *contracts.ValuationBand
		wantInd  *contracts.ValuationBand
	}{
		{"no pe", nil, contracts.Float(20), nil, nil},
		{"fair vs self", contracts.Float(20), nil, band(contracts.BandFair), nil},
		{"above industry", contracts.Float(25), contracts.Float(20), band(contracts.BandFair), band(contracts.BandOvervalued)},
		{"below industry", contracts.Float(15), contracts.Float(20), band(contracts.BandFair), band(contracts.BandUndervalued)},
		{"at +20% edge", contracts.Float(24), contracts.Float(20), band(contracts.BandFair), band(contracts.BandFair)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := testutil.BareSnapshot("X")
			snap.TrailingPE = tt.pe
			snap.IndustryTrailingPE = tt.industry

			v := Valuation(snap, nil)
			assert.Equal(t, tt.wantHist, v.PriceVsHistorical)
			assert.Equal(t, tt.wantInd, v.PriceVsIndustry)
		})
	}
}

func TestTechnicals_200BarBoundary(t *testing.T) {
	assert.True(t, Technicals(testutil.LinearSeries(199, 100, 0.5)).Empty(), "199 bars yields an empty group")

	tech := Technicals(testutil.LinearSeries(200, 100, 0.5))
	assert.NotNil(t, tech.Price50dMA)
	assert.NotNil(t, tech.Price200dMA)
	assert.NotNil(t, tech.PriceVs50dMA)
	assert.NotNil(t, tech.PriceVs200dMA)
	assert.NotNil(t, tech.RSI14)
	assert.NotNil(t, tech.MACD)
	assert.NotNil(t, tech.MACDSignal)
	assert.NotNil(t, tech.MACDHistogram)
	assert.NotNil(t, tech.SupportLevel)
	assert.NotNil(t, tech.ResistanceLevel)
	assert.NotNil(t, tech.TrendDirection)
}

func TestTechnicals_Values(t *testing.T) {
	series := testutil.LinearSeries(250, 100, 1) // 100 .. 349
	tech := Technicals(series)

	// MA50 of 300..349
	assert.InDelta(t, 324.5, *tech.Price50dMA, 1e-9)
	// MA200 of 150..349
	assert.InDelta(t, 249.5, *tech.Price200dMA, 1e-9)
	assert.InDelta(t, (349-324.5)/324.5*100, *tech.PriceVs50dMA, 1e-9)

	// support/resistance over the last 60 bars (290..349)
	assert.InDelta(t, 290*0.99, *tech.SupportLevel, 1e-9)
	assert.InDelta(t, 349*1.01, *tech.ResistanceLevel, 1e-9)

	assert.Equal(t, contracts.TrendBullish, *tech.TrendDirection)
}

func TestTechnicals_Trend(t *testing.T) {
	bearish := Technicals(testutil.LinearSeries(250, 400, -1))
	assert.Equal(t, contracts.TrendBearish, *bearish.TrendDirection)

	flat := Technicals(testutil.LinearSeries(250, 100, 0))
	assert.Equal(t, contracts.TrendNeutral, *flat.TrendDirection)
}

func TestClassifyTrend(t *testing.T) {
	// price above both MAs but within the 2% band
	assert.Equal(t, contracts.TrendNeutral, classifyTrend(101, 100, 90, 1))
	assert.Equal(t, contracts.TrendBullish, classifyTrend(103, 100, 90, 3))
	// MA50 below MA200
	assert.Equal(t, contracts.TrendNeutral, classifyTrend(103, 100, 110, 3))
	assert.Equal(t, contracts.TrendBearish, classifyTrend(97, 100, 110, -3))
}

func TestRisk_BetaDefault(t *testing.T) {
	r := Risk(testutil.BareSnapshot("X"), nil)
	assert.Equal(t, DefaultBeta, r.Beta)
	assert.True(t, r.BetaDefaulted)
	assert.Nil(t, r.Volatility1Y)
	assert.Nil(t, r.MaxDrawdown1Y)
	assert.Nil(t, r.EarningsVariability)
	assert.Equal(t, 0.0, r.DebtRiskScore)
	assert.Equal(t, contracts.RiskMedium, r.OverallRiskLevel) // |β| = 1.0 is not < 1.0

	snap := testutil.BareSnapshot("X")
	snap.Beta = contracts.Float(0.7)
	r = Risk(snap, nil)
	assert.False(t, r.BetaDefaulted)
	assert.Equal(t, contracts.RiskLow, r.OverallRiskLevel)
}

func TestRisk_HistoryPreconditions(t *testing.T) {
	snap := testutil.HealthySnapshot("X")

	r := Risk(snap, testutil.WavySeries(30, 100, 0.1, 2)) // 29 returns
	assert.Nil(t, r.Volatility1Y)
	assert.NotNil(t, r.MaxDrawdown1Y)

	r = Risk(snap, testutil.WavySeries(31, 100, 0.1, 2)) // 30 returns
	assert.NotNil(t, r.Volatility1Y)

	r = Risk(snap, testutil.WavySeries(29, 100, 0.1, 2))
	assert.Nil(t, r.MaxDrawdown1Y)
}

func TestRisk_DrawdownUsesTrailingYear(t *testing.T) {
	// crash early, then steady rise for a full year
	closes := []float64{100, 40}
	for i := 0; i < 300; i++ {
		closes = append(closes, 40+float64(i))
	}
	r := Risk(testutil.BareSnapshot("X"), testutil.SeriesFromCloses(closes))

	require.NotNil(t, r.MaxDrawdown1Y)
	assert.InDelta(t, 0.0, *r.MaxDrawdown1Y, 1e-9)
}

func TestRisk_EarningsVariability(t *testing.T) {
	snap := testutil.BareSnapshot("X")
	snap.NetIncomes = []float64{10, -20, 30}

	r := Risk(snap, nil)
	require.NotNil(t, r.EarningsVariability)
	// |NI| = 10, 20, 30: sample stddev 10, mean 20
	assert.InDelta(t, 50.0, *r.EarningsVariability, 1e-9)

	snap.NetIncomes = []float64{0, 0, 0}
	assert.Nil(t, Risk(snap, nil).EarningsVariability)
}

func TestDebtRiskScore(t *testing.T) {
	tests := []struct {
		name string
		de   *float64
		cr   *float64
		beta float64
		want float64
	}{
		{"all absent", nil, nil, 1.0, 0},
		{"high leverage", contracts.Float(2.5), nil, 1.0, 40},
		{"moderate leverage", contracts.Float(1.5), nil, 1.0, 20},
		{"exactly 2.0", contracts.Float(2.0), nil, 1.0, 20},
		{"illiquid", nil, contracts.Float(0.8), 1.0, 30},
		{"tight liquidity", nil, contracts.Float(1.2), 1.0, 15},
		{"high beta", nil, nil, -1.6, 20},
		{"elevated beta", nil, nil, 1.3, 10},
		{"everything", contracts.Float(3), contracts.Float(0.5), 2, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DebtRiskScore(tt.de, tt.cr, tt.beta))
		})
	}
}

func TestClassifyRisk(t *testing.T) {
	assert.Equal(t, contracts.RiskHigh, classifyRisk(70, 1.0))
	assert.Equal(t, contracts.RiskHigh, classifyRisk(0, 1.6))
	assert.Equal(t, contracts.RiskLow, classifyRisk(30, 0.9))
	assert.Equal(t, contracts.RiskMedium, classifyRisk(31, 0.9))
	assert.Equal(t, contracts.RiskMedium, classifyRisk(10, 1.2))
}

func TestExtractor_Extract(t *testing.T) {
	e := NewExtractor(logger.Nop())
	snap := testutil.HealthySnapshot("MSFT")
	series := testutil.WavySeries(500, 100, 0.3, 3)

	m := e.Extract(snap, series)
	assert.NotNil(t, m.Fundamentals.RevenueGrowthYoY)
	assert.NotNil(t, m.Valuation.FairValueEstimate)
	assert.False(t, m.Technicals.Empty())
	assert.NotNil(t, m.Risk.Volatility1Y)

	// pure: same input, same output
	assert.Equal(t, m, e.Extract(snap, series))
}
