package analyzer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/testutil"
	"github.com/wonny/stockscope/pkg/logger"
)

func newTestAnalyzer(p contracts.MarketDataProvider) *Analyzer {
	return New(p, logger.Nop())
}

func TestAnalyze_Success(t *testing.T) {
	provider := testutil.NewMockProvider().
		Set(testutil.HealthySnapshot("AAPL"), testutil.WavySeries(500, 100, 0.3, 4))

	result, err := newTestAnalyzer(provider).Analyze(context.Background(), "  aapl ")
	require.NoError(t, err)

	assert.Equal(t, "AAPL", result.Ticker)
	assert.Equal(t, "AAPL Corporation", result.CompanyName)
	assert.Equal(t, "Technology", *result.Sector)
	assert.False(t, result.Technicals.Empty())
	assert.Equal(t, testutil.FixtureAsOf, result.LastUpdated)

	s := result.Scoring
	assert.InDelta(t, s.FundamentalsScore+s.ValuationScore+s.TechnicalsScore+s.RiskScore, s.TotalScore, 1e-9)
	assert.Equal(t, s.TotalScore, result.Recommendation.Score)
	assert.NotEmpty(t, result.Recommendation.Reasoning)
	assert.NotEmpty(t, result.Reasoning.WhyChoose)
	assert.NotEmpty(t, result.Reasoning.WhyAvoid)
	assert.Contains(t, result.Insights, "Technical trend: "+string(*result.Technicals.TrendDirection))
}

func TestAnalyze_InvalidTicker(t *testing.T) {
	a := newTestAnalyzer(testutil.NewMockProvider())

	for _, ticker := range []string{"   ", "NOPE"} {
		_, err := a.Analyze(context.Background(), ticker)
		require.Error(t, err, ticker)
		assert.True(t, errors.Is(err, contracts.ErrInvalidTicker), ticker)
	}
}

func TestAnalyze_ProviderFailure(t *testing.T) {
	provider := testutil.NewMockProvider().
		FailSnapshot("DOWN").
		Set(testutil.HealthySnapshot("FAIL"), testutil.LinearSeries(10, 1, 1)).
		FailHistory("FAIL")
	a := newTestAnalyzer(provider)

	for _, symbol := range []string{"DOWN", "FAIL"} {
		_, err := a.Analyze(context.Background(), symbol)
		require.Error(t, err, symbol)
		assert.True(t, errors.Is(err, testutil.ErrProviderDown), symbol)
		assert.False(t, errors.Is(err, contracts.ErrInvalidTicker), symbol)
		assert.False(t, errors.Is(err, contracts.ErrNoHistory), symbol)
	}
}

func TestAnalyze_NoHistory(t *testing.T) {
	provider := testutil.NewMockProvider().
		Set(testutil.HealthySnapshot("EMPTY"), nil).
		Set(testutil.HealthySnapshot("DUP"), append(testutil.LinearSeries(3, 1, 1), testutil.LinearSeries(1, 1, 1)...))

	a := newTestAnalyzer(provider)
	for _, symbol := range []string{"EMPTY", "DUP"} {
		_, err := a.Analyze(context.Background(), symbol)
		require.Error(t, err, symbol)
		assert.True(t, errors.Is(err, contracts.ErrNoHistory), symbol)
	}
}

func TestAnalyze_ShortHistoryIsPartial(t *testing.T) {
	provider := testutil.NewMockProvider().
		Set(testutil.HealthySnapshot("NEW"), testutil.LinearSeries(60, 20, 0.1))

	result, err := newTestAnalyzer(provider).Analyze(context.Background(), "NEW")
	require.NoError(t, err)

	assert.True(t, result.Technicals.Empty())
	assert.Equal(t, 10.0, result.Scoring.TechnicalsScore, "empty technicals earn half credit")
	assert.NotNil(t, result.Risk.Volatility1Y)
}

func TestEvaluate_Idempotent(t *testing.T) {
	a := newTestAnalyzer(testutil.NewMockProvider())
	snap := testutil.HealthySnapshot("MSFT")
	series := testutil.WavySeries(504, 200, -0.1, 6)

	first, err := json.Marshal(a.Evaluate(snap, series))
	require.NoError(t, err)
	second, err := json.Marshal(a.Evaluate(snap, series))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestEvaluate_BareSnapshot(t *testing.T) {
	a := newTestAnalyzer(testutil.NewMockProvider())
	result := a.Evaluate(testutil.BareSnapshot("ZZZ"), testutil.LinearSeries(5, 10, 0))

	assert.Equal(t, "ZZZ", result.CompanyName)
	assert.Equal(t, 20.0, result.Scoring.FundamentalsScore)
	assert.Equal(t, 15.0, result.Scoring.ValuationScore)
	assert.Equal(t, 10.0, result.Scoring.TechnicalsScore)
	assert.Equal(t, 10.0, result.Scoring.RiskScore)
	assert.Equal(t, 55.0, result.Scoring.TotalScore)
	assert.Equal(t, contracts.ActionHold, result.Recommendation.Action)
	assert.Equal(t, 55.0, result.Recommendation.Confidence)
	assert.NotEmpty(t, result.Reasoning.WhyChoose)
	assert.NotEmpty(t, result.Reasoning.WhyAvoid)
}
