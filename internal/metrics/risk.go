package metrics

import (
	"math"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/indicators"
)

const (
	// DefaultBeta is assumed when the provider reports no beta
	DefaultBeta = 1.0
	// MinVolatilityReturns is the minimum return count for annualized volatility
	MinVolatilityReturns = 30
	// MinDrawdownBars is the minimum bar count for a drawdown reading
	MinDrawdownBars = 30
	// DrawdownWindow is the trailing one-year window of the drawdown
	DrawdownWindow = 252
	// MinEarningsPeriods is the minimum net income history for earnings variability
	MinEarningsPeriods = 3
)

// Risk derives market and balance sheet risk readings
func Risk(snap *contracts.MarketSnapshot, series contracts.PriceSeries) contracts.RiskMetrics {
	r := contracts.RiskMetrics{
		Beta: DefaultBeta,
	}
	if snap.Beta != nil {
		r.Beta = *snap.Beta
	} else {
		r.BetaDefaulted = true
	}

	returns := indicators.Returns(series.Closes())
	if len(returns) >= MinVolatilityReturns {
		r.Volatility1Y = contracts.Float(indicators.AnnualizedVolatility(returns))
	}

	r.MaxDrawdown1Y = maxDrawdown(series)
	r.EarningsVariability = earningsVariability(snap.NetIncomes)
	r.DebtRiskScore = DebtRiskScore(snap.DebtToEquity, snap.CurrentRatio, r.Beta)
	r.OverallRiskLevel = classifyRisk(r.DebtRiskScore, r.Beta)

	return r
}

// maxDrawdown over the trailing 252 bars, or all bars when 30 <= n < 252
func maxDrawdown(series contracts.PriceSeries) *float64 {
	if len(series) < MinDrawdownBars {
		return nil
	}
	window := series.Tail(DrawdownWindow)
	return indicators.MaxDrawdown(indicators.Returns(window.Closes()))
}

// earningsVariability = stddev(|NI|) / mean(|NI|) × 100
func earningsVariability(netIncomes []float64) *float64 {
	if len(netIncomes) < MinEarningsPeriods {
		return nil
	}

	abs := make([]float64, len(netIncomes))
	for i, v := range netIncomes {
		abs[i] = math.Abs(v)
	}

	mean := indicators.Mean(abs)
	if mean <= 0 {
		return nil
	}
	return contracts.Float(indicators.StdDev(abs) / mean * 100)
}

// DebtRiskScore (0-100, higher = riskier).
// Absent D/E or current ratio contribute nothing.
func DebtRiskScore(debtToEquity, currentRatio *float64, beta float64) float64 {
	score := 0.0

	if debtToEquity != nil {
		switch {
		case *debtToEquity > 2.0:
			score += 40
		case *debtToEquity > 1.0:
			score += 20
		}
	}

	// 유동성 리스크
	if currentRatio != nil {
		switch {
		case *currentRatio < 1.0:
			score += 30
		case *currentRatio < 1.5:
			score += 15
		}
	}

	switch b := math.Abs(beta); {
	case b > 1.5:
		score += 20
	case b > 1.2:
		score += 10
	}

	return math.Min(score, 100)
}

func classifyRisk(debtRisk, beta float64) contracts.RiskLevel {
	b := math.Abs(beta)
	switch {
	case debtRisk >= 70 || b > 1.5:
		return contracts.RiskHigh
	case debtRisk <= 30 && b < 1.0:
		return contracts.RiskLow
	default:
		return contracts.RiskMedium
	}
}
