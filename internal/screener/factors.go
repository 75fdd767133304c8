package screener

import (
	"math"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/metrics"
	"github.com/wonny/stockscope/pkg/indicators"
)

// Factor caps and weights of the screener scale
const (
	FundamentalCap = 30.0
	TechnicalCap   = 20.0
	RiskCap        = 10.0

	FundamentalWeight = 0.4
	TechnicalWeight   = 0.4
	RiskWeight        = 0.2

	// NeutralRisk is the risk factor when history is missing or too short
	NeutralRisk = 5.0

	minTechnicalBars = metrics.MinTechnicalBars
	minRiskBars      = 30
	minRiskReturns   = 10
	momentumBars     = 20
)

// FundamentalFactor scores growth and leverage straight from the snapshot (0-30)
func FundamentalFactor(snap *contracts.MarketSnapshot) float64 {
	score := 0.0

	// 매출 성장률 (0-10)
	if snap.RevenueGrowth != nil {
		score += clamp(*snap.RevenueGrowth*100/20*10, 0, 10)
	}

	// EPS 성장률 (0-10)
	if snap.EarningsQuarterlyGrowth != nil {
		score += clamp(*snap.EarningsQuarterlyGrowth*100/20*10, 0, 10)
	}

	// 부채비율 (0-10)
	if snap.DebtToEquity != nil {
		switch de := *snap.DebtToEquity; {
		case de < 1:
			score += 10
		case de < 2:
			score += 5
		}
	}

	return math.Min(score, FundamentalCap)
}

// TechnicalFactor scores trend, RSI, MACD and momentum (0-20).
// Fewer than 200 bars scores 0.
func TechnicalFactor(series contracts.PriceSeries) float64 {
	if len(series) < minTechnicalBars {
		return 0
	}

	closes := series.Closes()
	price := closes[len(closes)-1]
	score := 0.0

	ma50 := indicators.SMA(closes, 50)
	ma200 := indicators.SMA(closes, 200)
	if ma50 != nil && ma200 != nil {
		switch {
		case *ma50 > *ma200:
			score += 5
		case price > *ma50:
			score += 3
		}
	}

	if rsi := indicators.RSI(closes, 14); rsi != nil {
		switch {
		case *rsi < 30:
			score += 5 // oversold
		case *rsi < 50:
			score += 3
		case *rsi < 70:
			score += 2
		}
	}

	if macd := indicators.MACDStandard(closes); macd != nil {
		switch {
		case macd.Histogram > 0:
			score += 5
		case macd.Histogram > -0.5:
			score += 2
		}
	}

	if momentum := indicators.Momentum(closes, momentumBars); momentum != nil {
		switch {
		case *momentum > 10:
			score += 5
		case *momentum > 5:
			score += 3
		case *momentum > 0:
			score += 1
		}
	}

	return math.Min(score, TechnicalCap)
}

// RiskFactor is inverted (higher = safer): 10 minus volatility and beta penalties (0-10).
// Short history is neutral.
func RiskFactor(snap *contracts.MarketSnapshot, series contracts.PriceSeries) float64 {
	if len(series) < minRiskBars {
		return NeutralRisk
	}

	returns := indicators.Returns(series.Closes())
	if len(returns) < minRiskReturns {
		return NeutralRisk
	}

	volatility := indicators.AnnualizedVolatility(returns) // percent
	beta := contracts.FloatOr(snap.Beta, metrics.DefaultBeta)

	score := RiskCap

	switch {
	case volatility > 50:
		score -= 5
	case volatility > 35:
		score -= 3
	case volatility > 20:
		score -= 1
	}

	switch b := math.Abs(beta); {
	case b > 1.5:
		score -= 3
	case b > 1.2:
		score -= 1
	}

	return clamp(score, 0, RiskCap)
}

// Composite blends the three factors with the 0.4/0.4/0.2 weights
func Composite(fundamental, technical, risk float64) float64 {
	return fundamental*FundamentalWeight + technical*TechnicalWeight + risk*RiskWeight
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
