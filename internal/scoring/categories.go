package scoring

import (
	"math"

	"github.com/wonny/stockscope/internal/contracts"
)

// Category caps of the single-ticker scale (sum 100)
const (
	FundamentalsCap = 40.0
	ValuationCap    = 30.0
	TechnicalsCap   = 20.0
	RiskCap         = 10.0
	MaxScore        = FundamentalsCap + ValuationCap + TechnicalsCap + RiskCap
)

var (
	revenueGrowthTiers = []tier{{20, 15}, {10, 12}, {5, 8}, {0, 5}}
	epsGrowthTiers     = []tier{{20, 10}, {10, 8}, {5, 5}, {0, 3}}
	roeTiers           = []tier{{20, 8}, {15, 6}, {10, 4}, {5, 2}}
	fcfMarginTiers     = []tier{{20, 7}, {10, 5}, {5, 3}, {0, 1}}

	priceToFairTiers = []tier{{0.8, 20}, {0.95, 15}, {1.05, 10}, {1.2, 5}}
)

// FundamentalsScore scores growth and profitability (0-40)
func FundamentalsScore(f contracts.FundamentalMetrics) float64 {
	var c category

	if f.RevenueGrowthYoY != nil {
		c.add(tiersAbove(*f.RevenueGrowthYoY, revenueGrowthTiers), 15)
	}
	if f.EPSGrowth != nil {
		c.add(tiersAbove(*f.EPSGrowth, epsGrowthTiers), 10)
	}
	if f.ROE != nil {
		c.add(tiersAbove(*f.ROE, roeTiers), 8)
	}
	if f.FCFMargin != nil {
		c.add(tiersAbove(*f.FCFMargin, fcfMarginTiers), 7)
	}

	return c.scale(FundamentalsCap)
}

// ValuationScore scores price against fair value and P/E history (0-30)
func ValuationScore(v contracts.ValuationMetrics) float64 {
	var c category

	if v.PriceToFairValue != nil {
		c.add(tiersBelow(*v.PriceToFairValue, priceToFairTiers), 20)
	}
	if v.PriceVsHistorical != nil {
		c.add(bandPoints(*v.PriceVsHistorical), 10)
	}

	return c.scale(ValuationCap)
}

func bandPoints(b contracts.ValuationBand) float64 {
	switch b {
	case contracts.BandUndervalued:
		return 10
	case contracts.BandFair:
		return 5
	default:
		return 0
	}
}

// TechnicalsScore scores trend, RSI and moving average position (0-20)
func TechnicalsScore(t contracts.TechnicalMetrics) float64 {
	var c category

	if t.TrendDirection != nil {
		c.add(trendPoints(*t.TrendDirection), 10)
	}

	if t.RSI14 != nil {
		rsi := *t.RSI14
		switch {
		case rsi > 30 && rsi < 70:
			c.add(5, 5)
		case rsi > 20 && rsi < 80:
			c.add(3, 5)
		default:
			c.add(1, 5) // overbought/oversold
		}
	}

	if t.PriceVs50dMA != nil {
		above200 := t.PriceVs200dMA != nil && *t.PriceVs200dMA > 0
		switch {
		case *t.PriceVs50dMA > 0 && above200:
			c.add(5, 5)
		case *t.PriceVs50dMA > 0:
			c.add(3, 5)
		default:
			c.add(1, 5)
		}
	}

	return c.scale(TechnicalsCap)
}

func trendPoints(trend contracts.Trend) float64 {
	switch trend {
	case contracts.TrendBullish:
		return 10
	case contracts.TrendNeutral:
		return 5
	default:
		return 0
	}
}

// RiskScore is inverted (higher = safer): 10 - debtRisk/100×5 - beta penalty, floored at 0
func RiskScore(r contracts.RiskMetrics) float64 {
	score := RiskCap - r.DebtRiskScore/100*5

	switch b := math.Abs(r.Beta); {
	case b > 1.5:
		score -= 3
	case b > 1.2:
		score -= 1.5
	}

	return math.Max(0, score)
}
