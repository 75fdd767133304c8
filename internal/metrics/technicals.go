package metrics

import (
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/indicators"
)

const (
	// MinTechnicalBars is the hard precondition of the technicals group (200-day MA)
	MinTechnicalBars = 200
	// SupportWindow is the lookback of the support/resistance levels
	SupportWindow = 60
	// TrendBand is the minimum % distance from MA50 for a Bullish/Bearish call
	TrendBand = 2.0

	shortMA   = 50
	longMA    = 200
	rsiPeriod = 14
)

// Technicals derives moving average, oscillator and trend readings.
// Fewer than 200 bars yields an entirely empty group.
func Technicals(series contracts.PriceSeries) contracts.TechnicalMetrics {
	if len(series) < MinTechnicalBars {
		return contracts.TechnicalMetrics{}
	}

	closes := series.Closes()
	price := closes[len(closes)-1]

	ma50 := indicators.SMA(closes, shortMA)
	ma200 := indicators.SMA(closes, longMA)
	if ma50 == nil || ma200 == nil || *ma50 == 0 || *ma200 == 0 {
		return contracts.TechnicalMetrics{}
	}

	vs50 := (price - *ma50) / *ma50 * 100
	vs200 := (price - *ma200) / *ma200 * 100

	t := contracts.TechnicalMetrics{
		Price50dMA:    ma50,
		Price200dMA:   ma200,
		PriceVs50dMA:  contracts.Float(vs50),
		PriceVs200dMA: contracts.Float(vs200),
		RSI14:         indicators.RSI(closes, rsiPeriod),
	}

	if macd := indicators.MACDStandard(closes); macd != nil {
		t.MACD = contracts.Float(macd.Line)
		t.MACDSignal = contracts.Float(macd.Signal)
		t.MACDHistogram = contracts.Float(macd.Histogram)
	}

	window := series.Tail(SupportWindow)
	t.SupportLevel = contracts.Float(minOf(window.Lows()))
	t.ResistanceLevel = contracts.Float(maxOf(window.Highs()))

	trend := classifyTrend(price, *ma50, *ma200, vs50)
	t.TrendDirection = &trend

	return t
}

// classifyTrend: Bullish iff price > MA50 > MA200 and >2% above MA50,
// Bearish iff price < MA50 < MA200 and >2% below MA50
func classifyTrend(price, ma50, ma200, vs50 float64) contracts.Trend {
	switch {
	case price > ma50 && ma50 > ma200 && vs50 > TrendBand:
		return contracts.TrendBullish
	case price < ma50 && ma50 < ma200 && vs50 < -TrendBand:
		return contracts.TrendBearish
	default:
		return contracts.TrendNeutral
	}
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
