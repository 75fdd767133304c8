package reasoning

import (
	"fmt"
	"math"

	"github.com/wonny/stockscope/internal/contracts"
)

// Insights returns plain-English observations about the metric groups
func Insights(m contracts.Metrics) []string {
	insights := []string{}

	if v := m.Fundamentals.RevenueGrowthYoY; v != nil {
		switch {
		case *v > 15:
			insights = append(insights, fmt.Sprintf("Strong revenue growth of %.1f%% YoY", *v))
		case *v < 0:
			insights = append(insights, fmt.Sprintf("Revenue declining by %.1f%% YoY", math.Abs(*v)))
		}
	}

	if v := m.Fundamentals.PERatio; v != nil {
		switch {
		case *v < 15:
			insights = append(insights, fmt.Sprintf("Trading at attractive P/E ratio of %.1f", *v))
		case *v > 30:
			insights = append(insights, fmt.Sprintf("High P/E ratio of %.1f suggests premium valuation", *v))
		}
	}

	if v := m.Valuation.PriceToFairValue; v != nil {
		switch {
		case *v < 0.9:
			insights = append(insights, fmt.Sprintf("Trading at %.1f%% discount to estimated fair value", (1-*v)*100))
		case *v > 1.1:
			insights = append(insights, fmt.Sprintf("Trading at %.1f%% premium to estimated fair value", (*v-1)*100))
		}
	}

	if t := m.Technicals.TrendDirection; t != nil {
		insights = append(insights, fmt.Sprintf("Technical trend: %s", *t))
	}

	if v := m.Technicals.RSI14; v != nil {
		switch {
		case *v > 70:
			insights = append(insights, "RSI indicates overbought conditions")
		case *v < 30:
			insights = append(insights, "RSI indicates oversold conditions")
		}
	}

	switch beta := m.Risk.Beta; {
	case math.Abs(beta) > 1.3:
		insights = append(insights, fmt.Sprintf("High volatility (Beta: %.2f)", beta))
	case math.Abs(beta) < 0.8:
		insights = append(insights, fmt.Sprintf("Lower volatility (Beta: %.2f)", beta))
	}

	if v := m.Risk.MaxDrawdown1Y; v != nil && math.Abs(*v) > 30 {
		insights = append(insights, fmt.Sprintf("Significant drawdown risk (%.1f%% max drawdown)", *v))
	}

	return insights
}
