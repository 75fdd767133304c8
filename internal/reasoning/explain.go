package reasoning

import (
	"fmt"
	"math"

	"github.com/wonny/stockscope/internal/contracts"
)

// Fallback and default sentences
const (
	FallbackBalanced = "Balanced metrics with decent growth potential"
	FallbackMixed    = "Mixed signals - requires careful evaluation"
	DefaultChoose    = "Moderate fundamentals with room for improvement"
	DefaultAvoid     = "No major red flags but limited upside"
)

// Explain builds the why-choose / why-avoid bundle.
// Every rule is independent; both lists are always non-empty.
// ⭐ SSOT: 추천 근거 문장 생성은 여기서만
func Explain(in Inputs, sc ScoreContext) contracts.ReasoningBundle {
	var choose, avoid []string
	keys := make(map[string]string)

	if v := in.RevenueGrowth; v != nil {
		keys["revenue_growth"] = fmt.Sprintf("%.1f%%", *v)
		switch {
		case *v > 15:
			choose = append(choose, fmt.Sprintf("Strong revenue growth of %.1f%% indicates expanding business", *v))
		case *v < 0:
			avoid = append(avoid, fmt.Sprintf("Revenue declining by %.1f%% - business contraction", math.Abs(*v)))
		}
	}

	if v := in.EPSGrowth; v != nil {
		keys["eps_growth"] = fmt.Sprintf("%.1f%%", *v)
		switch {
		case *v > 15:
			choose = append(choose, fmt.Sprintf("Impressive EPS growth of %.1f%% shows profitability improvement", *v))
		case *v < -10:
			avoid = append(avoid, fmt.Sprintf("Earnings declining by %.1f%% - profitability concerns", math.Abs(*v)))
		}
	}

	if v := in.PERatio; v != nil {
		keys["pe_ratio"] = fmt.Sprintf("%.2f", *v)
		switch {
		case *v < 15:
			choose = append(choose, fmt.Sprintf("Attractive P/E ratio of %.1f suggests good value", *v))
		case *v > 40:
			avoid = append(avoid, fmt.Sprintf("High P/E ratio of %.1f indicates overvaluation risk", *v))
		}
	}

	if v := in.ROE; v != nil {
		keys["roe"] = fmt.Sprintf("%.1f%%", *v)
		switch {
		case *v > 20:
			choose = append(choose, fmt.Sprintf("Excellent ROE of %.1f%% shows efficient capital use", *v))
		case *v < 5:
			avoid = append(avoid, fmt.Sprintf("Low ROE of %.1f%% indicates inefficient capital allocation", *v))
		}
	}

	if v := in.DebtToEquity; v != nil {
		keys["debt_to_equity"] = fmt.Sprintf("%.2f", *v)
		switch {
		case *v < 1.0:
			choose = append(choose, fmt.Sprintf("Low debt-to-equity of %.2f shows financial stability", *v))
		case *v > 2.0:
			avoid = append(avoid, fmt.Sprintf("High debt-to-equity of %.2f increases financial risk", *v))
		}
	}

	if in.ForwardPE != nil && in.PERatio != nil {
		keys["forward_pe"] = fmt.Sprintf("%.2f", *in.ForwardPE)
		if *in.ForwardPE < *in.PERatio {
			choose = append(choose, fmt.Sprintf("Forward P/E (%.1f) lower than trailing P/E suggests improving earnings", *in.ForwardPE))
		}
	}

	keys["beta"] = fmt.Sprintf("%.2f", in.Beta)
	switch {
	case in.Beta > 1.5:
		avoid = append(avoid, fmt.Sprintf("High beta of %.2f means high volatility and market sensitivity", in.Beta))
	case in.Beta < 0.8:
		choose = append(choose, fmt.Sprintf("Low beta of %.2f provides portfolio stability", in.Beta))
	}

	switch {
	case sc.Total >= sc.BuyThreshold:
		choose = append(choose, fmt.Sprintf("High overall score of %.1f/%.0f indicates strong investment potential", sc.Total, sc.MaxScore))
	case sc.Total < sc.HoldThreshold:
		avoid = append(avoid, fmt.Sprintf("Low overall score of %.1f/%.0f suggests limited upside potential", sc.Total, sc.MaxScore))
	}

	switch {
	case sc.TechnicalScore >= 15:
		choose = append(choose, "Strong technical indicators show positive momentum")
	case sc.TechnicalScore < 8:
		avoid = append(avoid, "Weak technical setup indicates poor price action")
	}

	if sc.RiskScore < 5 {
		avoid = append(avoid, "Elevated risk profile based on volatility and debt metrics")
	}

	if len(choose) == 0 && len(avoid) == 0 {
		if sc.Total >= sc.HoldThreshold {
			choose = append(choose, FallbackBalanced)
		} else {
			avoid = append(avoid, FallbackMixed)
		}
	}

	if len(choose) == 0 {
		choose = []string{DefaultChoose}
	}
	if len(avoid) == 0 {
		avoid = []string{DefaultAvoid}
	}

	return contracts.ReasoningBundle{
		WhyChoose:  choose,
		WhyAvoid:   avoid,
		KeyMetrics: keys,
	}
}
