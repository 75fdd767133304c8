package reasoning

import (
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/metrics"
)

// Inputs are the metric values the explanation rules read.
// Growth, ROE are percentages; nil means absent and no rule fires.
type Inputs struct {
	RevenueGrowth *float64
	EPSGrowth     *float64
	PERatio       *float64
	ForwardPE     *float64
	ROE           *float64
	DebtToEquity  *float64
	Beta          float64
}

// ScoreContext places the scores on their scale
type ScoreContext struct {
	Total          float64
	MaxScore       float64
	BuyThreshold   float64
	HoldThreshold  float64
	TechnicalScore float64 // 0-20 on both scales
	RiskScore      float64 // 0-10 on both scales
}

// FromMetrics reads the inputs of a single-ticker analysis
func FromMetrics(m contracts.Metrics) Inputs {
	return Inputs{
		RevenueGrowth: m.Fundamentals.RevenueGrowthYoY,
		EPSGrowth:     m.Fundamentals.EPSGrowth,
		PERatio:       m.Fundamentals.PERatio,
		ForwardPE:     m.Fundamentals.ForwardPE,
		ROE:           m.Fundamentals.ROE,
		DebtToEquity:  m.Fundamentals.DebtToEquity,
		Beta:          m.Risk.Beta,
	}
}

// FromSnapshot reads the inputs of a screener row straight from the provider fields
func FromSnapshot(snap *contracts.MarketSnapshot) Inputs {
	in := Inputs{
		RevenueGrowth: percent(snap.RevenueGrowth),
		EPSGrowth:     percent(snap.EarningsQuarterlyGrowth),
		PERatio:       snap.TrailingPE,
		ForwardPE:     snap.ForwardPE,
		ROE:           percent(snap.ReturnOnEquity),
		DebtToEquity:  snap.DebtToEquity,
		Beta:          metrics.DefaultBeta,
	}
	if snap.Beta != nil {
		in.Beta = *snap.Beta
	}
	return in
}

func percent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return contracts.Float(*v * 100)
}
