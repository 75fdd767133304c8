package metrics

import (
	"math"

	"github.com/wonny/stockscope/internal/contracts"
)

// CAGRPeriods is the number of annual periods the compound growth spans
const CAGRPeriods = 5

// Fundamentals derives growth, profitability and balance sheet metrics
func Fundamentals(snap *contracts.MarketSnapshot) contracts.FundamentalMetrics {
	fcf := freeCashFlow(snap)

	return contracts.FundamentalMetrics{
		RevenueGrowthYoY:    revenueGrowthYoY(snap.Revenues),
		RevenueGrowth5YCAGR: revenueCAGR(snap.Revenues),
		EPSGrowth:           pct(snap.EarningsQuarterlyGrowth),
		PERatio:             copyPtr(snap.TrailingPE),
		ForwardPE:           copyPtr(snap.ForwardPE),
		PEGRatio:            copyPtr(snap.PEGRatio),
		ROE:                 pct(snap.ReturnOnEquity),
		ROIC:                pct(snap.ReturnOnInvestedCapital),
		DebtToEquity:        copyPtr(snap.DebtToEquity),
		FreeCashFlow:        fcf,
		FCFMargin:           fcfMargin(fcf, snap.LatestRevenue()),
		CurrentRatio:        copyPtr(snap.CurrentRatio),
		ProfitMargin:        pct(snap.ProfitMargins),
	}
}

// revenueGrowthYoY = (latest - prior) / |prior| × 100
func revenueGrowthYoY(revenues []float64) *float64 {
	if len(revenues) < 2 {
		return nil
	}

	latest, prior := revenues[0], revenues[1]
	if prior == 0 {
		return nil
	}

	return contracts.Float((latest - prior) / math.Abs(prior) * 100)
}

// revenueCAGR = ((last / first)^(1/5) - 1) × 100 over the reported history
func revenueCAGR(revenues []float64) *float64 {
	if len(revenues) < CAGRPeriods {
		return nil
	}

	first := revenues[len(revenues)-1] // oldest
	last := revenues[0]
	if first <= 0 {
		return nil
	}

	cagr := (math.Pow(last/first, 1.0/CAGRPeriods) - 1) * 100
	if math.IsNaN(cagr) || math.IsInf(cagr, 0) {
		return nil
	}
	return &cagr
}

// freeCashFlow uses the reported figure, else operating cash flow - |capex|
func freeCashFlow(snap *contracts.MarketSnapshot) *float64 {
	if snap.FreeCashFlow != nil {
		return copyPtr(snap.FreeCashFlow)
	}
	if snap.OperatingCashFlow != nil && snap.CapitalExpenditure != nil {
		return contracts.Float(*snap.OperatingCashFlow - math.Abs(*snap.CapitalExpenditure))
	}
	return nil
}

func fcfMargin(fcf, revenue *float64) *float64 {
	if fcf == nil || revenue == nil || *revenue <= 0 {
		return nil
	}
	return contracts.Float(*fcf / *revenue * 100)
}
