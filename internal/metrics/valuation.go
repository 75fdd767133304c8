package metrics

import (
	"math"

	"github.com/wonny/stockscope/internal/contracts"
)

const (
	// DefaultFairPE is the multiple assumed when the provider has no trailing P/E
	DefaultFairPE = 15.0
	// MaxFairPE caps the growth adjusted multiple
	MaxFairPE = 30.0
	// BandWidth is the ±20% tolerance of the P/E comparisons
	BandWidth = 0.2

	ValuationMethodEarnings = "Earnings-based with growth adjustment"
)

// Valuation derives the fair value estimate and relative P/E bands
func Valuation(snap *contracts.MarketSnapshot, series contracts.PriceSeries) contracts.ValuationMetrics {
	v := contracts.ValuationMetrics{
		CurrentPrice:  currentPrice(snap, series),
		IndustryPEAvg: copyPtr(snap.IndustryTrailingPE),
	}

	// Current P/E stands in for the historical average
	v.HistoricalPEAvg = copyPtr(snap.TrailingPE)

	if fair := fairValue(snap); fair != nil {
		v.FairValueEstimate = fair
		v.ValuationMethod = contracts.Str(ValuationMethodEarnings)

		if v.CurrentPrice != nil && *fair > 0 {
			v.PriceToFairValue = contracts.Float(*v.CurrentPrice / *fair)
		}
	}

	v.PriceVsHistorical = compareBand(snap.TrailingPE, v.HistoricalPEAvg)
	v.PriceVsIndustry = compareBand(snap.TrailingPE, v.IndustryPEAvg)

	return v
}

// currentPrice is the last close, or the quoted price when there is no history
func currentPrice(snap *contracts.MarketSnapshot, series contracts.PriceSeries) *float64 {
	if last, ok := series.Last(); ok {
		return contracts.Float(last.Close)
	}
	return copyPtr(snap.CurrentPrice)
}

// fairValue = EPS × min(PE × (1 + growth), 30), only for positive EPS
func fairValue(snap *contracts.MarketSnapshot) *float64 {
	if snap.TrailingEPS == nil || *snap.TrailingEPS <= 0 {
		return nil
	}

	pe := contracts.FloatOr(snap.TrailingPE, DefaultFairPE)
	growth := contracts.FloatOr(snap.EarningsQuarterlyGrowth, 0)

	adjusted := math.Min(pe*(1+growth), MaxFairPE)
	return contracts.Float(*snap.TrailingEPS * adjusted)
}

// compareBand classifies current against reference with the ±20% band
func compareBand(current, reference *float64) *contracts.ValuationBand {
	if current == nil || reference == nil || *reference == 0 {
		return nil
	}

	band := contracts.BandFair
	switch {
	case *current > *reference*(1+BandWidth):
		band = contracts.BandOvervalued
	case *current < *reference*(1-BandWidth):
		band = contracts.BandUndervalued
	}
	return &band
}
