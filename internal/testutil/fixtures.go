package testutil

import (
	"math"
	"time"

	"github.com/wonny/stockscope/internal/contracts"
)

// FixtureStart is the date of the first bar of every generated series
var FixtureStart = time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

// FixtureAsOf is the as-of time of every fixture snapshot
var FixtureAsOf = time.Date(2024, 12, 31, 21, 0, 0, 0, time.UTC)

// SeriesFromCloses builds a daily series with High/Low 1% around each close
func SeriesFromCloses(closes []float64) contracts.PriceSeries {
	series := make(contracts.PriceSeries, len(closes))
	for i, c := range closes {
		series[i] = contracts.Bar{
			Date:   FixtureStart.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	return series
}

// LinearSeries builds n bars whose close moves by step per bar
func LinearSeries(n int, start, step float64) contracts.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*step
	}
	return SeriesFromCloses(closes)
}

// WavySeries builds n bars trending by drift per bar with a sine wobble of amplitude amp
func WavySeries(n int, start, drift, amp float64) contracts.PriceSeries {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = start + float64(i)*drift + amp*math.Sin(float64(i)/3)
	}
	return SeriesFromCloses(closes)
}

// HealthySnapshot returns a snapshot with every provider field populated
func HealthySnapshot(symbol string) *contracts.MarketSnapshot {
	return &contracts.MarketSnapshot{
		Symbol:       symbol,
		CompanyName:  symbol + " Corporation",
		ShortName:    symbol,
		Sector:       contracts.Str("Technology"),
		Industry:     contracts.Str("Software"),
		CurrentPrice: contracts.Float(150),
		AsOf:         FixtureAsOf,

		TrailingPE:         contracts.Float(25),
		ForwardPE:          contracts.Float(22),
		PEGRatio:           contracts.Float(1.8),
		TrailingEPS:        contracts.Float(6),
		IndustryTrailingPE: contracts.Float(28),

		EarningsQuarterlyGrowth: contracts.Float(0.12),
		RevenueGrowth:           contracts.Float(0.09),
		ReturnOnEquity:          contracts.Float(0.25),
		ReturnOnInvestedCapital: contracts.Float(0.18),
		ProfitMargins:           contracts.Float(0.22),

		DebtToEquity: contracts.Float(0.8),
		CurrentRatio: contracts.Float(1.6),
		Beta:         contracts.Float(1.1),

		Revenues:           []float64{120e9, 110e9, 100e9, 90e9, 80e9},
		NetIncomes:         []float64{26e9, 24e9, 21e9, 19e9},
		FreeCashFlow:       contracts.Float(30e9),
		OperatingCashFlow:  contracts.Float(36e9),
		CapitalExpenditure: contracts.Float(-6e9),
	}
}

// BareSnapshot returns a snapshot with only an identity
func BareSnapshot(symbol string) *contracts.MarketSnapshot {
	return &contracts.MarketSnapshot{
		Symbol: symbol,
		AsOf:   FixtureAsOf,
	}
}
