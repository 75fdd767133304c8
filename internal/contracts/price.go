package contracts

import (
	"fmt"
	"time"
)

// Lookback is a price history window understood by the provider
type Lookback string

const (
	Lookback2Y  Lookback = "2y"
	Lookback1Y  Lookback = "1y"
	Lookback6Mo Lookback = "6mo"
)

// Bar is one daily OHLCV observation
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// PriceSeries is a chronologically ordered sequence of bars
// ⭐ SSOT: 오름차순 정렬, 날짜 중복 없음
type PriceSeries []Bar

// Validate checks ordering and uniqueness of dates
func (p PriceSeries) Validate() error {
	for i := 1; i < len(p); i++ {
		if !p[i].Date.After(p[i-1].Date) {
			return fmt.Errorf("bar %d (%s) is not after bar %d (%s)",
				i, p[i].Date.Format("2006-01-02"), i-1, p[i-1].Date.Format("2006-01-02"))
		}
	}
	return nil
}

// Closes returns the close prices in order
func (p PriceSeries) Closes() []float64 {
	out := make([]float64, len(p))
	for i, b := range p {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high prices in order
func (p PriceSeries) Highs() []float64 {
	out := make([]float64, len(p))
	for i, b := range p {
		out[i] = b.High
	}
	return out
}

// Lows returns the low prices in order
func (p PriceSeries) Lows() []float64 {
	out := make([]float64, len(p))
	for i, b := range p {
		out[i] = b.Low
	}
	return out
}

// Last returns the most recent bar
func (p PriceSeries) Last() (Bar, bool) {
	if len(p) == 0 {
		return Bar{}, false
	}
	return p[len(p)-1], true
}

// Tail returns the most recent n bars (all of them when n >= len)
func (p PriceSeries) Tail(n int) PriceSeries {
	if n >= len(p) {
		return p
	}
	if n <= 0 {
		return PriceSeries{}
	}
	return p[len(p)-n:]
}
