package indicators

import (
	"math"

	"github.com/markcheno/go-talib"
)

// MACD holds the last values of the MACD line, its signal line and the histogram
type MACD struct {
	Line      float64
	Signal    float64
	Histogram float64
}

// SMA returns the simple moving average of the last period closes.
// nil when the series is shorter than the period.
func SMA(closes []float64, period int) *float64 {
	if period <= 0 || len(closes) < period {
		return nil
	}

	sma := talib.Sma(closes, period)
	return last(sma)
}

// RSI returns the Wilder relative strength index (0-100) of the last close.
// Needs period+1 closes.
func RSI(closes []float64, period int) *float64 {
	if period <= 0 || len(closes) < period+1 {
		return nil
	}

	rsi := talib.Rsi(closes, period)
	return last(rsi)
}

// MACDStandard returns MACD(12, 26, 9) of the last close
func MACDStandard(closes []float64) *MACD {
	return MACDWith(closes, 12, 26, 9)
}

// MACDWith returns MACD(fast, slow, signal) of the last close.
// nil until the signal line has warmed up.
func MACDWith(closes []float64, fast, slow, signal int) *MACD {
	if fast <= 0 || slow <= fast || signal <= 0 || len(closes) < slow+signal-1 {
		return nil
	}

	line, sig, hist := talib.Macd(closes, fast, slow, signal)
	l, s, h := last(line), last(sig), last(hist)
	if l == nil || s == nil || h == nil {
		return nil
	}

	return &MACD{Line: *l, Signal: *s, Histogram: *h}
}

// Momentum returns the percent change between the close `bars` bars back and the last close
func Momentum(closes []float64, bars int) *float64 {
	if bars <= 0 || len(closes) < bars {
		return nil
	}

	start := closes[len(closes)-bars]
	if start == 0 {
		return nil
	}

	change := (closes[len(closes)-1] - start) / start * 100
	return &change
}

// last returns the final element of a talib output, nil for NaN/Inf
func last(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	v := values[len(values)-1]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
