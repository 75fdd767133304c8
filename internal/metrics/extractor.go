package metrics

import (
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/logger"
)

// Extractor turns a snapshot and its price series into the four metric groups
// ⭐ SSOT: 원시 데이터 → 메트릭 변환은 여기서만
type Extractor struct {
	logger *logger.Logger
}

// NewExtractor creates a new metric extractor
func NewExtractor(log *logger.Logger) *Extractor {
	return &Extractor{
		logger: log,
	}
}

// Extract builds all metric groups. It never fails: missing inputs become absent fields.
func (e *Extractor) Extract(snap *contracts.MarketSnapshot, series contracts.PriceSeries) contracts.Metrics {
	m := contracts.Metrics{
		Fundamentals: Fundamentals(snap),
		Valuation:    Valuation(snap, series),
		Technicals:   Technicals(series),
		Risk:         Risk(snap, series),
	}

	e.logger.WithFields(map[string]interface{}{
		"ticker":          snap.Symbol,
		"bars":            len(series),
		"technicals":      !m.Technicals.Empty(),
		"debt_risk_score": m.Risk.DebtRiskScore,
		"risk_level":      m.Risk.OverallRiskLevel,
	}).Debug("Extracted metrics")

	return m
}

// pct converts an optional fraction to a percentage
func pct(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return contracts.Float(*v * 100)
}

// copyPtr detaches an optional value from the snapshot
func copyPtr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return contracts.Float(*v)
}
