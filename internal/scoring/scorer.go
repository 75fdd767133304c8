package scoring

import (
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/indicators"
	"github.com/wonny/stockscope/pkg/logger"
)

// Headline reasons of a single-ticker recommendation
const (
	ReasonStrongFundamentals = "Strong fundamental metrics"
	ReasonWeakFundamentals   = "Weak fundamental performance"
	ReasonAttractiveValue    = "Attractive valuation"
	ReasonOvervalued         = "Overvalued relative to fundamentals"
	ReasonPositiveTechnicals = "Positive technical indicators"
	ReasonWeakTechnicals     = "Weak technical setup"
	ReasonElevatedRisk       = "Elevated risk profile"
	ReasonLowerRisk          = "Lower risk profile"
	ReasonMixedSignals       = "Mixed signals - review carefully"
)

// Scorer turns metric groups into the scoring breakdown and recommendation
// ⭐ SSOT: 단일 종목 점수/추천 산출은 여기서만
type Scorer struct {
	logger *logger.Logger
	policy SingleTickerPolicy
}

// NewScorer creates a scorer with the default 70/50 policy
func NewScorer(log *logger.Logger) *Scorer {
	return &Scorer{
		logger: log,
		policy: DefaultSingleTickerPolicy,
	}
}

// Policy returns the threshold table in use
func (s *Scorer) Policy() SingleTickerPolicy {
	return s.policy
}

// Score computes the four sub-scores (2 dp) and their sum
func (s *Scorer) Score(ticker string, m contracts.Metrics) contracts.ScoringBreakdown {
	b := Breakdown(m)

	s.logger.WithFields(map[string]interface{}{
		"ticker":       ticker,
		"fundamentals": b.FundamentalsScore,
		"valuation":    b.ValuationScore,
		"technicals":   b.TechnicalsScore,
		"risk":         b.RiskScore,
		"total":        b.TotalScore,
	}).Debug("Calculated scores")

	return b
}

// Recommend maps the breakdown to an action with headline reasons
func (s *Scorer) Recommend(b contracts.ScoringBreakdown, risk contracts.RiskMetrics) contracts.Recommendation {
	action, confidence := s.policy.Decide(b.TotalScore)

	return contracts.Recommendation{
		Action:     action,
		Confidence: confidence,
		Score:      b.TotalScore,
		Reasoning:  headlineReasons(b, risk),
	}
}

// Breakdown is the pure scoring core: rounded sub-scores, Total = their sum
func Breakdown(m contracts.Metrics) contracts.ScoringBreakdown {
	b := contracts.ScoringBreakdown{
		FundamentalsScore: indicators.Round(FundamentalsScore(m.Fundamentals), 2),
		ValuationScore:    indicators.Round(ValuationScore(m.Valuation), 2),
		TechnicalsScore:   indicators.Round(TechnicalsScore(m.Technicals), 2),
		RiskScore:         indicators.Round(RiskScore(m.Risk), 2),
		MaxScore:          MaxScore,
	}
	b.TotalScore = indicators.Round(b.FundamentalsScore+b.ValuationScore+b.TechnicalsScore+b.RiskScore, 2)
	return b
}

func headlineReasons(b contracts.ScoringBreakdown, risk contracts.RiskMetrics) []string {
	var reasons []string

	switch {
	case b.FundamentalsScore >= 30:
		reasons = append(reasons, ReasonStrongFundamentals)
	case b.FundamentalsScore < 20:
		reasons = append(reasons, ReasonWeakFundamentals)
	}

	switch {
	case b.ValuationScore >= 20:
		reasons = append(reasons, ReasonAttractiveValue)
	case b.ValuationScore < 10:
		reasons = append(reasons, ReasonOvervalued)
	}

	switch {
	case b.TechnicalsScore >= 15:
		reasons = append(reasons, ReasonPositiveTechnicals)
	case b.TechnicalsScore < 8:
		reasons = append(reasons, ReasonWeakTechnicals)
	}

	switch risk.OverallRiskLevel {
	case contracts.RiskHigh:
		reasons = append(reasons, ReasonElevatedRisk)
	case contracts.RiskLow:
		reasons = append(reasons, ReasonLowerRisk)
	}

	if len(reasons) == 0 {
		reasons = append(reasons, ReasonMixedSignals)
	}
	return reasons
}
