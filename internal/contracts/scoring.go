package contracts

// Action is the discrete recommendation
type Action string

const (
	ActionBuy   Action = "Buy"
	ActionHold  Action = "Hold"
	ActionAvoid Action = "Avoid"
)

// ScoringBreakdown holds the four capped sub-scores and their composite
// ⭐ SSOT: Total = 네 개의 (반올림된) 하위 점수 합
type ScoringBreakdown struct {
	FundamentalsScore float64 `json:"fundamentals_score"`
	ValuationScore    float64 `json:"valuation_score"`
	TechnicalsScore   float64 `json:"technicals_score"`
	RiskScore         float64 `json:"risk_score"`
	TotalScore        float64 `json:"total_score"`
	MaxScore          float64 `json:"max_score"`
}

// Recommendation is the action with its confidence and headline reasons
type Recommendation struct {
	Action     Action   `json:"action"`
	Confidence float64  `json:"confidence"` // 0-100
	Score      float64  `json:"score"`
	Reasoning  []string `json:"reasoning"`
}

// ReasoningBundle is the "why choose" / "why avoid" explanation of a score.
// Both lists are always non-empty.
type ReasoningBundle struct {
	WhyChoose  []string          `json:"why_choose"`
	WhyAvoid   []string          `json:"why_avoid"`
	KeyMetrics map[string]string `json:"key_metrics"`
}
