package contracts

import "time"

// AnalysisResult is the caller-facing single-ticker analysis
type AnalysisResult struct {
	Ticker         string             `json:"ticker"`
	CompanyName    string             `json:"company_name"`
	Sector         *string            `json:"sector"`
	Industry       *string            `json:"industry"`
	Fundamentals   FundamentalMetrics `json:"fundamentals"`
	Valuation      ValuationMetrics   `json:"valuation"`
	Technicals     TechnicalMetrics   `json:"technicals"`
	Risk           RiskMetrics        `json:"risk"`
	Scoring        ScoringBreakdown   `json:"scoring"`
	Recommendation Recommendation     `json:"recommendation"`
	Insights       []string           `json:"insights"`
	Reasoning      ReasoningBundle    `json:"reasoning"`
	LastUpdated    time.Time          `json:"last_updated"` // snapshot as-of
}

// ScreenResult is one ranked row of a batch screen
type ScreenResult struct {
	Ticker           string   `json:"ticker"`
	CompanyName      string   `json:"company_name"`
	CurrentPrice     *float64 `json:"current_price"`
	FundamentalScore float64  `json:"fundamental_score"` // 0-30
	TechnicalScore   float64  `json:"technical_score"`   // 0-20
	RiskScore        float64  `json:"risk_score"`        // 0-10
	TotalScore       float64  `json:"total_score"`
	Recommendation   Action   `json:"recommendation"`
}

// ScreenReport is the response of a batch screen
type ScreenReport struct {
	Date          string         `json:"date"` // YYYY-MM-DD
	TotalAnalyzed int            `json:"total_analyzed"`
	Results       []ScreenResult `json:"results"`
}

// DailyPick is a screen row with its reasoning bundle
type DailyPick struct {
	ScreenResult
	WhyChoose  []string          `json:"why_choose"`
	WhyAvoid   []string          `json:"why_avoid"`
	KeyMetrics map[string]string `json:"key_metrics"`
}

// DailyPicksReport is the ranked shortlist for one trading day
type DailyPicksReport struct {
	Date          string      `json:"date"` // YYYY-MM-DD
	GeneratedAt   time.Time   `json:"generated_at"`
	TotalAnalyzed int         `json:"total_analyzed"`
	Results       []DailyPick `json:"results"`
}

// SearchResult is one symbol lookup match
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
	Type     string `json:"type"`
}
