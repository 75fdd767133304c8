package contracts

// Trend is the price-vs-moving-average classification
type Trend string

const (
	TrendBullish Trend = "Bullish"
	TrendNeutral Trend = "Neutral"
	TrendBearish Trend = "Bearish"
)

// ValuationBand compares a P/E to a reference P/E with a ±20% band
type ValuationBand string

const (
	BandOvervalued  ValuationBand = "Overvalued"
	BandFair        ValuationBand = "Fair"
	BandUndervalued ValuationBand = "Undervalued"
)

// RiskLevel is the overall risk classification
type RiskLevel string

const (
	RiskHigh   RiskLevel = "High"
	RiskMedium RiskLevel = "Medium"
	RiskLow    RiskLevel = "Low"
)

// FundamentalMetrics holds growth, profitability and balance sheet figures.
// Percent fields are already multiplied by 100.
type FundamentalMetrics struct {
	RevenueGrowthYoY    *float64 `json:"revenue_growth_yoy"`
	RevenueGrowth5YCAGR *float64 `json:"revenue_growth_5y_cagr"`
	EPSGrowth           *float64 `json:"eps_growth"`
	PERatio             *float64 `json:"pe_ratio"`
	ForwardPE           *float64 `json:"forward_pe"`
	PEGRatio            *float64 `json:"peg_ratio"`
	ROE                 *float64 `json:"roe"`
	ROIC                *float64 `json:"roic"`
	DebtToEquity        *float64 `json:"debt_to_equity"`
	FreeCashFlow        *float64 `json:"free_cash_flow"`
	FCFMargin           *float64 `json:"fcf_margin"`
	CurrentRatio        *float64 `json:"current_ratio"`
	ProfitMargin        *float64 `json:"profit_margin"`
}

// ValuationMetrics holds the fair value estimate and relative P/E bands
type ValuationMetrics struct {
	CurrentPrice      *float64       `json:"current_price"`
	FairValueEstimate *float64       `json:"fair_value_estimate"`
	ValuationMethod   *string        `json:"valuation_method"`
	PriceToFairValue  *float64       `json:"price_to_fair_value"`
	HistoricalPEAvg   *float64       `json:"historical_pe_avg"`
	IndustryPEAvg     *float64       `json:"industry_pe_avg"`
	PriceVsHistorical *ValuationBand `json:"price_vs_historical"`
	PriceVsIndustry   *ValuationBand `json:"price_vs_industry"`
}

// TechnicalMetrics holds moving average, oscillator and trend readings.
// The whole group is empty when the series is shorter than 200 bars.
type TechnicalMetrics struct {
	Price50dMA      *float64 `json:"price_50d_ma"`
	Price200dMA     *float64 `json:"price_200d_ma"`
	PriceVs50dMA    *float64 `json:"price_vs_50d_ma"` // percent
	PriceVs200dMA   *float64 `json:"price_vs_200d_ma"`
	RSI14           *float64 `json:"rsi_14"`
	MACD            *float64 `json:"macd"`
	MACDSignal      *float64 `json:"macd_signal"`
	MACDHistogram   *float64 `json:"macd_histogram"`
	SupportLevel    *float64 `json:"support_level"`
	ResistanceLevel *float64 `json:"resistance_level"`
	TrendDirection  *Trend   `json:"trend_direction"`
}

// Empty reports whether no technical field is present
func (t TechnicalMetrics) Empty() bool {
	return t == TechnicalMetrics{}
}

// RiskMetrics holds market and balance sheet risk readings
type RiskMetrics struct {
	Beta                float64   `json:"beta"`
	BetaDefaulted       bool      `json:"beta_defaulted"` // provider had no beta, 1.0 assumed
	MaxDrawdown1Y       *float64  `json:"max_drawdown_1y"`
	Volatility1Y        *float64  `json:"volatility_1y"`
	EarningsVariability *float64  `json:"earnings_variability"`
	DebtRiskScore       float64   `json:"debt_risk_score"` // 0-100, higher = riskier
	OverallRiskLevel    RiskLevel `json:"overall_risk_level"`
}

// Metrics bundles the four metric groups of one security
type Metrics struct {
	Fundamentals FundamentalMetrics `json:"fundamentals"`
	Valuation    ValuationMetrics   `json:"valuation"`
	Technicals   TechnicalMetrics   `json:"technicals"`
	Risk         RiskMetrics        `json:"risk"`
}
