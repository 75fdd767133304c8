package contracts

import (
	"strings"
	"time"
)

// MarketSnapshot is a point-in-time bundle of descriptive and fundamental data for one security
// ⭐ SSOT: Provider → Metric Extractor 입력
type MarketSnapshot struct {
	Symbol       string    `json:"symbol"`
	CompanyName  string    `json:"company_name,omitempty"` // long name
	ShortName    string    `json:"short_name,omitempty"`
	Sector       *string   `json:"sector"`
	Industry     *string   `json:"industry"`
	CurrentPrice *float64  `json:"current_price"`
	AsOf         time.Time `json:"as_of"`

	// 밸류에이션
	TrailingPE         *float64 `json:"trailing_pe"`
	ForwardPE          *float64 `json:"forward_pe"`
	PEGRatio           *float64 `json:"peg_ratio"`
	TrailingEPS        *float64 `json:"trailing_eps"`
	IndustryTrailingPE *float64 `json:"industry_trailing_pe"`

	// 성장/수익성 (fractions, 0.12 = 12%)
	EarningsQuarterlyGrowth *float64 `json:"earnings_quarterly_growth"`
	RevenueGrowth           *float64 `json:"revenue_growth"` // quarterly YoY
	ReturnOnEquity          *float64 `json:"return_on_equity"`
	ReturnOnInvestedCapital *float64 `json:"return_on_invested_capital"`
	ProfitMargins           *float64 `json:"profit_margins"`

	// 재무 건전성
	DebtToEquity *float64 `json:"debt_to_equity"` // ratio, 1.5 = 150%
	CurrentRatio *float64 `json:"current_ratio"`
	Beta         *float64 `json:"beta"`

	// 재무제표 이력 (newest first)
	Revenues           []float64 `json:"revenues,omitempty"`
	NetIncomes         []float64 `json:"net_incomes,omitempty"`
	FreeCashFlow       *float64  `json:"free_cash_flow"`
	OperatingCashFlow  *float64  `json:"operating_cash_flow"`
	CapitalExpenditure *float64  `json:"capital_expenditure"`
}

// Valid reports whether the snapshot carries a security identity
func (s *MarketSnapshot) Valid() bool {
	return s != nil && strings.TrimSpace(s.Symbol) != ""
}

// DisplayName returns the long name, then the short name, then the symbol
func (s *MarketSnapshot) DisplayName() string {
	if s.CompanyName != "" {
		return s.CompanyName
	}
	if s.ShortName != "" {
		return s.ShortName
	}
	return s.Symbol
}

// LatestRevenue returns the most recent reported revenue
func (s *MarketSnapshot) LatestRevenue() *float64 {
	if len(s.Revenues) == 0 {
		return nil
	}
	return Float(s.Revenues[0])
}

// NormalizeTicker upper-cases and trims a user supplied symbol
func NormalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}
