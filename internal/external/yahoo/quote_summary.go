package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wonny/stockscope/internal/contracts"
)

// summaryModules are the quoteSummary modules a snapshot needs
var summaryModules = []string{
	"price",
	"assetProfile",
	"summaryDetail",
	"defaultKeyStatistics",
	"financialData",
	"incomeStatementHistory",
	"cashflowStatementHistory",
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteSummaryResult struct {
	Price struct {
		Symbol             string   `json:"symbol"`
		LongName           string   `json:"longName"`
		ShortName          string   `json:"shortName"`
		RegularMarketPrice rawValue `json:"regularMarketPrice"`
	} `json:"price"`

	AssetProfile struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`

	SummaryDetail struct {
		TrailingPE rawValue `json:"trailingPE"`
		ForwardPE  rawValue `json:"forwardPE"`
		Beta       rawValue `json:"beta"`
	} `json:"summaryDetail"`

	DefaultKeyStatistics struct {
		ForwardPE               rawValue `json:"forwardPE"`
		PEGRatio                rawValue `json:"pegRatio"`
		TrailingEps             rawValue `json:"trailingEps"`
		EarningsQuarterlyGrowth rawValue `json:"earningsQuarterlyGrowth"`
		Beta                    rawValue `json:"beta"`
	} `json:"defaultKeyStatistics"`

	FinancialData struct {
		CurrentPrice      rawValue `json:"currentPrice"`
		RevenueGrowth     rawValue `json:"revenueGrowth"`
		ReturnOnEquity    rawValue `json:"returnOnEquity"`
		ProfitMargins     rawValue `json:"profitMargins"`
		DebtToEquity      rawValue `json:"debtToEquity"` // percent
		CurrentRatio      rawValue `json:"currentRatio"`
		OperatingCashflow rawValue `json:"operatingCashflow"`
	} `json:"financialData"`

	IncomeStatementHistory struct {
		Statements []struct {
			EndDate      rawValue `json:"endDate"`
			TotalRevenue rawValue `json:"totalRevenue"`
			NetIncome    rawValue `json:"netIncome"`
		} `json:"incomeStatementHistory"`
	} `json:"incomeStatementHistory"`

	CashflowStatementHistory struct {
		Statements []struct {
			EndDate                          rawValue `json:"endDate"`
			TotalCashFromOperatingActivities rawValue `json:"totalCashFromOperatingActivities"`
			CapitalExpenditures              rawValue `json:"capitalExpenditures"`
			FreeCashFlow                     rawValue `json:"freeCashFlow"`
		} `json:"cashflowStatements"`
	} `json:"cashflowStatementHistory"`
}

// Snapshot fetches descriptive and fundamental data for symbol.
// An unknown symbol yields a snapshot without identity (Valid() == false), not an error.
func (c *Client) Snapshot(ctx context.Context, symbol string) (*contracts.MarketSnapshot, error) {
	params := url.Values{}
	params.Set("modules", strings.Join(summaryModules, ","))

	var resp quoteSummaryResponse
	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol))
	found, err := c.getJSON(ctx, path, params, &resp)
	if err != nil {
		return nil, fmt.Errorf("quoteSummary %s: %w", symbol, err)
	}

	asOf := c.now().UTC()
	if !found || len(resp.QuoteSummary.Result) == 0 {
		c.logger.WithTicker(symbol).Debug("No quote summary for symbol")
		return &contracts.MarketSnapshot{AsOf: asOf}, nil
	}

	snap := toSnapshot(resp.QuoteSummary.Result[0])
	snap.AsOf = asOf
	return snap, nil
}

// toSnapshot maps a quoteSummary result onto the provider-neutral snapshot
func toSnapshot(r quoteSummaryResult) *contracts.MarketSnapshot {
	snap := &contracts.MarketSnapshot{
		Symbol:      r.Price.Symbol,
		CompanyName: r.Price.LongName,
		ShortName:   r.Price.ShortName,
		Sector:      contracts.Str(r.AssetProfile.Sector),
		Industry:    contracts.Str(r.AssetProfile.Industry),

		CurrentPrice: firstOf(r.FinancialData.CurrentPrice, r.Price.RegularMarketPrice),

		TrailingPE:              r.SummaryDetail.TrailingPE.ptr(),
		ForwardPE:               firstOf(r.SummaryDetail.ForwardPE, r.DefaultKeyStatistics.ForwardPE),
		PEGRatio:                r.DefaultKeyStatistics.PEGRatio.ptr(),
		TrailingEPS:             r.DefaultKeyStatistics.TrailingEps.ptr(),
		EarningsQuarterlyGrowth: r.DefaultKeyStatistics.EarningsQuarterlyGrowth.ptr(),
		RevenueGrowth:           r.FinancialData.RevenueGrowth.ptr(),
		ReturnOnEquity:          r.FinancialData.ReturnOnEquity.ptr(),
		ProfitMargins:           r.FinancialData.ProfitMargins.ptr(),
		CurrentRatio:            r.FinancialData.CurrentRatio.ptr(),
		Beta:                    firstOf(r.SummaryDetail.Beta, r.DefaultKeyStatistics.Beta),
	}

	// Yahoo reports D/E in percent (150.0 = 1.5x)
	if de := r.FinancialData.DebtToEquity.ptr(); de != nil {
		snap.DebtToEquity = contracts.Float(*de / 100)
	}

	// 손익계산서: newest first, 결측 연도는 건너뜀
	for _, st := range r.IncomeStatementHistory.Statements {
		if st.TotalRevenue.Raw != nil {
			snap.Revenues = append(snap.Revenues, *st.TotalRevenue.Raw)
		}
		if st.NetIncome.Raw != nil {
			snap.NetIncomes = append(snap.NetIncomes, *st.NetIncome.Raw)
		}
	}

	if stmts := r.CashflowStatementHistory.Statements; len(stmts) > 0 {
		latest := stmts[0]
		snap.FreeCashFlow = latest.FreeCashFlow.ptr()
		snap.OperatingCashFlow = latest.TotalCashFromOperatingActivities.ptr()
		snap.CapitalExpenditure = latest.CapitalExpenditures.ptr()
	}
	if snap.OperatingCashFlow == nil {
		snap.OperatingCashFlow = r.FinancialData.OperatingCashflow.ptr()
	}

	return snap
}

func firstOf(values ...rawValue) *float64 {
	for _, v := range values {
		if p := v.ptr(); p != nil {
			return p
		}
	}
	return nil
}
