package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/wonny/stockscope/internal/contracts"
)

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Symbol               string `json:"symbol"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

// History fetches daily bars covering lookback.
// An unknown symbol yields an empty series.
func (c *Client) History(ctx context.Context, symbol string, lookback contracts.Lookback) (contracts.PriceSeries, error) {
	params := url.Values{}
	params.Set("range", string(lookback))
	params.Set("interval", "1d")
	params.Set("includePrePost", "false")
	params.Set("events", "div,splits")

	var resp chartResponse
	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(symbol))
	found, err := c.getJSON(ctx, path, params, &resp)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if !found || len(resp.Chart.Result) == 0 {
		return contracts.PriceSeries{}, nil
	}

	series := toSeries(resp.Chart.Result[0])

	c.logger.WithFields(map[string]interface{}{
		"ticker":   symbol,
		"lookback": string(lookback),
		"bars":     len(series),
	}).Debug("Fetched price history")

	return series, nil
}

// toSeries zips the column arrays into bars.
// Bars with any missing price are skipped; output is chronological with one bar per date.
func toSeries(r chartResult) contracts.PriceSeries {
	if len(r.Indicators.Quote) == 0 {
		return contracts.PriceSeries{}
	}
	q := r.Indicators.Quote[0]

	loc := time.UTC
	if r.Meta.ExchangeTimezoneName != "" {
		if l, err := time.LoadLocation(r.Meta.ExchangeTimezoneName); err == nil {
			loc = l
		}
	}

	series := make(contracts.PriceSeries, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		open, high, low, cls := at(q.Open, i), at(q.High, i), at(q.Low, i), at(q.Close, i)
		if open == nil || high == nil || low == nil || cls == nil {
			continue
		}

		var volume int64
		if i < len(q.Volume) && q.Volume[i] != nil {
			volume = *q.Volume[i]
		}

		local := time.Unix(ts, 0).In(loc)
		series = append(series, contracts.Bar{
			Date:   time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC),
			Open:   *open,
			High:   *high,
			Low:    *low,
			Close:  *cls,
			Volume: volume,
		})
	}

	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	// 같은 날짜가 두 번 오면 (장중 마지막 봉) 나중 것을 사용
	out := series[:0]
	for _, bar := range series {
		if n := len(out); n > 0 && out[n-1].Date.Equal(bar.Date) {
			out[n-1] = bar
			continue
		}
		out = append(out, bar)
	}
	return out
}

func at(values []*float64, i int) *float64 {
	if i >= len(values) {
		return nil
	}
	return values[i]
}
