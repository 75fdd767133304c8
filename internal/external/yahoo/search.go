package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/wonny/stockscope/internal/contracts"
)

// searchLimit caps the number of quotes requested per search
const searchLimit = 10

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		LongName  string `json:"longname"`
		Exchange  string `json:"exchange"`
		ExchDisp  string `json:"exchDisp"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// Search looks up equities by ticker or company name
func (c *Client) Search(ctx context.Context, query string) ([]contracts.SearchResult, error) {
	query = strings.TrimSpace(query)
	results := []contracts.SearchResult{}
	if query == "" {
		return results, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("quotesCount", fmt.Sprintf("%d", searchLimit))
	params.Set("newsCount", "0")

	var resp searchResponse
	if _, err := c.getJSON(ctx, "/v1/finance/search", params, &resp); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	for _, q := range resp.Quotes {
		if q.Symbol == "" || !strings.EqualFold(q.QuoteType, "EQUITY") {
			continue
		}

		name := q.LongName
		if name == "" {
			name = q.ShortName
		}
		exchange := q.ExchDisp
		if exchange == "" {
			exchange = q.Exchange
		}

		results = append(results, contracts.SearchResult{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: exchange,
			Type:     q.QuoteType,
		})
	}

	return results, nil
}
