package universe

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/wonny/stockscope/pkg/httputil"
	"github.com/wonny/stockscope/pkg/logger"
)

// SP500 scrapes the S&P 500 constituents table
type SP500 struct {
	url        string
	httpClient *httputil.Client
	logger     *logger.Logger
}

// NewSP500 creates a scraping universe for the constituents page at url
func NewSP500(url string, httpClient *httputil.Client, log *logger.Logger) *SP500 {
	return &SP500{
		url:        url,
		httpClient: httpClient,
		logger:     log,
	}
}

// Name returns the universe name
func (s *SP500) Name() string {
	return "sp500"
}

// Tickers fetches the page and reads the first column of the constituents table
func (s *SP500) Tickers(ctx context.Context) ([]string, error) {
	resp, err := s.httpClient.Get(ctx, s.url)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &httputil.StatusError{URL: s.url, StatusCode: resp.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse constituents page failed: %w", err)
	}

	tickers := parseConstituents(doc)
	if len(tickers) == 0 {
		return nil, fmt.Errorf("no constituents found at %s", s.url)
	}

	s.logger.WithFields(map[string]interface{}{
		"count": len(tickers),
	}).Debug("Fetched S&P 500 constituents")

	return tickers, nil
}

// parseConstituents reads symbols from table#constituents (first wikitable as fallback).
// Class shares use "-" on the market data side (BRK.B → BRK-B).
func parseConstituents(doc *goquery.Document) []string {
	table := doc.Find("table#constituents")
	if table.Length() == 0 {
		table = doc.Find("table.wikitable").First()
	}

	var tickers []string
	table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
		cell := row.Find("td").First()
		if cell.Length() == 0 {
			return // header row
		}
		symbol := strings.TrimSpace(cell.Text())
		if symbol == "" {
			return
		}
		tickers = append(tickers, strings.ReplaceAll(symbol, ".", "-"))
	})

	return dedupe(tickers)
}
