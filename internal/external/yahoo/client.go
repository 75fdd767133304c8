package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/httputil"
	"github.com/wonny/stockscope/pkg/logger"
	"github.com/wonny/stockscope/pkg/redis"
)

// Client handles communication with Yahoo Finance
// ⭐ SSOT: Yahoo Finance API 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	now        func() time.Time
}

var (
	_ contracts.MarketDataProvider = (*Client)(nil)
	_ contracts.SymbolSearcher     = (*Client)(nil)
)

// NewClient creates a new Yahoo Finance client
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        time.Now,
	}
}

// NewFromConfig builds the HTTP client with the Yahoo timeout, retry and rate limit settings.
// The shared limiter may be nil; the local token bucket then applies.
func NewFromConfig(cfg *config.Config, limiter *redis.RateLimiter, log *logger.Logger) *Client {
	httpClient := httputil.NewWithTimeout(cfg, log, cfg.Yahoo.Timeout).
		WithRetry(cfg.Yahoo.MaxRetries, 500*time.Millisecond).
		WithLocalRateLimit(cfg.Yahoo.RateLimit).
		WithRateLimiter(limiter, redis.YahooRateLimit(cfg.Yahoo.RateLimit))

	return NewClient(httpClient, cfg.Yahoo.BaseURL, log)
}

// getJSON fetches path with params into dest.
// Returns found=false for 404 (unknown symbol).
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, dest interface{}) (bool, error) {
	fullURL := fmt.Sprintf("%s%s", c.baseURL, path)
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	err := c.httpClient.GetJSON(ctx, fullURL, dest)
	if err == nil {
		return true, nil
	}

	var statusErr *httputil.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, err
}

// rawValue is Yahoo's formatted number: {"raw": 1.23, "fmt": "1.23"}; {} when absent
type rawValue struct {
	Raw *float64 `json:"raw"`
}

func (v rawValue) ptr() *float64 {
	if v.Raw == nil {
		return nil
	}
	return contracts.Float(*v.Raw)
}
