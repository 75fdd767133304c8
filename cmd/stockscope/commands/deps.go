package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/wonny/stockscope/internal/analyzer"
	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/external/yahoo"
	"github.com/wonny/stockscope/internal/picker"
	"github.com/wonny/stockscope/internal/screener"
	"github.com/wonny/stockscope/internal/universe"
	"github.com/wonny/stockscope/pkg/config"
	"github.com/wonny/stockscope/pkg/httputil"
	"github.com/wonny/stockscope/pkg/logger"
	"github.com/wonny/stockscope/pkg/redis"
)

// services holds the wired application graph shared by all commands
type services struct {
	cfg      *config.Config
	log      *logger.Logger
	redis    *redis.Client
	yahoo    *yahoo.Client
	analyzer *analyzer.Analyzer
	screener *screener.Screener
	universe contracts.UniverseSource
	picker   *picker.Picker
}

// newServices loads config and wires provider → analyzer/screener → picker.
// Logs go to logOut so table output on stdout stays clean.
func newServices(ctx context.Context, logOut io.Writer) (*services, error) {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	// 2. Initialize logger
	log := logger.NewWithWriter(cfg, logOut)

	// 3. Redis (shared rate limit), optional
	rdb, err := redis.New(ctx, cfg)
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, using local rate limit")
		rdb = nil
	}
	limiter := redis.NewRateLimiter(rdb, "stockscope")

	// 4. Market data provider
	yahooClient := yahoo.NewFromConfig(cfg, limiter, log)

	// 5. Scoring pipelines
	scr := screener.New(yahooClient, cfg.Screener, log)
	uni := universe.FromConfig(cfg, httputil.New(cfg, log), log)

	return &services{
		cfg:      cfg,
		log:      log,
		redis:    rdb,
		yahoo:    yahooClient,
		analyzer: analyzer.New(yahooClient, log),
		screener: scr,
		universe: uni,
		picker:   picker.New(scr, uni, cfg.Picks.TopN, log),
	}, nil
}

// Close releases the Redis connection
func (s *services) Close() {
	if s.redis != nil {
		_ = s.redis.Close()
	}
}
