package jobs

import (
	"context"
	"fmt"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/logger"
)

// UniverseCheckJob resolves the picks universe ahead of the daily run
// so a broken source (file, scrape) shows up in the logs before picks are due.
type UniverseCheckJob struct {
	universe contracts.UniverseSource
	logger   *logger.Logger
}

// NewUniverseCheckJob creates a new universe check job
func NewUniverseCheckJob(u contracts.UniverseSource, log *logger.Logger) *UniverseCheckJob {
	return &UniverseCheckJob{
		universe: u,
		logger:   log,
	}
}

// Name returns the job name
func (j *UniverseCheckJob) Name() string {
	return "universe_check"
}

// Schedule returns the cron schedule (weekdays 16:00, ahead of daily picks)
func (j *UniverseCheckJob) Schedule() string {
	return "0 0 16 * * 1-5"
}

// Run loads the universe and fails when it is empty
func (j *UniverseCheckJob) Run(ctx context.Context) error {
	tickers, err := j.universe.Tickers(ctx)
	if err != nil {
		return fmt.Errorf("load universe %s: %w", j.universe.Name(), err)
	}
	if len(tickers) == 0 {
		return fmt.Errorf("universe %s: %w", j.universe.Name(), contracts.ErrNoTickers)
	}

	j.logger.WithFields(map[string]interface{}{
		"universe": j.universe.Name(),
		"tickers":  len(tickers),
	}).Info("Universe resolved")

	return nil
}
