package jobs

import (
	"context"
	"fmt"
	"sync"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/internal/picker"
	"github.com/wonny/stockscope/pkg/logger"
)

// DailyPicksJob regenerates the daily picks after the US close
// ⭐ SSOT: Daily picks 생성 스케줄은 이 Job에서만
type DailyPicksJob struct {
	picker   *picker.Picker
	schedule string
	topN     int
	logger   *logger.Logger

	mu   sync.RWMutex
	last *contracts.DailyPicksReport
}

// NewDailyPicksJob creates a new daily picks job
func NewDailyPicksJob(p *picker.Picker, schedule string, topN int, log *logger.Logger) *DailyPicksJob {
	return &DailyPicksJob{
		picker:   p,
		schedule: schedule,
		topN:     topN,
		logger:   log,
	}
}

// Name returns the job name
func (j *DailyPicksJob) Name() string {
	return "daily_picks"
}

// Schedule returns the cron schedule (PICKS_SCHEDULE, weekdays 16:30 by default)
func (j *DailyPicksJob) Schedule() string {
	return j.schedule
}

// Run generates the picks and logs the shortlist
func (j *DailyPicksJob) Run(ctx context.Context) error {
	j.logger.Info("Starting scheduled daily picks generation")

	report, err := j.picker.Generate(ctx, j.topN)
	if err != nil {
		return fmt.Errorf("generate daily picks: %w", err)
	}

	for i, pick := range report.Results {
		j.logger.WithFields(map[string]interface{}{
			"rank":           i + 1,
			"ticker":         pick.Ticker,
			"total_score":    pick.TotalScore,
			"recommendation": pick.Recommendation,
		}).Info("Daily pick")
	}

	j.logger.WithFields(map[string]interface{}{
		"date":           report.Date,
		"total_analyzed": report.TotalAnalyzed,
		"picks":          len(report.Results),
	}).Info("Daily picks generated successfully")

	j.mu.Lock()
	j.last = report
	j.mu.Unlock()

	return nil
}

// Last returns the most recent successful report, or nil
func (j *DailyPicksJob) Last() *contracts.DailyPicksReport {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.last
}
