package universe

import (
	"context"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/logger"
)

// Fallback uses the secondary universe when the primary fails or is empty
type Fallback struct {
	primary   contracts.UniverseSource
	secondary contracts.UniverseSource
	logger    *logger.Logger
}

// NewFallback chains two universes
func NewFallback(primary, secondary contracts.UniverseSource, log *logger.Logger) *Fallback {
	return &Fallback{
		primary:   primary,
		secondary: secondary,
		logger:    log,
	}
}

// Name returns the primary's name
func (f *Fallback) Name() string {
	return f.primary.Name()
}

// Tickers returns the primary's list, or the secondary's on failure
func (f *Fallback) Tickers(ctx context.Context) ([]string, error) {
	tickers, err := f.primary.Tickers(ctx)
	if err == nil && len(tickers) > 0 {
		return tickers, nil
	}

	log := f.logger.WithFields(map[string]interface{}{
		"primary":   f.primary.Name(),
		"secondary": f.secondary.Name(),
	})
	if err != nil {
		log = log.WithError(err)
	}
	log.Warn("Universe unavailable, using fallback")

	return f.secondary.Tickers(ctx)
}
