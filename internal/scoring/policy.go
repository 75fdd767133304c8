package scoring

import (
	"math"

	"github.com/wonny/stockscope/internal/contracts"
	"github.com/wonny/stockscope/pkg/indicators"
)

// Two independently calibrated threshold tables. They operate on different
// scales and are never unified.

// SingleTickerPolicy maps the 0-100 composite to an action and confidence
type SingleTickerPolicy struct {
	BuyThreshold  float64
	HoldThreshold float64
}

// DefaultSingleTickerPolicy is the 70/50 table of the single-ticker scale
var DefaultSingleTickerPolicy = SingleTickerPolicy{BuyThreshold: 70, HoldThreshold: 50}

// Decide returns the action and its confidence (0-100, 1 dp)
func (p SingleTickerPolicy) Decide(score float64) (contracts.Action, float64) {
	var action contracts.Action
	var confidence float64

	switch {
	case score >= p.BuyThreshold:
		action = contracts.ActionBuy
		confidence = math.Min(90, 60+(score-p.BuyThreshold)*1.5)
	case score >= p.HoldThreshold:
		action = contracts.ActionHold
		confidence = 50 + (score - p.HoldThreshold)
	default:
		action = contracts.ActionAvoid
		confidence = math.Max(30, 50-(p.HoldThreshold-score)*0.8)
	}

	return action, indicators.Round(confidence, 1)
}

// ScreenerPolicy maps the weighted screener composite (at most 22) to an action
type ScreenerPolicy struct {
	BuyThreshold  float64
	HoldThreshold float64
}

// DefaultScreenerPolicy is the 20/15 table of the screener scale
var DefaultScreenerPolicy = ScreenerPolicy{BuyThreshold: 20, HoldThreshold: 15}

// Action returns Buy, Hold or Avoid for a screener composite
func (p ScreenerPolicy) Action(score float64) contracts.Action {
	switch {
	case score >= p.BuyThreshold:
		return contracts.ActionBuy
	case score >= p.HoldThreshold:
		return contracts.ActionHold
	default:
		return contracts.ActionAvoid
	}
}
